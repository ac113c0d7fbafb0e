package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"cvapi/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cvRows(cvs ...*model.CV) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "filename", "storage_path", "size", "content_type", "version", "is_active", "created_at"})
	for _, cv := range cvs {
		rows.AddRow(cv.ID, cv.Filename, cv.StoragePath, cv.Size, cv.ContentType, cv.Version, cv.IsActive, cv.CreatedAt)
	}
	return rows
}

func TestCVPostgres_CreateActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCVPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	cv := &model.CV{
		ID:          "test-uuid",
		Filename:    "resume.pdf",
		StoragePath: "cv/1693000000000-resume.pdf",
		Size:        2048,
		ContentType: "application/pdf",
		CreatedAt:   now,
	}

	t.Run("deactivates then inserts in one transaction", func(t *testing.T) {
		stored := *cv
		stored.Version = 3
		stored.IsActive = true

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE cvs SET is_active = FALSE WHERE is_active").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO cvs").
			WithArgs(cv.ID, cv.Filename, cv.StoragePath, cv.Size, cv.ContentType, cv.CreatedAt).
			WillReturnRows(cvRows(&stored))
		mock.ExpectCommit()

		result, err := repo.CreateActive(ctx, cv)

		require.NoError(t, err)
		assert.Equal(t, int64(3), result.Version)
		assert.True(t, result.IsActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deactivate failure rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE cvs SET is_active = FALSE WHERE is_active").
			WillReturnError(errors.New("update failed"))
		mock.ExpectRollback()

		_, err := repo.CreateActive(ctx, cv)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back deactivation", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE cvs SET is_active = FALSE WHERE is_active").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO cvs").
			WithArgs(cv.ID, cv.Filename, cv.StoragePath, cv.Size, cv.ContentType, cv.CreatedAt).
			WillReturnError(errors.New("unique violation"))
		mock.ExpectRollback()

		_, err := repo.CreateActive(ctx, cv)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCVPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCVPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		cv := &model.CV{ID: "test-id", Filename: "resume.pdf", StoragePath: "cv/resume.pdf", Size: 100, ContentType: "application/pdf", Version: 1, IsActive: true, CreatedAt: time.Now()}

		mock.ExpectQuery("SELECT (.+) FROM cvs WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(cvRows(cv))

		got, err := repo.FindByID(ctx, "test-id")

		require.NoError(t, err)
		assert.Equal(t, "test-id", got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM cvs WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, got)
	})
}

func TestCVPostgres_FindActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCVPostgres(db)
	ctx := context.Background()

	t.Run("returns active row", func(t *testing.T) {
		cv := &model.CV{ID: "active-id", Filename: "resume.pdf", StoragePath: "cv/resume.pdf", Size: 100, ContentType: "application/pdf", Version: 2, IsActive: true, CreatedAt: time.Now()}

		mock.ExpectQuery("SELECT (.+) FROM cvs\\s+WHERE is_active\\s+ORDER BY created_at DESC").
			WillReturnRows(cvRows(cv))

		got, err := repo.FindActive(ctx)

		require.NoError(t, err)
		assert.Equal(t, "active-id", got.ID)
		assert.True(t, got.IsActive)
	})

	t.Run("none active", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM cvs\\s+WHERE is_active").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindActive(ctx)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, got)
	})
}

func TestCVPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCVPostgres(db)
	ctx := context.Background()

	t.Run("newest first", func(t *testing.T) {
		newer := &model.CV{ID: "id-2", Filename: "v2.pdf", StoragePath: "cv/v2.pdf", Size: 2, ContentType: "application/pdf", Version: 2, IsActive: true, CreatedAt: time.Now()}
		older := &model.CV{ID: "id-1", Filename: "v1.pdf", StoragePath: "cv/v1.pdf", Size: 1, ContentType: "application/pdf", Version: 1, CreatedAt: time.Now().Add(-time.Hour)}

		mock.ExpectQuery("SELECT (.+) FROM cvs\\s+ORDER BY created_at DESC").
			WillReturnRows(cvRows(newer, older))

		items, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "id-2", items[0].ID)
		assert.Equal(t, "id-1", items[1].ID)
	})

	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM cvs\\s+ORDER BY created_at DESC").
			WillReturnRows(cvRows())

		items, err := repo.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestCVPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCVPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM cvs WHERE id = ?").
		WithArgs("test-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "test-id")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
