package postgres

import (
	"context"
	"database/sql"

	"cvapi/internal/model"
	"cvapi/internal/repository"
)

// CVPostgres is a PostgreSQL implementation of repository.CVRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type CVPostgres struct {
	db *sql.DB
}

// NewCVPostgres creates a new CVPostgres repository.
func NewCVPostgres(db *sql.DB) *CVPostgres {
	return &CVPostgres{db: db}
}

var _ repository.CVRepository = (*CVPostgres)(nil)

const cvColumns = `id, filename, storage_path, size, content_type, version, is_active, created_at`

func scanCV(row interface{ Scan(...any) error }) (*model.CV, error) {
	var cv model.CV
	if err := row.Scan(
		&cv.ID,
		&cv.Filename,
		&cv.StoragePath,
		&cv.Size,
		&cv.ContentType,
		&cv.Version,
		&cv.IsActive,
		&cv.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &cv, nil
}

// CreateActive runs the deactivate-all + insert-active pair in one
// transaction so two concurrent uploads can never leave two active rows.
// The version is assigned from cvs_version_seq inside the INSERT.
func (r *CVPostgres) CreateActive(ctx context.Context, cv *model.CV) (*model.CV, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	const qDeactivate = `UPDATE cvs SET is_active = FALSE WHERE is_active`
	if _, err := tx.ExecContext(ctx, qDeactivate); err != nil {
		return nil, err
	}

	const qInsert = `
		INSERT INTO cvs (id, filename, storage_path, size, content_type, version, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, nextval('cvs_version_seq'), TRUE, $6)
		RETURNING ` + cvColumns
	row := tx.QueryRowContext(ctx, qInsert,
		cv.ID,
		cv.Filename,
		cv.StoragePath,
		cv.Size,
		cv.ContentType,
		cv.CreatedAt,
	)
	out, err := scanCV(row)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID fetches a single CV record by its ID.
func (r *CVPostgres) FindByID(ctx context.Context, id string) (*model.CV, error) {
	const q = `SELECT ` + cvColumns + ` FROM cvs WHERE id = $1`
	return scanCV(r.db.QueryRowContext(ctx, q, id))
}

// FindActive fetches the active CV record, newest first as a tie-breaker
// in case more than one row is marked active.
func (r *CVPostgres) FindActive(ctx context.Context) (*model.CV, error) {
	const q = `
		SELECT ` + cvColumns + `
		FROM cvs
		WHERE is_active
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanCV(r.db.QueryRowContext(ctx, q))
}

// List returns all CV records ordered by creation time, newest first.
func (r *CVPostgres) List(ctx context.Context) ([]model.CV, error) {
	const q = `
		SELECT ` + cvColumns + `
		FROM cvs
		ORDER BY created_at DESC, version DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CV, 0)
	for rows.Next() {
		cv, err := scanCV(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *cv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a CV record by ID. It does not return an error if the row
// does not exist; presence checks belong to the service layer.
func (r *CVPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM cvs WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
