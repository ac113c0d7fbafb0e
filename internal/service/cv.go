package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"cvapi/internal/model"
	"cvapi/internal/repository"
	"cvapi/internal/storage"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrReaderNil  = errors.New("reader is nil")
	ErrNotFound   = errors.New("cv not found")
	// ErrStorageWrite marks a failed blob write; no metadata is recorded when
	// it occurs.
	ErrStorageWrite = errors.New("storage write failed")
	// ErrStorageRead marks a dangling catalog reference: a metadata record
	// points at a blob the store no longer has. Requires manual intervention.
	ErrStorageRead = errors.New("storage read failed")
)

// CVService owns the lifecycle of CV documents: upload with the
// single-active invariant, retrieval of the active document and its bytes,
// listing, and deletion.
type CVService interface {
	// Upload stores the content in object storage, then records metadata as
	// the new active CV, deactivating all prior records. If the metadata
	// insert fails the uploaded blob is deleted again.
	// MIME type and size validation happen at the HTTP boundary, before this
	// method is invoked.
	Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.CV, error)

	// GetActive returns the currently active CV record.
	GetActive(ctx context.Context) (*model.CV, error)

	// GetFile resolves the active CV and opens a read stream for its blob.
	// The caller owns closing the stream.
	GetFile(ctx context.Context) (io.ReadCloser, *model.CV, error)

	// List returns every CV record, newest first.
	List(ctx context.Context) ([]model.CV, error)

	// Delete removes a CV by ID from both storage and the catalog. The blob
	// delete is best-effort; metadata removal proceeds regardless. Returns
	// the former record data for caller confirmation.
	Delete(ctx context.Context, id string) (*model.CV, error)
}

type cvService struct {
	store storage.Storage
	repo  repository.CVRepository
}

// NewCVService constructs a new CVService.
func NewCVService(store storage.Storage, repo repository.CVRepository) CVService {
	return &cvService{store: store, repo: repo}
}

func (s *cvService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.CV, error) {
	if r == nil {
		return nil, ErrReaderNil
	}

	// Derive a collision-free blob key from the upload time and the original
	// name; the original name itself is kept in metadata and on the record.
	base := filepath.Base(originalFilename)
	key := fmt.Sprintf("cv/%d-%s", time.Now().UTC().UnixNano(), base)

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	cv := &model.CV{
		ID:          uuid.New().String(),
		Filename:    originalFilename,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: contentType,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.repo.CreateActive(ctx, cv)
	if err != nil {
		// Compensate: drop the blob we just wrote so it doesn't orphan.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("catalog save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("catalog save failed: %w", err)
	}
	return stored, nil
}

// GetActive returns the single active CV record.
func (s *cvService) GetActive(ctx context.Context) (*model.CV, error) {
	cv, err := s.repo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cv, nil
}

// GetFile opens a read stream for the active CV's blob.
func (s *cvService) GetFile(ctx context.Context) (io.ReadCloser, *model.CV, error) {
	cv, err := s.GetActive(ctx)
	if err != nil {
		return nil, nil, err
	}
	rc, _, err := s.store.Get(ctx, cv.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}
	return rc, cv, nil
}

// List returns all CV records, newest first.
func (s *cvService) List(ctx context.Context) ([]model.CV, error) {
	return s.repo.List(ctx)
}

// Delete removes a CV from storage and the catalog.
func (s *cvService) Delete(ctx context.Context, id string) (*model.CV, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	cv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// Best-effort blob delete: a failure leaves an orphaned blob but must not
	// block removal of the metadata record.
	if err := s.store.Delete(ctx, cv.StoragePath); err != nil {
		log.Printf("cv %s: blob delete failed for %s (continuing): %v", cv.ID, cv.StoragePath, err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return cv, nil
}
