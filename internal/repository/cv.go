package repository

import (
	"context"

	"cvapi/internal/model"
)

// CVRepository defines data access for CV metadata records using SQL only.
// No business logic here — strictly persistence operations.
type CVRepository interface {
	// CreateActive deactivates every currently active CV and inserts the given
	// record as the active one, all inside a single transaction. The version is
	// assigned by the database from a monotonic sequence. Returns the stored
	// record including values set by the DB.
	CreateActive(ctx context.Context, cv *model.CV) (*model.CV, error)

	// FindByID returns a CV record by its ID.
	FindByID(ctx context.Context, id string) (*model.CV, error)

	// FindActive returns the active CV record. If a data anomaly leaves more
	// than one row marked active, the most recently created one wins.
	// Returns sql.ErrNoRows when none is active.
	FindActive(ctx context.Context) (*model.CV, error)

	// List returns all CV records ordered by creation time, newest first.
	List(ctx context.Context) ([]model.CV, error)

	// Delete removes a CV record by ID. It returns nil if the row was deleted
	// or did not exist.
	Delete(ctx context.Context, id string) error
}
