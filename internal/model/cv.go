package model

import "time"

// CV is the metadata record for one uploaded résumé file.
// This is a pure domain model with no database-specific dependencies or tags;
// it is shared across the HTTP, service, and repository layers.
//
// At most one CV has IsActive set at any time: the one served by the public
// download endpoint. A record is only ever mutated by flipping IsActive to
// false when a newer upload supersedes it.
type CV struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	Version     int64     `json:"version"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
