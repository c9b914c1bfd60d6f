package repository

import (
	"context"

	"clientbase/internal/model"
)

// FileRepository defines data access for client file attachments.
// Rows carry metadata only; payloads live in object storage.
type FileRepository interface {
	// Create inserts a new file row and returns the stored record.
	Create(ctx context.Context, f *model.File) (*model.File, error)

	// FindByID returns the file with the given id attached to clientID.
	FindByID(ctx context.Context, id, clientID string) (*model.File, error)

	// ListByClient returns all files for a client in insertion order.
	ListByClient(ctx context.Context, clientID string) ([]model.File, error)
}
