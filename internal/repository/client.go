package repository

import (
	"context"

	"clientbase/internal/model"
)

// ClientRepository defines data access for clients using SQL queries only.
// No business logic here — strictly persistence operations.
//
// Every lookup is keyed by (id, ownerID) so ownership scoping is enforced in
// the query itself: a client belonging to someone else behaves exactly like
// a client that does not exist (sql.ErrNoRows).
type ClientRepository interface {
	// Create inserts a new client row and returns the stored record.
	Create(ctx context.Context, c *model.Client) (*model.Client, error)

	// FindByID returns the client with the given id owned by ownerID.
	FindByID(ctx context.Context, id, ownerID string) (*model.Client, error)

	// ListByOwner returns all clients created by ownerID in insertion order,
	// with the creator's email joined in for display and export.
	ListByOwner(ctx context.Context, ownerID string) ([]model.Client, error)

	// Update replaces name and description of the owned client and returns
	// the stored record. created_by and team_id are never touched.
	Update(ctx context.Context, c *model.Client) (*model.Client, error)

	// Delete removes the owned client. Comments and files cascade at the
	// schema level. Returns sql.ErrNoRows if no owned row matched.
	Delete(ctx context.Context, id, ownerID string) error
}
