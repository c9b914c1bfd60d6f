package repository

import (
	"context"

	"clientbase/internal/model"
)

// CommentRepository defines data access for client comments.
type CommentRepository interface {
	// Create inserts a new comment row and returns the stored record.
	Create(ctx context.Context, c *model.Comment) (*model.Comment, error)

	// ListByClient returns all comments for a client in insertion order.
	ListByClient(ctx context.Context, clientID string) ([]model.Comment, error)
}
