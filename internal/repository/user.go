package repository

import (
	"context"

	"clientbase/internal/model"
)

// UserRepository defines data access for user accounts.
type UserRepository interface {
	// Create inserts a new user row and returns the stored record.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByID returns a user by its ID.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByEmail returns a user by its unique email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// TeamRepository defines data access for teams.
type TeamRepository interface {
	// Create inserts a new team row and returns the stored record.
	Create(ctx context.Context, t *model.Team) (*model.Team, error)
}
