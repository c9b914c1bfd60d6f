package postgres

import (
	"context"
	"database/sql"

	"clientbase/internal/model"
	"clientbase/internal/repository"
)

// CommentPostgres is a PostgreSQL implementation of repository.CommentRepository.
type CommentPostgres struct {
	db *sql.DB
}

// NewCommentPostgres creates a new CommentPostgres repository.
func NewCommentPostgres(db *sql.DB) *CommentPostgres {
	return &CommentPostgres{db: db}
}

var _ repository.CommentRepository = (*CommentPostgres)(nil)

// Create inserts a new comment row and returns the stored record.
func (r *CommentPostgres) Create(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	const q = `
		INSERT INTO comments (id, body, client_id, team_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, body, client_id, team_id, created_by, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		c.ID,
		c.Body,
		c.ClientID,
		c.TeamID,
		c.CreatedBy,
		c.CreatedAt,
	)
	var out model.Comment
	if err := row.Scan(
		&out.ID,
		&out.Body,
		&out.ClientID,
		&out.TeamID,
		&out.CreatedBy,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByClient returns all comments for a client in insertion order.
func (r *CommentPostgres) ListByClient(ctx context.Context, clientID string) ([]model.Comment, error) {
	const q = `
		SELECT id, body, client_id, team_id, created_by, created_at
		FROM comments
		WHERE client_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(
			&c.ID,
			&c.Body,
			&c.ClientID,
			&c.TeamID,
			&c.CreatedBy,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
