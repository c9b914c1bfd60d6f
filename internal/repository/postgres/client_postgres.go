package postgres

import (
	"context"
	"database/sql"

	"clientbase/internal/model"
	"clientbase/internal/repository"
)

// ClientPostgres is a PostgreSQL implementation of repository.ClientRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ClientPostgres struct {
	db *sql.DB
}

// NewClientPostgres creates a new ClientPostgres repository.
func NewClientPostgres(db *sql.DB) *ClientPostgres {
	return &ClientPostgres{db: db}
}

var _ repository.ClientRepository = (*ClientPostgres)(nil)

// Create inserts a new client row and returns the stored record.
func (r *ClientPostgres) Create(ctx context.Context, c *model.Client) (*model.Client, error) {
	const q = `
		INSERT INTO clients (id, name, description, team_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, team_id, created_by, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		c.ID,
		c.Name,
		c.Description,
		c.TeamID,
		c.CreatedBy,
		c.CreatedAt,
	)
	var out model.Client
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Description,
		&out.TeamID,
		&out.CreatedBy,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single client scoped to its owner. A row owned by a
// different user yields sql.ErrNoRows, same as a missing row.
func (r *ClientPostgres) FindByID(ctx context.Context, id, ownerID string) (*model.Client, error) {
	const q = `
		SELECT c.id, c.name, c.description, c.team_id, c.created_by, c.created_at, u.email
		FROM clients c
		JOIN users u ON u.id = c.created_by
		WHERE c.id = $1 AND c.created_by = $2
	`
	row := r.db.QueryRowContext(ctx, q, id, ownerID)
	var c model.Client
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.TeamID,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.CreatedByEmail,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByOwner returns all clients created by the owner in insertion order.
func (r *ClientPostgres) ListByOwner(ctx context.Context, ownerID string) ([]model.Client, error) {
	const q = `
		SELECT c.id, c.name, c.description, c.team_id, c.created_by, c.created_at, u.email
		FROM clients c
		JOIN users u ON u.id = c.created_by
		WHERE c.created_by = $1
		ORDER BY c.created_at ASC, c.id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Client, 0)
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Description,
			&c.TeamID,
			&c.CreatedBy,
			&c.CreatedAt,
			&c.CreatedByEmail,
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

// Update replaces name and description of an owned client. The WHERE clause
// carries the ownership check; a foreign row yields sql.ErrNoRows.
func (r *ClientPostgres) Update(ctx context.Context, c *model.Client) (*model.Client, error) {
	const q = `
		UPDATE clients
		SET name = $1, description = $2
		WHERE id = $3 AND created_by = $4
		RETURNING id, name, description, team_id, created_by, created_at
	`
	row := r.db.QueryRowContext(ctx, q, c.Name, c.Description, c.ID, c.CreatedBy)
	var out model.Client
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Description,
		&out.TeamID,
		&out.CreatedBy,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an owned client. Dependent comments and files are removed by
// the schema's ON DELETE CASCADE in the same statement's transaction.
func (r *ClientPostgres) Delete(ctx context.Context, id, ownerID string) error {
	const q = `DELETE FROM clients WHERE id = $1 AND created_by = $2`
	res, err := r.db.ExecContext(ctx, q, id, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
