package postgres

import (
	"context"
	"database/sql"

	"clientbase/internal/model"
	"clientbase/internal/repository"
)

// FilePostgres is a PostgreSQL implementation of repository.FileRepository.
type FilePostgres struct {
	db *sql.DB
}

// NewFilePostgres creates a new FilePostgres repository.
func NewFilePostgres(db *sql.DB) *FilePostgres {
	return &FilePostgres{db: db}
}

var _ repository.FileRepository = (*FilePostgres)(nil)

// Create inserts a new file row and returns the stored record.
func (r *FilePostgres) Create(ctx context.Context, f *model.File) (*model.File, error) {
	const q = `
		INSERT INTO files (id, filename, storage_path, size, content_type, client_id, team_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, filename, storage_path, size, content_type, client_id, team_id, created_by, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		f.ID,
		f.Filename,
		f.StoragePath,
		f.Size,
		f.ContentType,
		f.ClientID,
		f.TeamID,
		f.CreatedBy,
		f.CreatedAt,
	)
	var out model.File
	if err := row.Scan(
		&out.ID,
		&out.Filename,
		&out.StoragePath,
		&out.Size,
		&out.ContentType,
		&out.ClientID,
		&out.TeamID,
		&out.CreatedBy,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single file scoped to its client.
func (r *FilePostgres) FindByID(ctx context.Context, id, clientID string) (*model.File, error) {
	const q = `
		SELECT id, filename, storage_path, size, content_type, client_id, team_id, created_by, created_at
		FROM files
		WHERE id = $1 AND client_id = $2
	`
	row := r.db.QueryRowContext(ctx, q, id, clientID)
	var f model.File
	if err := row.Scan(
		&f.ID,
		&f.Filename,
		&f.StoragePath,
		&f.Size,
		&f.ContentType,
		&f.ClientID,
		&f.TeamID,
		&f.CreatedBy,
		&f.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

// ListByClient returns all files for a client in insertion order.
func (r *FilePostgres) ListByClient(ctx context.Context, clientID string) ([]model.File, error) {
	const q = `
		SELECT id, filename, storage_path, size, content_type, client_id, team_id, created_by, created_at
		FROM files
		WHERE client_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.File, 0)
	for rows.Next() {
		var f model.File
		if err := rows.Scan(
			&f.ID,
			&f.Filename,
			&f.StoragePath,
			&f.Size,
			&f.ContentType,
			&f.ClientID,
			&f.TeamID,
			&f.CreatedBy,
			&f.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
