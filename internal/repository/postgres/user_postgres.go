package postgres

import (
	"context"
	"database/sql"

	"clientbase/internal/model"
	"clientbase/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

// Create inserts a new user row and returns the stored record.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (id, email, password_hash, name, active_team_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, password_hash, name, active_team_id, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.Name,
		u.ActiveTeamID,
		u.CreatedAt,
	)
	var out model.User
	if err := row.Scan(
		&out.ID,
		&out.Email,
		&out.PasswordHash,
		&out.Name,
		&out.ActiveTeamID,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single user by its ID.
func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `
		SELECT id, email, password_hash, name, active_team_id, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// FindByEmail fetches a single user by its unique email.
func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
		SELECT id, email, password_hash, name, active_team_id, created_at
		FROM users
		WHERE email = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, q, email))
}

func (r *UserPostgres) scanOne(row *sql.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.ActiveTeamID,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// TeamPostgres is a PostgreSQL implementation of repository.TeamRepository.
type TeamPostgres struct {
	db *sql.DB
}

// NewTeamPostgres creates a new TeamPostgres repository.
func NewTeamPostgres(db *sql.DB) *TeamPostgres {
	return &TeamPostgres{db: db}
}

var _ repository.TeamRepository = (*TeamPostgres)(nil)

// Create inserts a new team row and returns the stored record.
func (r *TeamPostgres) Create(ctx context.Context, t *model.Team) (*model.Team, error) {
	const q = `
		INSERT INTO teams (id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, name, created_at
	`
	row := r.db.QueryRowContext(ctx, q, t.ID, t.Name, t.CreatedAt)
	var out model.Team
	if err := row.Scan(&out.ID, &out.Name, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}
