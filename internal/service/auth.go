package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"clientbase/internal/auth"
	"clientbase/internal/model"
	"clientbase/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// RegisterInput is the submitted field set for a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=255"`
}

// LoginInput is the submitted field set for a login attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult carries a signed access token and the account it belongs to.
type AuthResult struct {
	AccessToken string      `json:"access_token"`
	User        *model.User `json:"user"`
}

// AuthService defines account registration and login.
type AuthService interface {
	// Register creates a user with a personal team set active and returns a
	// signed token for the new account.
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)

	// Login verifies credentials and returns a signed token.
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
}

type authService struct {
	users  repository.UserRepository
	teams  repository.TeamRepository
	tokens *auth.Manager
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UserRepository, teams repository.TeamRepository, tokens *auth.Manager) AuthService {
	return &authService{users: users, teams: teams, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	team, err := s.teams.Create(ctx, &model.Team{
		ID:        uuid.New().String(),
		Name:      in.Name + "'s team",
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &model.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		ActiveTeamID: team.ID,
		CreatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{AccessToken: token, User: user}, nil
}

func (s *authService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{AccessToken: token, User: user}, nil
}
