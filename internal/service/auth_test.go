package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"clientbase/internal/auth"
	"clientbase/internal/config"
	"clientbase/internal/model"
	repoMocks "clientbase/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testTokenManager(t *testing.T) *auth.Manager {
	t.Helper()
	m, err := auth.NewManager(config.JWTConfig{Secret: "test-secret", AccessTTL: time.Minute})
	require.NoError(t, err)
	return m
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path creates personal team and user", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mTeams := new(repoMocks.MockTeamRepository)
		svc := NewAuthService(mUsers, mTeams, testTokenManager(t))

		mUsers.On("FindByEmail", ctx, "alice@example.com").Return(nil, sql.ErrNoRows)
		mTeams.On("Create", ctx, mock.MatchedBy(func(tm *model.Team) bool {
			return tm.Name == "Alice's team" && tm.ID != ""
		})).Return(&model.Team{ID: "team-id", Name: "Alice's team"}, nil)
		mUsers.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "alice@example.com" && u.ActiveTeamID == "team-id" &&
				u.PasswordHash != "" && u.PasswordHash != "hunter2secret"
		})).Return(&model.User{ID: "user-id", Email: "alice@example.com", ActiveTeamID: "team-id"}, nil)

		res, err := svc.Register(ctx, RegisterInput{
			Email:    "alice@example.com",
			Password: "hunter2secret",
			Name:     "Alice",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.Equal(t, "user-id", res.User.ID)
		mUsers.AssertExpectations(t)
		mTeams.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mTeams := new(repoMocks.MockTeamRepository)
		svc := NewAuthService(mUsers, mTeams, testTokenManager(t))

		mUsers.On("FindByEmail", ctx, "alice@example.com").
			Return(&model.User{ID: "existing"}, nil)

		_, err := svc.Register(ctx, RegisterInput{
			Email:    "alice@example.com",
			Password: "hunter2secret",
			Name:     "Alice",
		})

		assert.ErrorIs(t, err, ErrEmailTaken)
		mTeams.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lookup error propagates", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mUsers, nil, testTokenManager(t))

		mUsers.On("FindByEmail", ctx, "alice@example.com").Return(nil, errors.New("db fail"))

		_, err := svc.Register(ctx, RegisterInput{
			Email:    "alice@example.com",
			Password: "hunter2secret",
			Name:     "Alice",
		})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := auth.HashPassword("hunter2secret")
	require.NoError(t, err)

	t.Run("happy path", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mUsers, nil, testTokenManager(t))

		mUsers.On("FindByEmail", ctx, "alice@example.com").
			Return(&model.User{ID: "user-id", Email: "alice@example.com", PasswordHash: hash}, nil)

		res, err := svc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "hunter2secret"})

		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mUsers, nil, testTokenManager(t))

		mUsers.On("FindByEmail", ctx, "alice@example.com").
			Return(&model.User{ID: "user-id", PasswordHash: hash}, nil)

		_, err := svc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mUsers, nil, testTokenManager(t))

		mUsers.On("FindByEmail", ctx, "nobody@example.com").Return(nil, sql.ErrNoRows)

		_, err := svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "hunter2secret"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
