package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientbase/internal/config"
	"clientbase/internal/model"
)

func TestManager_IssueAndParse(t *testing.T) {
	m, err := NewManager(config.JWTConfig{Secret: "test-secret", AccessTTL: time.Minute})
	require.NoError(t, err)

	token, err := m.Issue(&model.User{ID: "user-123"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestManager_ParseRejectsWrongSecret(t *testing.T) {
	issuer, err := NewManager(config.JWTConfig{Secret: "secret-a", AccessTTL: time.Minute})
	require.NoError(t, err)
	verifier, err := NewManager(config.JWTConfig{Secret: "secret-b", AccessTTL: time.Minute})
	require.NoError(t, err)

	token, err := issuer.Issue(&model.User{ID: "user-123"})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_ParseRejectsExpired(t *testing.T) {
	m, err := NewManager(config.JWTConfig{Secret: "test-secret", AccessTTL: -time.Minute})
	require.NoError(t, err)
	// negative TTL falls back to the default in NewManager, so build an
	// expired manager directly
	m.ttl = -time.Minute

	token, err := m.Issue(&model.User{ID: "user-123"})
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewManager_RequiresSecret(t *testing.T) {
	_, err := NewManager(config.JWTConfig{})
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
