package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"clientbase/internal/config"
	"clientbase/internal/model"
)

var (
	ErrMissingSecret = errors.New("jwt secret is not configured")
	ErrInvalidToken  = errors.New("invalid or expired token")
)

// Claims carries the authenticated user's ID inside a signed token.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Manager issues and parses HS256 access tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager constructs a token Manager from config.
func NewManager(cfg config.JWTConfig) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	ttl := cfg.AccessTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Manager{secret: []byte(cfg.Secret), ttl: ttl}, nil
}

// Issue signs an access token for the user.
func (m *Manager) Issue(u *model.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: u.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse validates a token string and returns its claims.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
