package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/saransh1220/spoty-backend/internal/domain"
)

var ErrInvalidSession = errors.New("invalid or expired session")

// Store keeps the server-side half of a session. A token is only valid while
// its ID is present in the store, which makes logout an actual revocation.
type Store interface {
	Save(ctx context.Context, sessionID string, role domain.Role, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}

type sessionClaims struct {
	Role  domain.Role `json:"role"`
	Name  string      `json:"name,omitempty"`
	Email string      `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Manager issues and validates session cookies. The cookie value is a signed
// token carrying the identity; the token ID must be live in the store.
type Manager struct {
	secret string
	ttl    time.Duration
	store  Store
}

func NewManager(secret string, ttl time.Duration, store Store) *Manager {
	return &Manager{secret: secret, ttl: ttl, store: store}
}

// TTL reports the configured session lifetime, used for the cookie max-age.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a session for the given identity and returns the cookie token.
func (m *Manager) Issue(ctx context.Context, identity domain.Identity) (string, error) {
	sessionID := uuid.NewString()
	now := time.Now()

	claims := sessionClaims{
		Role:  identity.Role,
		Name:  identity.Name,
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.secret))
	if err != nil {
		return "", err
	}
	if err := m.store.Save(ctx, sessionID, identity.Role, m.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Validate parses the token and checks the session is still live.
func (m *Manager) Validate(ctx context.Context, token string) (*domain.Identity, error) {
	claims, err := m.parse(token)
	if err != nil {
		return nil, ErrInvalidSession
	}

	live, err := m.store.Exists(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, ErrInvalidSession
	}

	return &domain.Identity{Role: claims.Role, Name: claims.Name, Email: claims.Email}, nil
}

// Destroy revokes the session behind the token. An unparsable token is
// treated as already gone.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	claims, err := m.parse(token)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, claims.ID)
}

func (m *Manager) parse(token string) (*sessionClaims, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(m.secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}
	return &claims, nil
}
