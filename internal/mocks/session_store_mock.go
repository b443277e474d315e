package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/saransh1220/spoty-backend/internal/domain"
)

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, sessionID string, role domain.Role, ttl time.Duration) error {
	args := m.Called(ctx, sessionID, role, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
