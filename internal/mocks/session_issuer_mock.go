package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/saransh1220/spoty-backend/internal/domain"
)

type MockSessionIssuer struct {
	mock.Mock
}

func (m *MockSessionIssuer) Issue(ctx context.Context, identity domain.Identity) (string, error) {
	args := m.Called(ctx, identity)
	return args.String(0), args.Error(1)
}

func (m *MockSessionIssuer) Destroy(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
