package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/saransh1220/spoty-backend/internal/domain"
)

type MockQueryRepository struct {
	mock.Mock
}

func (m *MockQueryRepository) Create(ctx context.Context, query *domain.Query) error {
	args := m.Called(ctx, query)
	return args.Error(0)
}

func (m *MockQueryRepository) ListAll(ctx context.Context) ([]domain.Query, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Query), args.Error(1)
}
