package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saransh1220/spoty-backend/internal/domain"
)

type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepository) GetByEmail(ctx context.Context, email string) (*domain.Artist, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockArtistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockArtistRepository) ListAll(ctx context.Context) ([]domain.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artist), args.Error(1)
}

func (m *MockArtistRepository) AddSong(ctx context.Context, email string, song domain.Song) error {
	args := m.Called(ctx, email, song)
	return args.Error(0)
}

func (m *MockArtistRepository) UpdateSongTitle(ctx context.Context, email string, songID primitive.ObjectID, title string) error {
	args := m.Called(ctx, email, songID, title)
	return args.Error(0)
}

func (m *MockArtistRepository) RemoveSong(ctx context.Context, email string, songID primitive.ObjectID) error {
	args := m.Called(ctx, email, songID)
	return args.Error(0)
}

func (m *MockArtistRepository) Ban(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockArtistRepository) Unban(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockArtistRepository) IsBanned(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockArtistRepository) ListBanned(ctx context.Context) ([]domain.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artist), args.Error(1)
}
