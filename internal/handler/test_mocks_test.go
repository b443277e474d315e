package handler_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/saransh1220/spoty-backend/internal/domain"
	"github.com/saransh1220/spoty-backend/internal/service"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) RegisterListener(ctx context.Context, req service.RegisterReq) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockAuthService) RegisterArtist(ctx context.Context, req service.RegisterReq) (*domain.Artist, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *mockAuthService) LoginListener(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) LoginArtist(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) LoginAdmin(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type mockLibraryService struct {
	mock.Mock
}

func (m *mockLibraryService) Dashboard(ctx context.Context, userName string) (*service.DashboardView, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DashboardView), args.Error(1)
}

func (m *mockLibraryService) ArtistPage(ctx context.Context, idHex string) (*domain.Artist, error) {
	args := m.Called(ctx, idHex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *mockLibraryService) AllSongs(ctx context.Context) ([]domain.Song, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Song), args.Error(1)
}

func (m *mockLibraryService) CreatePlaylist(ctx context.Context, userName, name string, tokens []string) (*domain.Playlist, error) {
	args := m.Called(ctx, userName, name, tokens)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *mockLibraryService) GetPlaylist(ctx context.Context, idHex string) (*domain.Playlist, error) {
	args := m.Called(ctx, idHex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

type mockSongService struct {
	mock.Mock
}

func (m *mockSongService) ArtistDashboard(ctx context.Context, email string) (*domain.Artist, bool, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Artist), args.Bool(1), args.Error(2)
}

func (m *mockSongService) AddSong(ctx context.Context, email, title, filename, contentType string, file io.Reader) (*domain.Song, error) {
	args := m.Called(ctx, email, title, filename, contentType, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *mockSongService) EditSong(ctx context.Context, email, songIDHex, newTitle string) error {
	args := m.Called(ctx, email, songIDHex, newTitle)
	return args.Error(0)
}

func (m *mockSongService) DeleteSong(ctx context.Context, email, songIDHex string) error {
	args := m.Called(ctx, email, songIDHex)
	return args.Error(0)
}

func (m *mockSongService) SubmitQuery(ctx context.Context, email, text string) error {
	args := m.Called(ctx, email, text)
	return args.Error(0)
}

type mockModerationService struct {
	mock.Mock
}

func (m *mockModerationService) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artist), args.Error(1)
}

func (m *mockModerationService) ListBannedArtists(ctx context.Context) ([]domain.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artist), args.Error(1)
}

func (m *mockModerationService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockModerationService) ListQueries(ctx context.Context) ([]domain.Query, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Query), args.Error(1)
}

func (m *mockModerationService) ArtistSongs(ctx context.Context, idHex string) ([]domain.Song, error) {
	args := m.Called(ctx, idHex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Song), args.Error(1)
}

func (m *mockModerationService) BanArtist(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *mockModerationService) UnbanArtist(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
