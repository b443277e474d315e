package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saransh1220/spoty-backend/internal/domain"
)

type ModerationServiceInterface interface {
	ListArtists(ctx context.Context) ([]domain.Artist, error)
	ListBannedArtists(ctx context.Context) ([]domain.Artist, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListQueries(ctx context.Context) ([]domain.Query, error)
	ArtistSongs(ctx context.Context, idHex string) ([]domain.Song, error)
	BanArtist(ctx context.Context, email string) error
	UnbanArtist(ctx context.Context, email string) error
}

type ModerationService struct {
	artists domain.ArtistRepository
	users   domain.UserRepository
	queries domain.QueryRepository
}

func NewModerationService(artists domain.ArtistRepository, users domain.UserRepository, queries domain.QueryRepository) *ModerationService {
	return &ModerationService{artists: artists, users: users, queries: queries}
}

func (s *ModerationService) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	return s.artists.ListAll(ctx)
}

func (s *ModerationService) ListBannedArtists(ctx context.Context) ([]domain.Artist, error) {
	return s.artists.ListBanned(ctx)
}

func (s *ModerationService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListAll(ctx)
}

func (s *ModerationService) ListQueries(ctx context.Context) ([]domain.Query, error) {
	return s.queries.ListAll(ctx)
}

// ArtistSongs lists an artist's songs for the admin view. An unknown or
// malformed ID yields an empty list rather than an error.
func (s *ModerationService) ArtistSongs(ctx context.Context, idHex string) ([]domain.Song, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return []domain.Song{}, nil
	}
	artist, err := s.artists.GetByID(ctx, id)
	if err == domain.ErrArtistNotFound {
		return []domain.Song{}, nil
	}
	if err != nil {
		return nil, err
	}
	return artist.Songs, nil
}

// BanArtist moves the artist's record into the banned collection.
func (s *ModerationService) BanArtist(ctx context.Context, email string) error {
	return s.artists.Ban(ctx, email)
}

// UnbanArtist restores the record to the active collection unchanged.
func (s *ModerationService) UnbanArtist(ctx context.Context, email string) error {
	return s.artists.Unban(ctx, email)
}
