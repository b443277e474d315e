package service

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saransh1220/spoty-backend/internal/domain"
)

// DashboardView is everything the listener dashboard shows: every artist,
// their songs flattened into one list, and the listener's own playlists.
type DashboardView struct {
	UserName  string
	Artists   []domain.Artist
	Songs     []domain.Song
	Playlists []domain.Playlist
}

type LibraryServiceInterface interface {
	Dashboard(ctx context.Context, userName string) (*DashboardView, error)
	ArtistPage(ctx context.Context, idHex string) (*domain.Artist, error)
	AllSongs(ctx context.Context) ([]domain.Song, error)
	CreatePlaylist(ctx context.Context, userName, name string, tokens []string) (*domain.Playlist, error)
	GetPlaylist(ctx context.Context, idHex string) (*domain.Playlist, error)
}

type LibraryService struct {
	artists   domain.ArtistRepository
	playlists domain.PlaylistRepository
}

func NewLibraryService(artists domain.ArtistRepository, playlists domain.PlaylistRepository) *LibraryService {
	return &LibraryService{artists: artists, playlists: playlists}
}

// Dashboard aggregates all artists' songs and the listener's playlists.
// Songs keep store iteration order; there is no pagination.
func (s *LibraryService) Dashboard(ctx context.Context, userName string) (*DashboardView, error) {
	artists, err := s.artists.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var songs []domain.Song
	for _, artist := range artists {
		songs = append(songs, artist.Songs...)
	}

	playlists, err := s.playlists.ListByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}

	return &DashboardView{
		UserName:  userName,
		Artists:   artists,
		Songs:     songs,
		Playlists: playlists,
	}, nil
}

// ArtistPage looks up a single artist's public page by ID.
func (s *LibraryService) ArtistPage(ctx context.Context, idHex string) (*domain.Artist, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, domain.ErrArtistNotFound
	}
	return s.artists.GetByID(ctx, id)
}

// AllSongs flattens every artist's songs, used by the playlist creation page.
func (s *LibraryService) AllSongs(ctx context.Context) ([]domain.Song, error) {
	artists, err := s.artists.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var songs []domain.Song
	for _, artist := range artists {
		songs = append(songs, artist.Songs...)
	}
	return songs, nil
}

// CreatePlaylist persists a snapshot of the selected songs. Each token is
// "title|src", split on the first separator; the stored copies do not track
// later edits to the artist's songs.
func (s *LibraryService) CreatePlaylist(ctx context.Context, userName, name string, tokens []string) (*domain.Playlist, error) {
	songs := make([]domain.PlaylistSong, 0, len(tokens))
	for _, token := range tokens {
		title, src, found := strings.Cut(token, "|")
		if !found {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSongToken, token)
		}
		songs = append(songs, domain.PlaylistSong{Title: title, Src: src})
	}

	playlist := &domain.Playlist{
		UserName: userName,
		Name:     name,
		Songs:    songs,
	}
	if err := s.playlists.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// GetPlaylist looks up a playlist by ID.
func (s *LibraryService) GetPlaylist(ctx context.Context, idHex string) (*domain.Playlist, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, domain.ErrPlaylistNotFound
	}
	return s.playlists.GetByID(ctx, id)
}
