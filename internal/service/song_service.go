package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saransh1220/spoty-backend/internal/domain"
	"github.com/saransh1220/spoty-backend/internal/storage"
)

type SongServiceInterface interface {
	ArtistDashboard(ctx context.Context, email string) (*domain.Artist, bool, error)
	AddSong(ctx context.Context, email, title, filename, contentType string, file io.Reader) (*domain.Song, error)
	EditSong(ctx context.Context, email, songIDHex, newTitle string) error
	DeleteSong(ctx context.Context, email, songIDHex string) error
	SubmitQuery(ctx context.Context, email, text string) error
}

type SongService struct {
	artists domain.ArtistRepository
	queries domain.QueryRepository
	files   storage.FileStorage
}

func NewSongService(artists domain.ArtistRepository, queries domain.QueryRepository, files storage.FileStorage) *SongService {
	return &SongService{artists: artists, queries: queries, files: files}
}

// ArtistDashboard returns the artist for the session email and whether the
// account is banned. A banned artist's document lives in banned_users, so the
// banned flag is reported without the record.
func (s *SongService) ArtistDashboard(ctx context.Context, email string) (*domain.Artist, bool, error) {
	banned, err := s.artists.IsBanned(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if banned {
		return nil, true, nil
	}

	artist, err := s.artists.GetByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	return artist, false, nil
}

// AddSong stores the uploaded file under a key derived from the generated
// song ID, so client filenames can never collide or overwrite each other,
// then appends the song to the artist's list.
func (s *SongService) AddSong(ctx context.Context, email, title, filename, contentType string, file io.Reader) (*domain.Song, error) {
	id := primitive.NewObjectID()
	key := fmt.Sprintf("songs/%s%s", id.Hex(), filepath.Ext(filename))

	src, err := s.files.Upload(ctx, key, file, contentType)
	if err != nil {
		return nil, err
	}

	song := domain.Song{ID: id, Title: title, Src: src}
	if err := s.artists.AddSong(ctx, email, song); err != nil {
		return nil, err
	}
	return &song, nil
}

// EditSong replaces only the title of the artist's own song.
func (s *SongService) EditSong(ctx context.Context, email, songIDHex, newTitle string) error {
	id, err := primitive.ObjectIDFromHex(songIDHex)
	if err != nil {
		return domain.ErrSongNotFound
	}
	return s.artists.UpdateSongTitle(ctx, email, id, newTitle)
}

// DeleteSong removes the song from the artist's own list.
func (s *SongService) DeleteSong(ctx context.Context, email, songIDHex string) error {
	id, err := primitive.ObjectIDFromHex(songIDHex)
	if err != nil {
		return domain.ErrSongNotFound
	}
	return s.artists.RemoveSong(ctx, email, id)
}

// SubmitQuery files a ban-appeal query for admin review. Queries start
// pending; no route resolves them.
func (s *SongService) SubmitQuery(ctx context.Context, email, text string) error {
	if text == "" {
		return domain.ErrQueryEmpty
	}
	return s.queries.Create(ctx, &domain.Query{
		ArtistEmail: email,
		Text:        text,
		Status:      domain.QueryStatusPending,
	})
}
