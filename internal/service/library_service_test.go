package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saransh1220/spoty-backend/internal/domain"
	"github.com/saransh1220/spoty-backend/internal/mocks"
	"github.com/saransh1220/spoty-backend/internal/service"
)

func TestLibraryService_Dashboard(t *testing.T) {
	ctx := context.Background()
	artists := new(mocks.MockArtistRepository)
	playlists := new(mocks.MockPlaylistRepository)
	svc := service.NewLibraryService(artists, playlists)

	songA := domain.Song{ID: primitive.NewObjectID(), Title: "A", Src: "/static/songs/a.mp3"}
	songB := domain.Song{ID: primitive.NewObjectID(), Title: "B", Src: "/static/songs/b.mp3"}
	songC := domain.Song{ID: primitive.NewObjectID(), Title: "C", Src: "/static/songs/c.mp3"}

	artists.On("ListAll", ctx).Return([]domain.Artist{
		{Name: "One", Songs: []domain.Song{songA, songB}},
		{Name: "Two", Songs: []domain.Song{songC}},
	}, nil)
	playlists.On("ListByUserName", ctx, "alice").Return([]domain.Playlist{{Name: "Mix"}}, nil)

	dashboard, err := svc.Dashboard(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice", dashboard.UserName)
	// Songs are flattened in artist iteration order.
	assert.Equal(t, []domain.Song{songA, songB, songC}, dashboard.Songs)
	assert.Len(t, dashboard.Artists, 2)
	assert.Len(t, dashboard.Playlists, 1)
}

func TestLibraryService_ArtistPage(t *testing.T) {
	ctx := context.Background()
	artists := new(mocks.MockArtistRepository)
	svc := service.NewLibraryService(artists, new(mocks.MockPlaylistRepository))

	id := primitive.NewObjectID()
	artists.On("GetByID", ctx, id).Return(&domain.Artist{ID: id, Name: "One"}, nil)

	artist, err := svc.ArtistPage(ctx, id.Hex())
	assert.NoError(t, err)
	assert.Equal(t, "One", artist.Name)

	_, err = svc.ArtistPage(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, domain.ErrArtistNotFound)
	artists.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestLibraryService_CreatePlaylist(t *testing.T) {
	ctx := context.Background()
	playlists := new(mocks.MockPlaylistRepository)
	svc := service.NewLibraryService(new(mocks.MockArtistRepository), playlists)

	playlists.On("Create", ctx, mock.AnythingOfType("*domain.Playlist")).Return(nil)

	playlist, err := svc.CreatePlaylist(ctx, "alice", "Mix", []string{
		"Song A|/path/a.mp3",
		"Song B|/path/b.mp3",
	})
	assert.NoError(t, err)
	assert.Equal(t, "alice", playlist.UserName)
	assert.Equal(t, []domain.PlaylistSong{
		{Title: "Song A", Src: "/path/a.mp3"},
		{Title: "Song B", Src: "/path/b.mp3"},
	}, playlist.Songs)
}

func TestLibraryService_CreatePlaylist_SplitsOnFirstSeparator(t *testing.T) {
	ctx := context.Background()
	playlists := new(mocks.MockPlaylistRepository)
	svc := service.NewLibraryService(new(mocks.MockArtistRepository), playlists)

	playlists.On("Create", ctx, mock.AnythingOfType("*domain.Playlist")).Return(nil)

	playlist, err := svc.CreatePlaylist(ctx, "alice", "Mix", []string{"A|B|/p.mp3"})
	assert.NoError(t, err)
	assert.Equal(t, []domain.PlaylistSong{{Title: "A", Src: "B|/p.mp3"}}, playlist.Songs)
}

func TestLibraryService_CreatePlaylist_MalformedToken(t *testing.T) {
	ctx := context.Background()
	playlists := new(mocks.MockPlaylistRepository)
	svc := service.NewLibraryService(new(mocks.MockArtistRepository), playlists)

	_, err := svc.CreatePlaylist(ctx, "alice", "Mix", []string{"no separator here"})
	assert.ErrorIs(t, err, domain.ErrInvalidSongToken)
	playlists.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLibraryService_GetPlaylist(t *testing.T) {
	ctx := context.Background()
	playlists := new(mocks.MockPlaylistRepository)
	svc := service.NewLibraryService(new(mocks.MockArtistRepository), playlists)

	id := primitive.NewObjectID()
	playlists.On("GetByID", ctx, id).Return(&domain.Playlist{ID: id, Name: "Mix"}, nil)

	playlist, err := svc.GetPlaylist(ctx, id.Hex())
	assert.NoError(t, err)
	assert.Equal(t, "Mix", playlist.Name)

	_, err = svc.GetPlaylist(ctx, "bogus")
	assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
}
