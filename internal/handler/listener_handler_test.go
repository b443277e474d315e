package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saransh1220/spoty-backend/internal/domain"
	"github.com/saransh1220/spoty-backend/internal/handler"
	"github.com/saransh1220/spoty-backend/internal/service"
)

func listenerIdentity() *domain.Identity {
	return &domain.Identity{Role: domain.RoleListener, Name: "Alice", Email: "a@example.com"}
}

func TestListenerHandler_Dashboard(t *testing.T) {
	svc := new(mockLibraryService)
	h := handler.NewListenerHandler(svc)

	svc.On("Dashboard", mock.Anything, "Alice").Return(&service.DashboardView{
		UserName: "Alice",
		Songs:    []domain.Song{{Title: "First Track", Src: "/static/songs/a.mp3"}},
	}, nil).Once()

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/user-dashboard", nil), listenerIdentity())
	w := httptest.NewRecorder()
	h.Dashboard(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice")
	assert.Contains(t, w.Body.String(), "First Track")
}

func TestListenerHandler_ArtistPage(t *testing.T) {
	svc := new(mockLibraryService)
	h := handler.NewListenerHandler(svc)
	id := primitive.NewObjectID().Hex()

	svc.On("ArtistPage", mock.Anything, id).Return(&domain.Artist{Name: "Band"}, nil).Once()
	req := httptest.NewRequest(http.MethodGet, "/artist/"+id, nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()
	h.ArtistPage(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Band")
}

func TestListenerHandler_ArtistPage_NotFound(t *testing.T) {
	svc := new(mockLibraryService)
	h := handler.NewListenerHandler(svc)

	svc.On("ArtistPage", mock.Anything, "nope").Return(nil, domain.ErrArtistNotFound).Once()
	req := httptest.NewRequest(http.MethodGet, "/artist/nope", nil)
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()
	h.ArtistPage(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Artist not found")
}

func TestListenerHandler_CreatePlaylist(t *testing.T) {
	svc := new(mockLibraryService)
	h := handler.NewListenerHandler(svc)

	tokens := []string{"First Track|/static/songs/a.mp3", "Second Track|/static/songs/b.mp3"}
	svc.On("CreatePlaylist", mock.Anything, "Alice", "Roadtrip", tokens).Return(&domain.Playlist{Name: "Roadtrip"}, nil).Once()

	req := postForm("/create-playlist", url.Values{
		"playlist_name":  {"Roadtrip"},
		"selected_songs": tokens,
	})
	req = withIdentity(req, listenerIdentity())
	w := httptest.NewRecorder()
	h.CreatePlaylist(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/user-dashboard", w.Header().Get("Location"))
	svc.AssertExpectations(t)
}

func TestListenerHandler_CreatePlaylist_MalformedToken(t *testing.T) {
	svc := new(mockLibraryService)
	h := handler.NewListenerHandler(svc)

	svc.On("CreatePlaylist", mock.Anything, "Alice", "Roadtrip", []string{"no-separator"}).
		Return(nil, domain.ErrInvalidSongToken).Once()

	req := postForm("/create-playlist", url.Values{
		"playlist_name":  {"Roadtrip"},
		"selected_songs": {"no-separator"},
	})
	req = withIdentity(req, listenerIdentity())
	w := httptest.NewRecorder()
	h.CreatePlaylist(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Malformed song selection")
}

func TestListenerHandler_CreatePlaylistPage(t *testing.T) {
	svc := new(mockLibraryService)
	h := handler.NewListenerHandler(svc)

	svc.On("AllSongs", mock.Anything).Return([]domain.Song{{Title: "First Track", Src: "/static/songs/a.mp3"}}, nil).Once()
	req := withIdentity(httptest.NewRequest(http.MethodGet, "/create-playlist", nil), listenerIdentity())
	w := httptest.NewRecorder()
	h.CreatePlaylistPage(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// Option values carry the title and source joined by the separator.
	assert.Contains(t, w.Body.String(), "First Track|/static/songs/a.mp3")
}

func TestListenerHandler_ViewPlaylist(t *testing.T) {
	svc := new(mockLibraryService)
	h := handler.NewListenerHandler(svc)
	id := primitive.NewObjectID().Hex()

	svc.On("GetPlaylist", mock.Anything, id).Return(&domain.Playlist{
		Name:  "Roadtrip",
		Songs: []domain.PlaylistSong{{Title: "First Track", Src: "/static/songs/a.mp3"}},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/playlist/"+id, nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()
	h.ViewPlaylist(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Roadtrip")
	assert.Contains(t, w.Body.String(), "First Track")
}

func TestListenerHandler_ViewPlaylist_NotFound(t *testing.T) {
	svc := new(mockLibraryService)
	h := handler.NewListenerHandler(svc)

	svc.On("GetPlaylist", mock.Anything, "missing").Return(nil, domain.ErrPlaylistNotFound).Once()
	req := httptest.NewRequest(http.MethodGet, "/playlist/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()
	h.ViewPlaylist(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Playlist not found")
}
