package handler

import (
	"errors"
	"net/http"

	"github.com/saransh1220/spoty-backend/internal/domain"
	"github.com/saransh1220/spoty-backend/internal/middleware"
	"github.com/saransh1220/spoty-backend/internal/service"
	"github.com/saransh1220/spoty-backend/internal/view"
)

type ListenerHandler struct {
	library service.LibraryServiceInterface
}

func NewListenerHandler(library service.LibraryServiceInterface) *ListenerHandler {
	return &ListenerHandler{library: library}
}

func (h *ListenerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	dashboard, err := h.library.Dashboard(r.Context(), identity.Name)
	if err != nil {
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		return
	}
	view.Render(w, "user_dashboard.html", dashboard)
}

// ArtistPage is public; no session required.
func (h *ListenerHandler) ArtistPage(w http.ResponseWriter, r *http.Request) {
	artist, err := h.library.ArtistPage(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrArtistNotFound) {
			http.Error(w, "Artist not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load artist", http.StatusInternalServerError)
		return
	}
	view.Render(w, "artist.html", artist)
}

func (h *ListenerHandler) CreatePlaylistPage(w http.ResponseWriter, r *http.Request) {
	songs, err := h.library.AllSongs(r.Context())
	if err != nil {
		http.Error(w, "failed to load songs", http.StatusInternalServerError)
		return
	}
	view.Render(w, "create_playlist.html", map[string]any{"Songs": songs})
}

func (h *ListenerHandler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid form data"})
		return
	}

	name := r.PostFormValue("playlist_name")
	tokens := r.PostForm["selected_songs"]

	if _, err := h.library.CreatePlaylist(r.Context(), identity.Name, name, tokens); err != nil {
		if errors.Is(err, domain.ErrInvalidSongToken) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Malformed song selection"})
			return
		}
		http.Error(w, "failed to create playlist", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/user-dashboard", http.StatusFound)
}

func (h *ListenerHandler) ViewPlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := h.library.GetPlaylist(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPlaylistNotFound) {
			http.Error(w, "Playlist not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load playlist", http.StatusInternalServerError)
		return
	}
	view.Render(w, "view_playlist.html", playlist)
}
