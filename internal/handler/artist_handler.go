package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saransh1220/spoty-backend/internal/domain"
	"github.com/saransh1220/spoty-backend/internal/middleware"
	"github.com/saransh1220/spoty-backend/internal/service"
	"github.com/saransh1220/spoty-backend/internal/view"
)

const maxUploadSize = 32 << 20

type ArtistHandler struct {
	songs service.SongServiceInterface
}

func NewArtistHandler(songs service.SongServiceInterface) *ArtistHandler {
	return &ArtistHandler{songs: songs}
}

func (h *ArtistHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	artist, banned, err := h.songs.ArtistDashboard(r.Context(), identity.Email)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if banned {
		view.Render(w, "artist_banned.html", nil)
		return
	}
	view.Render(w, "artist_dashboard.html", artist)
}

func (h *ArtistHandler) Songs(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	artist, banned, err := h.songs.ArtistDashboard(r.Context(), identity.Email)
	if err != nil || banned {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	view.Render(w, "artist_songs.html", artist)
}

// AddSong handles the multipart upload. The stored filename comes from the
// generated song ID, never from the client.
func (h *ArtistHandler) AddSong(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid upload"})
		return
	}

	title := r.FormValue("title")
	file, header, err := r.FormFile("song_file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing song file"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if _, err := h.songs.AddSong(r.Context(), identity.Email, title, header.Filename, contentType, file); err != nil {
		http.Error(w, "failed to store song", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/artist-dashboard", http.StatusFound)
}

func (h *ArtistHandler) EditSong(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "Unauthorized access"})
		return
	}

	var body struct {
		NewTitle string `json:"new_title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.NewTitle == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid song title"})
		return
	}

	err := h.songs.EditSong(r.Context(), identity.Email, r.PathValue("id"), body.NewTitle)
	if err != nil {
		if errors.Is(err, domain.ErrSongNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Song not found or update failed!"})
			return
		}
		http.Error(w, "failed to update song", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Song title updated successfully!"})
}

func (h *ArtistHandler) DeleteSong(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "Unauthorized access"})
		return
	}

	err := h.songs.DeleteSong(r.Context(), identity.Email, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSongNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Song not found or deletion failed!"})
			return
		}
		http.Error(w, "failed to delete song", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Song deleted successfully!"})
}

// SendQuery files a ban appeal for the logged-in artist.
func (h *ArtistHandler) SendQuery(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid form data"})
		return
	}

	if err := h.songs.SubmitQuery(r.Context(), identity.Email, r.PostFormValue("query")); err != nil {
		if errors.Is(err, domain.ErrQueryEmpty) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Query text is required"})
			return
		}
		http.Error(w, "failed to send query", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/artist-banned", http.StatusFound)
}

func (h *ArtistHandler) BannedPage(w http.ResponseWriter, r *http.Request) {
	view.Render(w, "artist_banned.html", nil)
}
