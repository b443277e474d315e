package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saransh1220/spoty-backend/internal/domain"
	"github.com/saransh1220/spoty-backend/internal/service"
	"github.com/saransh1220/spoty-backend/internal/view"
)

type AdminHandler struct {
	moderation service.ModerationServiceInterface
}

func NewAdminHandler(moderation service.ModerationServiceInterface) *AdminHandler {
	return &AdminHandler{moderation: moderation}
}

// Artists lists active and banned artists side by side.
func (h *AdminHandler) Artists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.moderation.ListArtists(r.Context())
	if err != nil {
		http.Error(w, "failed to load artists", http.StatusInternalServerError)
		return
	}
	banned, err := h.moderation.ListBannedArtists(r.Context())
	if err != nil {
		http.Error(w, "failed to load banned artists", http.StatusInternalServerError)
		return
	}
	view.Render(w, "admin_artist.html", map[string]any{
		"Artists":       artists,
		"BannedArtists": banned,
	})
}

func (h *AdminHandler) ArtistSongs(w http.ResponseWriter, r *http.Request) {
	songs, err := h.moderation.ArtistSongs(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "failed to load songs", http.StatusInternalServerError)
		return
	}
	view.Render(w, "admin_artist_songs.html", map[string]any{"Songs": songs})
}

func (h *AdminHandler) BanArtist(w http.ResponseWriter, r *http.Request) {
	email, ok := decodeArtistEmail(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No artist email provided"})
		return
	}

	if err := h.moderation.BanArtist(r.Context(), email); err != nil {
		if errors.Is(err, domain.ErrArtistNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Artist not found"})
			return
		}
		http.Error(w, "failed to ban artist", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Artist banned successfully"})
}

func (h *AdminHandler) UnbanArtist(w http.ResponseWriter, r *http.Request) {
	email, ok := decodeArtistEmail(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No artist email provided"})
		return
	}

	if err := h.moderation.UnbanArtist(r.Context(), email); err != nil {
		if errors.Is(err, domain.ErrArtistNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Artist not found in banned list"})
			return
		}
		http.Error(w, "failed to unban artist", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Artist unbanned successfully"})
}

func (h *AdminHandler) Queries(w http.ResponseWriter, r *http.Request) {
	queries, err := h.moderation.ListQueries(r.Context())
	if err != nil {
		http.Error(w, "failed to load queries", http.StatusInternalServerError)
		return
	}
	view.Render(w, "admin_queries.html", map[string]any{"Queries": queries})
}

func (h *AdminHandler) BannedArtists(w http.ResponseWriter, r *http.Request) {
	banned, err := h.moderation.ListBannedArtists(r.Context())
	if err != nil {
		http.Error(w, "failed to load banned artists", http.StatusInternalServerError)
		return
	}
	view.Render(w, "admin_banned_artists.html", map[string]any{"BannedArtists": banned})
}

func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.moderation.ListUsers(r.Context())
	if err != nil {
		http.Error(w, "failed to load users", http.StatusInternalServerError)
		return
	}
	view.Render(w, "admin_users.html", map[string]any{"Users": users})
}

func decodeArtistEmail(r *http.Request) (string, bool) {
	var body struct {
		ArtistEmail string `json:"artistEmail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ArtistEmail == "" {
		return "", false
	}
	return body.ArtistEmail, true
}
