package handler

import (
	"net/http"
	"time"

	"github.com/saransh1220/spoty-backend/internal/domain"
	"github.com/saransh1220/spoty-backend/internal/middleware"
	"github.com/saransh1220/spoty-backend/internal/service"
	"github.com/saransh1220/spoty-backend/internal/view"
)

type AuthHandler struct {
	service   service.AuthServiceInterface
	cookieTTL time.Duration
}

func NewAuthHandler(service service.AuthServiceInterface, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{service: service, cookieTTL: cookieTTL}
}

func (h *AuthHandler) RegisterUserPage(w http.ResponseWriter, r *http.Request) {
	view.Render(w, "register_user.html", nil)
}

func (h *AuthHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, `{"message": "Invalid form data"}`, http.StatusBadRequest)
		return
	}

	req := service.RegisterReq{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Phone:    r.PostFormValue("phone"),
		Password: r.PostFormValue("password"),
	}

	if _, err := h.service.RegisterListener(r.Context(), req); err != nil {
		if err == domain.ErrEmailTaken {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Email already registered!"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Registration failed"})
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *AuthHandler) RegisterArtistPage(w http.ResponseWriter, r *http.Request) {
	view.Render(w, "register_artist.html", nil)
}

func (h *AuthHandler) RegisterArtist(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, `{"message": "Invalid form data"}`, http.StatusBadRequest)
		return
	}

	req := service.RegisterReq{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Phone:    r.PostFormValue("phone"),
		Password: r.PostFormValue("password"),
	}

	if _, err := h.service.RegisterArtist(r.Context(), req); err != nil {
		if err == domain.ErrEmailTaken {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Email already registered!"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Registration failed"})
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	view.Render(w, "login.html", nil)
}

// Login serves the combined listener/artist form. The submitted role is
// inferred from which field set is present, not from an explicit selector.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, `{"message": "Invalid form data"}`, http.StatusBadRequest)
		return
	}

	switch {
	case r.PostForm.Has("email1"):
		h.loginListener(w, r)
	case r.PostForm.Has("email2"):
		h.loginArtist(w, r)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Unknown login form"})
	}
}

func (h *AuthHandler) loginListener(w http.ResponseWriter, r *http.Request) {
	token, err := h.service.LoginListener(r.Context(), r.PostFormValue("email1"), r.PostFormValue("password1"))
	if err != nil {
		// Unknown email and wrong password share one message for listeners.
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid user email or password!"})
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/user-dashboard", http.StatusFound)
}

func (h *AuthHandler) loginArtist(w http.ResponseWriter, r *http.Request) {
	token, err := h.service.LoginArtist(r.Context(), r.PostFormValue("email2"), r.PostFormValue("password2"))
	switch err {
	case nil:
	case domain.ErrArtistBanned:
		http.Redirect(w, r, "/artist-banned", http.StatusFound)
		return
	case domain.ErrArtistNotFound:
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid artist email!"})
		return
	case domain.ErrWrongPassword:
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid artist password!"})
		return
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Login failed"})
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/artist-dashboard", http.StatusFound)
}

func (h *AuthHandler) AdminLoginPage(w http.ResponseWriter, r *http.Request) {
	view.Render(w, "admin_login.html", map[string]string{})
}

func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, `{"message": "Invalid form data"}`, http.StatusBadRequest)
		return
	}

	token, err := h.service.LoginAdmin(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		view.Render(w, "admin_login.html", map[string]string{"Error": "Incorrect email or password."})
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/admin-artist", http.StatusFound)
}

// Logout revokes the session server-side and expires the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		_ = h.service.Logout(r.Context(), cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
