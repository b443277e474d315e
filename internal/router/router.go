package router

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saransh1220/spoty-backend/internal/domain"
	"github.com/saransh1220/spoty-backend/internal/handler"
	"github.com/saransh1220/spoty-backend/internal/middleware"
	"github.com/saransh1220/spoty-backend/internal/view"
)

type Router struct {
	authHandler     *handler.AuthHandler
	listenerHandler *handler.ListenerHandler
	artistHandler   *handler.ArtistHandler
	adminHandler    *handler.AdminHandler
	sessions        *middleware.SessionMiddleware
	staticDir       string
	requestTimeout  time.Duration
}

func NewRouter(
	authHandler *handler.AuthHandler,
	listenerHandler *handler.ListenerHandler,
	artistHandler *handler.ArtistHandler,
	adminHandler *handler.AdminHandler,
	sessions *middleware.SessionMiddleware,
	staticDir string,
	requestTimeout time.Duration,
) *Router {
	return &Router{
		authHandler:     authHandler,
		listenerHandler: listenerHandler,
		artistHandler:   artistHandler,
		adminHandler:    adminHandler,
		sessions:        sessions,
		staticDir:       staticDir,
		requestTimeout:  requestTimeout,
	}
}

func (r *Router) Setup() http.Handler {
	mux := http.NewServeMux()

	listenerPage := r.sessions.RequirePage(domain.RoleListener, "/login")
	artistPage := r.sessions.RequirePage(domain.RoleArtist, "/login")
	artistJSON := r.sessions.RequireJSON(domain.RoleArtist)
	adminPage := r.sessions.RequirePage(domain.RoleAdmin, "/admin-login")
	adminJSON := r.sessions.RequireJSON(domain.RoleAdmin)

	// Health Check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, req *http.Request) {
		view.Render(w, "index.html", nil)
	})
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(r.staticDir))))

	// Registration and login
	mux.HandleFunc("GET /register-user", r.authHandler.RegisterUserPage)
	mux.HandleFunc("POST /register-user", r.authHandler.RegisterUser)
	mux.HandleFunc("GET /register-artist", r.authHandler.RegisterArtistPage)
	mux.HandleFunc("POST /register-artist", r.authHandler.RegisterArtist)
	mux.HandleFunc("GET /login", r.authHandler.LoginPage)
	mux.HandleFunc("POST /login", r.authHandler.Login)
	mux.HandleFunc("GET /admin-login", r.authHandler.AdminLoginPage)
	mux.HandleFunc("POST /admin-login", r.authHandler.AdminLogin)
	mux.HandleFunc("GET /logout", r.authHandler.Logout)

	// Listener pages
	mux.Handle("GET /user-dashboard", listenerPage(http.HandlerFunc(r.listenerHandler.Dashboard)))
	mux.HandleFunc("GET /artist/{id}", r.listenerHandler.ArtistPage)
	mux.Handle("GET /create_playlist", listenerPage(http.HandlerFunc(r.listenerHandler.CreatePlaylistPage)))
	mux.Handle("POST /create_playlist", listenerPage(http.HandlerFunc(r.listenerHandler.CreatePlaylist)))
	mux.Handle("GET /playlist/{id}", listenerPage(http.HandlerFunc(r.listenerHandler.ViewPlaylist)))

	// Artist pages
	mux.Handle("GET /artist-dashboard", artistPage(http.HandlerFunc(r.artistHandler.Dashboard)))
	mux.Handle("GET /artist-songs", artistPage(http.HandlerFunc(r.artistHandler.Songs)))
	mux.Handle("POST /add-song", artistPage(http.HandlerFunc(r.artistHandler.AddSong)))
	mux.Handle("POST /send-query", artistPage(http.HandlerFunc(r.artistHandler.SendQuery)))
	mux.HandleFunc("GET /artist-banned", r.artistHandler.BannedPage)
	mux.Handle("POST /edit-song/{id}", artistJSON(http.HandlerFunc(r.artistHandler.EditSong)))
	mux.Handle("DELETE /delete-song/{id}", artistJSON(http.HandlerFunc(r.artistHandler.DeleteSong)))

	// Admin pages
	mux.Handle("GET /admin-artist", adminPage(http.HandlerFunc(r.adminHandler.Artists)))
	mux.Handle("POST /admin-artist-songs/{id}", adminPage(http.HandlerFunc(r.adminHandler.ArtistSongs)))
	mux.Handle("GET /admin/queries", adminPage(http.HandlerFunc(r.adminHandler.Queries)))
	mux.Handle("GET /admin/banned-artists", adminPage(http.HandlerFunc(r.adminHandler.BannedArtists)))
	mux.Handle("GET /admin-users", adminPage(http.HandlerFunc(r.adminHandler.Users)))
	mux.Handle("POST /banArtist", adminJSON(http.HandlerFunc(r.adminHandler.BanArtist)))
	mux.Handle("POST /unbanArtist", adminJSON(http.HandlerFunc(r.adminHandler.UnbanArtist)))

	var h http.Handler = mux
	h = middleware.Timeout(r.requestTimeout)(h)
	h = middleware.PrometheusMiddleware(h)
	return h
}
