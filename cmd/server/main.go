package main

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/saransh1220/spoty-backend/internal/config"
	"github.com/saransh1220/spoty-backend/internal/db"
	"github.com/saransh1220/spoty-backend/internal/handler"
	"github.com/saransh1220/spoty-backend/internal/middleware"
	"github.com/saransh1220/spoty-backend/internal/repository"
	"github.com/saransh1220/spoty-backend/internal/router"
	"github.com/saransh1220/spoty-backend/internal/service"
	"github.com/saransh1220/spoty-backend/internal/session"
	"github.com/saransh1220/spoty-backend/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	log.Info("connecting to mongo", "uri", cfg.Mongo.URI, "db", cfg.Mongo.DBName)
	mongo, err := db.NewMongo(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal("failed to connect to mongo", "err", err)
	}
	defer mongo.Close(ctx)

	if err := mongo.EnsureIndexes(ctx); err != nil {
		log.Fatal("failed to ensure indexes", "err", err)
	}

	rdb, err := db.NewRedis(cfg.Redis)
	if err != nil {
		log.Fatal("failed to connect to redis", "err", err)
	}
	defer rdb.Close()

	files, err := newFileStorage(ctx, cfg.FileStorage)
	if err != nil {
		log.Fatal("failed to set up file storage", "err", err)
	}

	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL, session.NewRedisStore(rdb))

	userRepo := repository.NewUserRepository(mongo)
	artistRepo := repository.NewArtistRepository(mongo)
	playlistRepo := repository.NewPlaylistRepository(mongo)
	queryRepo := repository.NewQueryRepository(mongo)

	authService := service.NewAuthService(userRepo, artistRepo, sessions)
	libraryService := service.NewLibraryService(artistRepo, playlistRepo)
	songService := service.NewSongService(artistRepo, queryRepo, files)
	moderationService := service.NewModerationService(artistRepo, userRepo, queryRepo)

	authHandler := handler.NewAuthHandler(authService, cfg.Session.TTL)
	listenerHandler := handler.NewListenerHandler(libraryService)
	artistHandler := handler.NewArtistHandler(songService)
	adminHandler := handler.NewAdminHandler(moderationService)

	sessionMW := middleware.NewSessionMiddleware(sessions)
	appRouter := router.NewRouter(
		authHandler, listenerHandler, artistHandler, adminHandler,
		sessionMW, cfg.FileStorage.LocalPath, cfg.Server.RequestTimeout,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      appRouter.Setup(),
		ReadTimeout:  cfg.Server.RequestTimeout,
		WriteTimeout: cfg.Server.RequestTimeout + 10*time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	log.Info("server starting", "port", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server failed", "err", err)
	}
}

func newFileStorage(ctx context.Context, cfg config.FileStorageConfig) (storage.FileStorage, error) {
	if cfg.UseS3 {
		log.Info("using s3 file storage", "bucket", cfg.S3BucketName)
		return storage.NewS3Storage(ctx, cfg)
	}
	log.Info("using local file storage", "path", cfg.LocalPath)
	return storage.NewLocalStorage(cfg.LocalPath, cfg.LocalBaseURL)
}
