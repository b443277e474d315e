package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saransh1220/spoty-backend/internal/config"
)

// Collection names used by the application.
const (
	CollectionUsers       = "users"
	CollectionArtists     = "artists"
	CollectionBannedUsers = "banned_users"
	CollectionPlaylists   = "playlists"
	CollectionQueries     = "queries"
)

// Mongo wraps the client and the application database.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongo connects to the document store and verifies the connection with a
// ping. A connection failure is returned to the caller instead of leaving a
// nil handle around.
func NewMongo(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &Mongo{
		Client:   client,
		Database: client.Database(cfg.DBName),
	}, nil
}

// Collection returns a handle to a named collection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.Database.Collection(name)
}

// EnsureIndexes creates the unique email indexes that make registration's
// check-then-insert safe under concurrent requests.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, name := range []string{CollectionUsers, CollectionArtists, CollectionBannedUsers} {
		if _, err := m.Collection(name).Indexes().CreateOne(ctx, emailIndex); err != nil {
			return fmt.Errorf("failed to create email index on %s: %w", name, err)
		}
	}
	return nil
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
