package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saransh1220/spoty-backend/internal/db"
	"github.com/saransh1220/spoty-backend/internal/domain"
)

type PlaylistRepository struct {
	collection *mongo.Collection
}

func NewPlaylistRepository(m *db.Mongo) *PlaylistRepository {
	return &PlaylistRepository{collection: m.Collection(db.CollectionPlaylists)}
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	_, err := r.collection.InsertOne(ctx, playlist)
	return err
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error) {
	var playlist domain.Playlist
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&playlist)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrPlaylistNotFound
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *PlaylistRepository) ListByUserName(ctx context.Context, userName string) ([]domain.Playlist, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_name": userName})
	if err != nil {
		return nil, err
	}
	var playlists []domain.Playlist
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}
