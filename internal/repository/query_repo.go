package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saransh1220/spoty-backend/internal/db"
	"github.com/saransh1220/spoty-backend/internal/domain"
)

type QueryRepository struct {
	collection *mongo.Collection
}

func NewQueryRepository(m *db.Mongo) *QueryRepository {
	return &QueryRepository{collection: m.Collection(db.CollectionQueries)}
}

func (r *QueryRepository) Create(ctx context.Context, query *domain.Query) error {
	_, err := r.collection.InsertOne(ctx, query)
	return err
}

func (r *QueryRepository) ListAll(ctx context.Context) ([]domain.Query, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var queries []domain.Query
	if err := cursor.All(ctx, &queries); err != nil {
		return nil, err
	}
	return queries, nil
}
