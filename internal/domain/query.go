package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const QueryStatusPending = "pending"

// Query is a ban-appeal message from a banned artist to the admins.
type Query struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ArtistEmail string             `bson:"artist_email" json:"artist_email"`
	Text        string             `bson:"query" json:"query"`
	Status      string             `bson:"status" json:"status"`
}

type QueryRepository interface {
	Create(ctx context.Context, query *Query) error
	ListAll(ctx context.Context) ([]Query, error)
}
