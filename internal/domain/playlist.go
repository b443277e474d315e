package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaylistSong is a snapshot of a song taken at playlist creation time.
// Later edits to the artist's copy do not propagate.
type PlaylistSong struct {
	Title string `bson:"title" json:"title"`
	Src   string `bson:"src" json:"src"`
}

// Playlist belongs to a listener, keyed by display name.
type Playlist struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserName string             `bson:"user_name" json:"user_name"`
	Name     string             `bson:"name" json:"name"`
	Songs    []PlaylistSong     `bson:"songs" json:"songs"`
}

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *Playlist) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Playlist, error)
	ListByUserName(ctx context.Context, userName string) ([]Playlist, error)
}
