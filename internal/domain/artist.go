package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Song is embedded in the owning artist's document. Src is the public path
// the stored audio file is served from.
type Song struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Title string             `bson:"title" json:"title"`
	Src   string             `bson:"src" json:"src"`
}

// Artist represents an artist account. A banned artist's document lives in
// the banned_users collection instead of artists; an email exists in at most
// one of the two at a time.
type Artist struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	PasswordHash string             `bson:"password" json:"-"`
	Songs        []Song             `bson:"songs" json:"songs"`
}

type ArtistRepository interface {
	Create(ctx context.Context, artist *Artist) error
	GetByEmail(ctx context.Context, email string) (*Artist, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Artist, error)
	ListAll(ctx context.Context) ([]Artist, error)

	AddSong(ctx context.Context, email string, song Song) error
	UpdateSongTitle(ctx context.Context, email string, songID primitive.ObjectID, title string) error
	RemoveSong(ctx context.Context, email string, songID primitive.ObjectID) error

	Ban(ctx context.Context, email string) error
	Unban(ctx context.Context, email string) error
	IsBanned(ctx context.Context, email string) (bool, error)
	ListBanned(ctx context.Context) ([]Artist, error)
}
