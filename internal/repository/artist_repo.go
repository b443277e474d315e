package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saransh1220/spoty-backend/internal/db"
	"github.com/saransh1220/spoty-backend/internal/domain"
)

type ArtistRepository struct {
	client  *mongo.Client
	artists *mongo.Collection
	banned  *mongo.Collection
}

// NewArtistRepository creates a repository over the artists and banned_users
// collections. Both are needed because banning relocates the document.
func NewArtistRepository(m *db.Mongo) *ArtistRepository {
	return &ArtistRepository{
		client:  m.Client,
		artists: m.Collection(db.CollectionArtists),
		banned:  m.Collection(db.CollectionBannedUsers),
	}
}

func (r *ArtistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	_, err := r.artists.InsertOne(ctx, artist)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *ArtistRepository) GetByEmail(ctx context.Context, email string) (*domain.Artist, error) {
	return r.findOne(ctx, r.artists, bson.M{"email": email})
}

func (r *ArtistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Artist, error) {
	return r.findOne(ctx, r.artists, bson.M{"_id": id})
}

func (r *ArtistRepository) findOne(ctx context.Context, c *mongo.Collection, filter bson.M) (*domain.Artist, error) {
	var artist domain.Artist
	err := c.FindOne(ctx, filter).Decode(&artist)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrArtistNotFound
	}
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *ArtistRepository) ListAll(ctx context.Context) ([]domain.Artist, error) {
	return listArtists(ctx, r.artists)
}

func (r *ArtistRepository) ListBanned(ctx context.Context) ([]domain.Artist, error) {
	return listArtists(ctx, r.banned)
}

func listArtists(ctx context.Context, c *mongo.Collection) ([]domain.Artist, error) {
	cursor, err := c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var artists []domain.Artist
	if err := cursor.All(ctx, &artists); err != nil {
		return nil, err
	}
	return artists, nil
}

// AddSong appends a song to the artist's embedded list.
func (r *ArtistRepository) AddSong(ctx context.Context, email string, song domain.Song) error {
	res, err := r.artists.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$push": bson.M{"songs": song}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrArtistNotFound
	}
	return nil
}

// UpdateSongTitle replaces the title of the song owned by the given artist.
// The filter is scoped by email so one artist can never touch another's songs.
func (r *ArtistRepository) UpdateSongTitle(ctx context.Context, email string, songID primitive.ObjectID, title string) error {
	res, err := r.artists.UpdateOne(ctx,
		bson.M{"email": email, "songs._id": songID},
		bson.M{"$set": bson.M{"songs.$.title": title}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}

// RemoveSong pulls the song out of the artist's embedded list.
func (r *ArtistRepository) RemoveSong(ctx context.Context, email string, songID primitive.ObjectID) error {
	res, err := r.artists.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$pull": bson.M{"songs": bson.M{"_id": songID}}},
	)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}

// Ban relocates the artist document from artists to banned_users inside a
// session transaction so a crash cannot lose or duplicate the record.
func (r *ArtistRepository) Ban(ctx context.Context, email string) error {
	return r.move(ctx, email, r.artists, r.banned)
}

// Unban relocates the document back from banned_users to artists.
func (r *ArtistRepository) Unban(ctx context.Context, email string) error {
	return r.move(ctx, email, r.banned, r.artists)
}

func (r *ArtistRepository) move(ctx context.Context, email string, from, to *mongo.Collection) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var artist domain.Artist
		if err := from.FindOne(sc, bson.M{"email": email}).Decode(&artist); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, domain.ErrArtistNotFound
			}
			return nil, err
		}
		if _, err := from.DeleteOne(sc, bson.M{"email": email}); err != nil {
			return nil, err
		}
		if _, err := to.InsertOne(sc, &artist); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

func (r *ArtistRepository) IsBanned(ctx context.Context, email string) (bool, error) {
	count, err := r.banned.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
