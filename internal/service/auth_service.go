package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/saransh1220/spoty-backend/internal/domain"
)

// Admin access is a single fixed credential pair. There is no admin account
// store and no rotation.
const (
	adminEmail    = "admin@gmail.com"
	adminPassword = "admin"
)

type RegisterReq struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// SessionIssuer is the slice of the session manager the auth service needs.
type SessionIssuer interface {
	Issue(ctx context.Context, identity domain.Identity) (string, error)
	Destroy(ctx context.Context, token string) error
}

type AuthServiceInterface interface {
	RegisterListener(ctx context.Context, req RegisterReq) (*domain.User, error)
	RegisterArtist(ctx context.Context, req RegisterReq) (*domain.Artist, error)
	LoginListener(ctx context.Context, email, password string) (string, error)
	LoginArtist(ctx context.Context, email, password string) (string, error)
	LoginAdmin(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
}

type AuthService struct {
	users    domain.UserRepository
	artists  domain.ArtistRepository
	sessions SessionIssuer
}

func NewAuthService(users domain.UserRepository, artists domain.ArtistRepository, sessions SessionIssuer) *AuthService {
	return &AuthService{users: users, artists: artists, sessions: sessions}
}

// RegisterListener creates a listener account. The email must not already be
// registered; the unique index backs this check up under concurrency.
func (s *AuthService) RegisterListener(ctx context.Context, req RegisterReq) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterArtist creates an artist account with an empty song list.
func (s *AuthService) RegisterArtist(ctx context.Context, req RegisterReq) (*domain.Artist, error) {
	if _, err := s.artists.GetByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if err != domain.ErrArtistNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	artist := &domain.Artist{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Songs:        []domain.Song{},
	}
	if err := s.artists.Create(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

// LoginListener validates credentials and opens a listener session. Unknown
// email and wrong password collapse into the same error on purpose.
func (s *AuthService) LoginListener(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err == domain.ErrUserNotFound {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.sessions.Issue(ctx, domain.Identity{Role: domain.RoleListener, Name: user.Name})
}

// LoginArtist validates credentials and opens an artist session. The banned
// check runs before any password comparison, so a banned artist is sent to
// the appeal page without learning whether their password is still correct.
// Unknown email and wrong password stay distinguishable, unlike listeners.
func (s *AuthService) LoginArtist(ctx context.Context, email, password string) (string, error) {
	banned, err := s.artists.IsBanned(ctx, email)
	if err != nil {
		return "", err
	}
	if banned {
		return "", domain.ErrArtistBanned
	}

	artist, err := s.artists.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(artist.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrWrongPassword
	}

	return s.sessions.Issue(ctx, domain.Identity{Role: domain.RoleArtist, Name: artist.Name, Email: artist.Email})
}

// LoginAdmin checks the fixed credential pair and opens an admin session.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (string, error) {
	if email != adminEmail || password != adminPassword {
		return "", domain.ErrInvalidCredentials
	}
	return s.sessions.Issue(ctx, domain.Identity{Role: domain.RoleAdmin})
}

// Logout revokes the session behind the token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}
