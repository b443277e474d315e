package domain

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrArtistNotFound     = errors.New("artist not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("invalid artist password")
	ErrArtistBanned       = errors.New("artist is banned")
	ErrSongNotFound       = errors.New("song not found")
	ErrPlaylistNotFound   = errors.New("playlist not found")
	ErrQueryEmpty         = errors.New("query text is empty")
	ErrInvalidSongToken   = errors.New("malformed song selection")
	ErrUnauthorized       = errors.New("unauthorized action")
)
