package domain

type Role string

const (
	RoleListener Role = "listener"
	RoleArtist   Role = "artist"
	RoleAdmin    Role = "admin"
)

// Identity is the authenticated principal carried through the request
// context. Name is set for listeners and artists, Email for artists only.
type Identity struct {
	Role  Role   `json:"role"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
