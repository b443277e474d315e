package middleware

import (
	"context"
	"net/http"

	"github.com/saransh1220/spoty-backend/internal/domain"
	"github.com/saransh1220/spoty-backend/internal/session"
)

type contextKey string

const ContextKeyIdentity contextKey = "identity"

// SessionCookieName is the cookie the session token travels in.
const SessionCookieName = "session"

// SessionMiddleware gates routes on a required role. Page routes redirect to
// the relevant login on failure; JSON routes answer 403.
type SessionMiddleware struct {
	manager *session.Manager
}

func NewSessionMiddleware(manager *session.Manager) *SessionMiddleware {
	return &SessionMiddleware{manager: manager}
}

// RequirePage guards a server-rendered route, redirecting to loginPath when
// there is no session with the required role.
func (m *SessionMiddleware) RequirePage(role domain.Role, loginPath string) func(http.Handler) http.Handler {
	return m.require(role, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, loginPath, http.StatusFound)
	})
}

// RequireJSON guards an API route, answering 403 when there is no session
// with the required role.
func (m *SessionMiddleware) RequireJSON(role domain.Role) func(http.Handler) http.Handler {
	return m.require(role, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": "Unauthorized access"}`))
	})
}

func (m *SessionMiddleware) require(role domain.Role, reject http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := m.identityFromRequest(r)
			if identity == nil || identity.Role != role {
				reject(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyIdentity, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *SessionMiddleware) identityFromRequest(r *http.Request) *domain.Identity {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	identity, err := m.manager.Validate(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return identity
}

// IdentityFromContext retrieves the authenticated identity placed there by
// the guard.
func IdentityFromContext(ctx context.Context) (*domain.Identity, bool) {
	identity, ok := ctx.Value(ContextKeyIdentity).(*domain.Identity)
	return identity, ok
}
