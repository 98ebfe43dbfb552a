package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/saiyeshwin/housebook-backend/internal/api/httpx"
	"github.com/saiyeshwin/housebook-backend/internal/models"
	"github.com/saiyeshwin/housebook-backend/internal/services"
)

type ctxKey string

const ctxRoleKey ctxKey = "role"

// RoleFrom returns the role the session middleware resolved for this request.
func RoleFrom(ctx context.Context) (models.Role, bool) {
	v, ok := ctx.Value(ctxRoleKey).(models.Role)
	return v, ok
}

// SessionMiddleware resolves the Authorization token to a role on every
// protected request. The role always comes from the session store; a
// client-asserted role is never accepted.
type SessionMiddleware struct {
	Sessions *services.SessionService
}

func NewSessionMiddleware(s *services.SessionService) *SessionMiddleware {
	return &SessionMiddleware{Sessions: s}
}

// Require rejects requests without a resolvable session. A missing token and
// an unresolvable one get the same status but distinct codes.
func (m *SessionMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "missing_token", "no token provided", nil)
			return
		}
		role, err := m.Sessions.Resolve(r.Context(), token)
		if errors.Is(err, services.ErrUnauthenticated) {
			httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "invalid session", nil)
			return
		}
		if err != nil {
			httpx.WriteError(w, http.StatusServiceUnavailable, "store_unavailable", "session store unavailable", nil)
			return
		}
		ctx := context.WithValue(r.Context(), ctxRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken reads the Authorization header, tolerating both a bare token
// (what the original clients send) and a Bearer prefix.
func bearerToken(r *http.Request) string {
	ah := strings.TrimSpace(r.Header.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(ah), "bearer ") {
		return strings.TrimSpace(ah[len("Bearer "):])
	}
	return ah
}
