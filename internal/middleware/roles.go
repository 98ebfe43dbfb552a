package middleware

import (
	"net/http"

	"github.com/saiyeshwin/housebook-backend/internal/api/httpx"
	"github.com/saiyeshwin/housebook-backend/internal/models"
)

// RequireAdmin gates ledger mutations. It runs after Require, so an absent
// role means the chain is miswired rather than an anonymous caller.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := RoleFrom(r.Context())
		if !ok {
			httpx.WriteError(w, http.StatusUnauthorized, "missing_token", "no token provided", nil)
			return
		}
		if role != models.RoleAdmin {
			httpx.WriteError(w, http.StatusForbidden, "forbidden", "only Admin can modify transactions", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
