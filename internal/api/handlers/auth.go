package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saiyeshwin/housebook-backend/internal/api/httpx"
	"github.com/saiyeshwin/housebook-backend/internal/auth"
	"github.com/saiyeshwin/housebook-backend/internal/metrics"
	"github.com/saiyeshwin/housebook-backend/internal/services"
)

type AuthHandler struct {
	Resolver *auth.Resolver
	Sessions *services.SessionService
}

func NewAuthHandler(r *auth.Resolver, s *services.SessionService) *AuthHandler {
	return &AuthHandler{Resolver: r, Sessions: s}
}

type loginReq struct {
	PIN string `json:"pin"`
}

type loginResp struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}

	role, err := h.Resolver.Resolve(req.PIN)
	if errors.Is(err, auth.ErrInvalidCredential) {
		metrics.LoginFailures.Inc()
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credential", "invalid PIN", nil)
		return
	}

	sess, err := h.Sessions.Create(r.Context(), role)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	metrics.LoginsTotal.WithLabelValues(string(role)).Inc()
	httpx.WriteJSON(w, http.StatusOK, loginResp{Token: sess.Token, Role: string(sess.Role)})
}

type logoutReq struct {
	Token string `json:"token"`
}

// Logout always acknowledges; destroying an absent or already-destroyed
// token is not an error.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req logoutReq
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Token != "" {
		if err := h.Sessions.Destroy(r.Context(), req.Token); err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}
