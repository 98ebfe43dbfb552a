package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/saiyeshwin/housebook-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredential is returned when a submitted PIN matches neither
// configured secret.
var ErrInvalidCredential = errors.New("invalid credential")

// Resolver maps a submitted PIN to a role. Exactly two secrets are
// configured, one per role. A secret may be given as a plaintext PIN or as a
// bcrypt hash (recognized by the "$2" prefix); either way the match is exact,
// case-sensitive and unnormalized. Failure keeps no state.
type Resolver struct {
	viewer string
	admin  string
}

func NewResolver(viewerSecret, adminSecret string) *Resolver {
	return &Resolver{viewer: viewerSecret, admin: adminSecret}
}

func (r *Resolver) Resolve(pin string) (models.Role, error) {
	if matches(r.viewer, pin) {
		return models.RoleViewer, nil
	}
	if matches(r.admin, pin) {
		return models.RoleAdmin, nil
	}
	return "", ErrInvalidCredential
}

func matches(secret, pin string) bool {
	if secret == "" {
		return false
	}
	if strings.HasPrefix(secret, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(secret), []byte(pin)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(pin)) == 1
}

// HashPIN produces the bcrypt form accepted by Resolver, for operators who
// prefer not to keep the PIN in the environment in clear.
func HashPIN(pin string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	return string(b), err
}
