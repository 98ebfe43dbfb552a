package models

import "time"

type Role string

const (
	RoleViewer Role = "Home"
	RoleAdmin  Role = "Admin"
)

// Session binds an opaque token to a role for its TTL. Role is always
// re-derived from the token server-side; it is never read from a client.
type Session struct {
	Token     string    `json:"token"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
