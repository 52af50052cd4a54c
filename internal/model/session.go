package model

import "time"

// Role controls which conversations a viewer can see.
type Role string

const (
	// RoleAdmin sees every conversation from the live snapshot.
	RoleAdmin Role = "admin"
	// RoleCompany sees only conversations owned by its company.
	RoleCompany Role = "company"
	// RoleClient sees only its own conversations.
	RoleClient Role = "client"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCompany, RoleClient:
		return true
	}
	return false
}

// UserSession describes an authenticated viewer.
type UserSession struct {
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	LoginTime time.Time `json:"login_time"`
}

// LoginRequest is the credential payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the signed session token and its session record.
type LoginResponse struct {
	Token   string      `json:"token"`
	Session UserSession `json:"session"`
}
