package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the authorization level the dock API grants a user.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWrite  Role = "write"
	RoleViewer Role = "viewer"
)

// User is the authenticated session identity.
type User struct {
	Username     string  `json:"username"`
	Role         Role    `json:"role"`
	Token        string  `json:"token"`
	RefreshToken *string `json:"refresh_token,omitempty"`
}

// IsAuthorized reports whether the user may perform mutations.
func (u User) IsAuthorized() bool {
	return u.Role == RoleAdmin || u.Role == RoleWrite
}

// IsAdmin reports whether the user may toggle shipment holds.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TokenExpired reports whether the bearer token carries an exp claim before now.
// The signature is not verified; the dock API remains the authority. Tokens that
// are not JWTs, or carry no exp, are treated as live.
func (u User) TokenExpired(now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(u.Token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}
