package entity

import "github.com/sellora/pos-gateway/internal/domain/enum"

// User is a back-office account as returned by the upstream /api/Users
// endpoint. The upstream keys users by string ids.
type User struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Role     enum.Role `json:"role"`
}

// Session is the authenticated identity the gateway persists in cookie-backed
// storage after a successful login. It mirrors the upstream login response
// one to one; the access token is opaque and is replayed verbatim on every
// forwarded request.
type Session struct {
	AccessToken string    `json:"accessToken"`
	UserID      int64     `json:"userId"`
	Username    string    `json:"username"`
	Role        enum.Role `json:"role"`
	IsActive    bool      `json:"isActive"`
}
