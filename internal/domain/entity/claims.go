package entity

import "github.com/golang-jwt/jwt/v5"

// Role names the privilege level carried by an access token.
type Role string

const RoleAdmin Role = "admin"

// Claims represents the parsed claims of an access token.
type Claims struct {
	UserID string `json:"uid"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}
