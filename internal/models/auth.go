package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type UserClaimKey struct{}

// UserClaims is the payload of the bearer tokens accepted by the API.
// Tokens are issued by the user service and signed with the shared secret.
type UserClaims struct {
	Email  string    `json:"email"`
	UserID uuid.UUID `json:"uuid"`
	Role   Role      `json:"role"`
	jwt.RegisteredClaims
}

func (c UserClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
