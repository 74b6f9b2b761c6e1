package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity carried by a signed token. It mirrors the user
// record at issuance time and is trusted as-is until expiry; role or email
// changes only take effect at the next login.
type Claims struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
