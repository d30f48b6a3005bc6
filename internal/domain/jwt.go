package domain

import "github.com/golang-jwt/jwt/v5"

// GymMaxClaims are the claims carried in first-party JWTs issued after a
// successful Firebase login.
type GymMaxClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
