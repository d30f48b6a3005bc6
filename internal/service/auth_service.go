package service

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/maxgads/gymmax/internal/config"
	"github.com/maxgads/gymmax/internal/domain"
)

// FirebaseAuthClient defines the interface for Firebase Auth operations
// This allows mocking for tests
type FirebaseAuthClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthService exchanges Firebase ID tokens for first-party JWTs, creating the
// user record on first login.
type AuthService struct {
	userRepo   domain.UserRepository
	authClient FirebaseAuthClient
	jwtConfig  config.JWTConfig
}

func NewAuthService(userRepo domain.UserRepository, authClient FirebaseAuthClient, jwtConfig config.JWTConfig) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		authClient: authClient,
		jwtConfig:  jwtConfig,
	}
}

// LoginResponse contains the user, the signed token and whether the user was
// newly registered.
type LoginResponse struct {
	User      *domain.User `json:"user"`
	Token     string       `json:"token"`
	IsNewUser bool         `json:"isNewUser"`
}

// LoginOrRegister verifies the Firebase token, finds or creates the matching
// user and returns a signed GymMax token.
func (s *AuthService) LoginOrRegister(ctx context.Context, firebaseToken string) (*LoginResponse, error) {
	token, err := s.authClient.VerifyIDToken(ctx, firebaseToken)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	firebaseUID := token.UID
	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	if name == "" {
		name = email
	}

	existing, err := s.userRepo.GetByFirebaseUID(ctx, firebaseUID)
	if err == nil && existing != nil {
		signed, err := s.GenerateGymMaxToken(existing)
		if err != nil {
			return nil, fmt.Errorf("failed to generate token: %w", err)
		}
		return &LoginResponse{User: existing, Token: signed, IsNewUser: false}, nil
	}
	if err != domain.ErrNotFound {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	// Pre-provisioned accounts are looked up by email and linked on first
	// Firebase login.
	if emailUser, emailErr := s.userRepo.GetByEmail(ctx, email); emailErr == nil && emailUser != nil {
		if emailUser.FirebaseUID != "" && emailUser.FirebaseUID != firebaseUID {
			return nil, fmt.Errorf("email already linked to different account")
		}
		if emailUser.FirebaseUID == "" {
			if linkErr := s.userRepo.UpdateFirebaseUID(ctx, emailUser.ID, firebaseUID); linkErr != nil {
				return nil, fmt.Errorf("failed to link firebase account: %w", linkErr)
			}
			emailUser.FirebaseUID = firebaseUID
		}
		signed, err := s.GenerateGymMaxToken(emailUser)
		if err != nil {
			return nil, fmt.Errorf("failed to generate token: %w", err)
		}
		return &LoginResponse{User: emailUser, Token: signed, IsNewUser: false}, nil
	}

	newUser := &domain.User{
		FirebaseUID: firebaseUID,
		Email:       email,
		Name:        name,
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	signed, err := s.GenerateGymMaxToken(newUser)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &LoginResponse{User: newUser, Token: signed, IsNewUser: true}, nil
}

// GenerateGymMaxToken creates a signed JWT with custom claims.
func (s *AuthService) GenerateGymMaxToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := domain.GymMaxClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.jwtConfig.ExpiryHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
