package services

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/zenith/core/internal/domain/entities"
	"github.com/zenith/core/internal/infrastructure/config"
	"github.com/zenith/core/internal/infrastructure/logger"
	"github.com/zenith/core/internal/ports"
)

// tokenClaims is the JWT payload issued by the identity provider
type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService validates bearer tokens from the external identity provider
// and materializes the caller's user row on first sight. It never issues
// production tokens and holds no credentials.
type AuthService struct {
	userRepo ports.UserRepository
	cfg      config.AuthConfig
	logger   *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo ports.UserRepository, cfg config.AuthConfig, logger *logger.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
		logger:   logger,
	}
}

// ValidateToken parses and verifies a bearer token and extracts the stable
// user id and email
func (s *AuthService) ValidateToken(tokenString string) (*ports.Claims, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithIssuer(s.cfg.Issuer))

	if err != nil || !token.Valid {
		return nil, entities.ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, entities.ErrInvalidToken
	}

	return &ports.Claims{
		UserID: subject,
		Email:  claims.Email,
	}, nil
}

// EnsureUser upserts the user row for validated claims. Creation on first
// authenticated request is the only way users enter the system.
func (s *AuthService) EnsureUser(ctx context.Context, claims *ports.Claims) (*entities.User, error) {
	user, err := s.userRepo.Upsert(ctx, claims.UserID, claims.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure user: %w", err)
	}

	return user, nil
}
