package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zenith/core/internal/domain/entities"
	"github.com/zenith/core/internal/infrastructure/config"
	"github.com/zenith/core/internal/infrastructure/logger"
	"github.com/zenith/core/internal/ports"
)

const (
	testSecret = "test-secret-key"
	testIssuer = "zenith-identity"
)

func newAuthService(userRepo *mockUserRepository) *AuthService {
	cfg := config.AuthConfig{Secret: testSecret, Issuer: testIssuer}
	return NewAuthService(userRepo, cfg, logger.NewNop())
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateToken_Valid(t *testing.T) {
	svc := newAuthService(new(mockUserRepository))

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "provider-user-42",
		"email": "dev@example.com",
		"iss":   testIssuer,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := svc.ValidateToken(tokenString)

	require.NoError(t, err)
	require.Equal(t, "provider-user-42", claims.UserID)
	require.Equal(t, "dev@example.com", claims.Email)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newAuthService(new(mockUserRepository))

	tokenString := signToken(t, "some-other-secret", jwt.MapClaims{
		"sub": "provider-user-42",
		"iss": testIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(tokenString)

	require.ErrorIs(t, err, entities.ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newAuthService(new(mockUserRepository))

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": "provider-user-42",
		"iss": testIssuer,
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(tokenString)

	require.ErrorIs(t, err, entities.ErrInvalidToken)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	svc := newAuthService(new(mockUserRepository))

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": "provider-user-42",
		"iss": "someone-else",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(tokenString)

	require.ErrorIs(t, err, entities.ErrInvalidToken)
}

func TestValidateToken_MissingSubject(t *testing.T) {
	svc := newAuthService(new(mockUserRepository))

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"iss": testIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(tokenString)

	require.ErrorIs(t, err, entities.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newAuthService(new(mockUserRepository))

	_, err := svc.ValidateToken("not-a-token")

	require.ErrorIs(t, err, entities.ErrInvalidToken)
}

func TestEnsureUser_UpsertsRow(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := newAuthService(userRepo)

	user := &entities.User{ID: "provider-user-42", Email: "dev@example.com"}
	userRepo.On("Upsert", mock.Anything, "provider-user-42", "dev@example.com").Return(user, nil)

	got, err := svc.EnsureUser(context.Background(), &ports.Claims{UserID: "provider-user-42", Email: "dev@example.com"})

	require.NoError(t, err)
	require.Equal(t, user, got)
	userRepo.AssertExpectations(t)
}
