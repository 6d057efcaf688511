package helpers

import (
	"context"
	"errors"
	"strings"
	"time"

	"analytics-api/internal/configuration"
	"analytics-api/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoTokenProvided    = errors.New("no token provided")
	ErrInvalidTokenFormat = errors.New("invalid token format")
	ErrInvalidToken       = errors.New("invalid token")
)

// NewAccessToken signs a token for the given user. The analytics API never
// issues tokens to clients; this is used by tooling and tests that need a
// token the Authenticate middleware accepts.
func NewAccessToken(jwtSecret string, user *models.User, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := models.UserClaims{
		Email:  user.Email,
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    configuration.AppName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ParseAccessToken extracts and validates the bearer token from an
// Authorization header value.
func ParseAccessToken(jwtSecret string, authHeader string) (models.UserClaims, error) {
	if authHeader == "" {
		return models.UserClaims{}, ErrNoTokenProvided
	}

	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || strings.TrimSpace(tokenString) == "" {
		return models.UserClaims{}, ErrInvalidTokenFormat
	}

	claims := &models.UserClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(_ *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.UserClaims{}, ErrInvalidToken
	}

	if claims.Email == "" {
		return models.UserClaims{}, ErrInvalidToken
	}

	return *claims, nil
}

func GetUserClaims(c context.Context) (models.UserClaims, error) {
	value, ok := c.Value(models.UserClaimKey{}).(models.UserClaims)
	if !ok {
		return models.UserClaims{}, errors.New("invalid user claims")
	}
	return value, nil
}
