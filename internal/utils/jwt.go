package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-signup/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidJWTParams is returned by GenerateJWTToken when a required
// parameter is empty.
var ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token carries the following claims:
//   - Subject   (sub): the user ID
//   - email          : the user's email
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus tokenDuration
//   - ID        (jti): tokenID, when not empty
//
// tokenDuration may be zero or negative, which yields an already-expired token.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("0190f3a4-...", "juan@test.com", "", time.Now(), time.Hour, "secret")
func GenerateJWTToken(userID, email, tokenID string, issuedAt time.Time, tokenDuration time.Duration, signKey string) (string, error) {
	if userID == "" || signKey == "" {
		return "", ErrInvalidJWTParams
	}

	claims := &models.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return tokenString, nil
}

// ParseJWTToken verifies the signature and expiry of tokenString and returns
// its claims.
//
// Validation includes:
//   - the signing method must be HS256
//   - signature verification using the provided sign key
//   - presence and check of the expiration (exp) claim against now
//   - presence of the subject (sub) claim
func ParseJWTToken(tokenString, signKey string, now func() time.Time) (*models.Claims, error) {
	claims := &models.Claims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if now != nil {
		opts = append(opts, jwt.WithTimeFunc(now))
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return nil, errors.New("empty subject error")
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
