package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidJWTParams          = errors.New("invalid params for generating JWT token")
	ErrEmptyJWTSubject           = errors.New("empty subject in JWT token")
	ErrInvalidAuthorizationValue = errors.New("invalid authorization header")
)

// GenerateJWTToken signs an HS256 token for userID. Tokens are issued by an
// external identity service in production; this helper backs tests and local
// tooling that need a token the server accepts.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Raw: tokenString, OwnerID: userID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// ValidateAndParseJWTToken verifies the HS256 signature, expiry and issuer of
// tokenString and returns the token with OwnerID parsed from the subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return models.Token{}, fmt.Errorf("unexpected claims type %T", token.Claims)
	}
	if claims.Subject == "" {
		return models.Token{}, ErrEmptyJWTSubject
	}

	ownerID, err := models.OwnerIDFromSubject(claims.Subject)
	if err != nil {
		return models.Token{}, err
	}

	parsed := models.Token{Raw: tokenString, OwnerID: ownerID}
	if claims.ExpiresAt != nil {
		parsed.ExpiresAt = claims.ExpiresAt.Time
	}
	return parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationValue
	}
	return parts[1], nil
}
