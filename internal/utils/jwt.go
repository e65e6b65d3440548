package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/court-fund/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken signs an HS256 token whose subject is the user ID and
// whose private "role" claim drives the admin check. Only role may be empty.
func GenerateJWTToken(issuer string, userID int64, role models.Role, ttl time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || ttl == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	issuedAt := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
		Role: role,
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := jwtToken.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing JWT token: %w", err)
	}

	return newToken(jwtToken, claims, signed, userID), nil
}

// ValidateAndParseJWTToken checks the signature algorithm, issuer, expiry and
// a numeric subject before returning the decoded token.
func ValidateAndParseJWTToken(raw, signKey, issuer string) (models.Token, error) {
	claims := new(models.Token)
	keyFunc := func(*jwt.Token) (any, error) { return []byte(signKey), nil }

	jwtToken, err := jwt.ParseWithClaims(raw, claims, keyFunc,
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, err
	}

	return newToken(jwtToken, claims, raw, userID), nil
}

func newToken(jwtToken *jwt.Token, claims *models.Token, signed string, userID int64) models.Token {
	return models.Token{
		Token:            jwtToken,
		RegisteredClaims: claims.RegisteredClaims,
		Role:             claims.Role,
		SignedString:     signed,
		UserID:           userID,
	}
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
