package models

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySubject is returned for tokens without a "sub" claim.
var ErrEmptySubject = errors.New("token has no subject")

// Token is a parsed or freshly signed JWT. The embedded RegisteredClaims
// carry iss/sub/iat/exp; Role is the private claim the admin check reads.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	Role Role `json:"role,omitempty"`

	// SignedString is the compact JWS form sent to clients.
	SignedString string `json:"-"`

	UserID int64 `json:"-"`
}

// GetUserID decodes the numeric "sub" claim.
func (t *Token) GetUserID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error reading token subject: %w", err)
	}
	if sub == "" {
		return 0, ErrEmptySubject
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject is not a user ID: %w", err)
	}
	return userID, nil
}

func (t *Token) Identity() Identity {
	return Identity{UserID: t.UserID, Role: t.Role}
}

func (t *Token) String() string {
	return t.SignedString
}
