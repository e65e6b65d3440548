// Package utils provides general-purpose helper utilities
// used across different parts of the application: context keys for the
// request identity, JWT generation and validation, password hashing,
// JSON response writing and the shared HTTP client.
package utils

import (
	"context"

	"github.com/MKhiriev/court-fund/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the auth middleware stores the
// verified caller ([models.Identity]).
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the caller identity from the context.
//
// ok is false when no identity was attached (the request did not pass
// through the auth middleware) or the stored value has an unexpected type.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}

// GetUserIDFromContext is a shorthand for the UserID of the context identity.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	identity, ok := GetIdentityFromContext(ctx)
	if !ok || identity.UserID <= 0 {
		return 0, false
	}
	return identity.UserID, true
}
