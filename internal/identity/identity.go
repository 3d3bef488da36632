// Package identity integrates the external identity provider. Users sign up
// and sign in against the provider; the backend only ever sees its tokens.
package identity

import (
	"context"
	"errors"
)

var (
	// ErrInvalidToken indicates an expired, revoked or otherwise unverifiable token.
	ErrInvalidToken = errors.New("invalid identity token")
	// ErrIdentityNotFound indicates that the provider keeps no record for the uid.
	ErrIdentityNotFound = errors.New("identity record not found")
)

// Record holds the profile data the provider keeps about an identity.
type Record struct {
	UID         string
	Email       string
	DisplayName string
}

// Provider verifies identity tokens and looks up identity records.
// Verification fails closed: any token that cannot be fully verified
// resolves to ErrInvalidToken, never to a partial identity.
type Provider interface {
	Verify(ctx context.Context, token string) (Record, error)
	Record(ctx context.Context, uid string) (Record, error)
}
