package identity

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const minSecretKeySize = 32

// ErrShortSecretKey indicates a symmetric key below the minimum size.
var ErrShortSecretKey = errors.New("secret key is too short")

type claims struct {
	jwt.RegisteredClaims
	Email       string `json:"email"`
	DisplayName string `json:"name"`
}

// JWTProvider verifies HMAC signed identity tokens carrying the profile
// claims issued by the identity provider, and keeps the record lookup
// table the provider deployment maintains alongside token issuance.
type JWTProvider struct {
	secretKey string

	mu      sync.RWMutex
	records map[string]Record
}

// NewJWTProvider returns a JWTProvider for the given symmetric key.
func NewJWTProvider(secretKey string) (*JWTProvider, error) {
	if len(secretKey) < minSecretKeySize {
		return nil, ErrShortSecretKey
	}

	return &JWTProvider{
		secretKey: secretKey,
		records:   map[string]Record{},
	}, nil
}

// Verify parses and validates the token and returns the identity record
// carried in its claims.
func (p *JWTProvider) Verify(ctx context.Context, token string) (Record, error) {
	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}

		return []byte(p.secretKey), nil
	}

	parsed, err := jwt.ParseWithClaims(token, &claims{}, keyFunc)
	if err != nil || !parsed.Valid {
		return Record{}, ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || c.Subject == "" {
		return Record{}, ErrInvalidToken
	}

	return Record{
		UID:         c.Subject,
		Email:       c.Email,
		DisplayName: c.DisplayName,
	}, nil
}

// Record returns the identity record kept for the uid.
func (p *JWTProvider) Record(ctx context.Context, uid string) (Record, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	record, ok := p.records[uid]
	if !ok {
		return Record{}, ErrIdentityNotFound
	}

	return record, nil
}

// RegisterRecord stores the record in the lookup table, replacing any
// prior record with the same uid.
func (p *JWTProvider) RegisterRecord(record Record) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.records[record.UID] = record
}

// IssueToken signs a token for the record and registers the record in the
// lookup table. It exists for tests and local development; production
// tokens come from the identity provider itself.
func (p *JWTProvider) IssueToken(record Record, duration time.Duration) (string, error) {
	p.RegisterRecord(record)

	now := time.Now()

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   record.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
		Email:       record.Email,
		DisplayName: record.DisplayName,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(p.secretKey))
}
