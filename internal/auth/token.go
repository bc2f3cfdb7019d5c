package auth

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const DefaultTokenTTL = 90 * 24 * time.Hour

// UserResolver loads the current state of a principal. It returns nil, nil
// when the user does not exist.
type UserResolver interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type claims struct {
	jwt.RegisteredClaims
}

// Tokens issues and verifies HMAC-signed session tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	users  UserResolver
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration, users UserResolver) *Tokens {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, users: users, now: time.Now}
}

// Issue signs a token binding id to an expiry ttl from now.
func (t *Tokens) Issue(id uuid.UUID) (string, error) {
	now := t.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})
	return tok.SignedString(t.secret)
}

// Verify checks the signature and expiry and then re-reads the user, so
// deleted accounts and role or vendor-status changes apply immediately.
func (t *Tokens) Verify(ctx context.Context, raw string) (*domain.User, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(tok *jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	u, err := t.users.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if u == nil {
		return nil, domain.ErrUnresolvable
	}
	return u, nil
}
