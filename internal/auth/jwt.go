// Package auth implements the bearer-token codec: stateless HS256 JWTs
// carrying a subject (the user's email) and an absolute expiry.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rattananon/product-store-api/internal/clock"
)

// ErrInvalidToken is returned for every resolution failure: bad signature,
// malformed structure, wrong issuer or audience, expired. Callers must not be
// able to distinguish the reasons.
var ErrInvalidToken = errors.New("invalid token")

// TokenAuthenticator issues and resolves signed bearer tokens. Validity is a
// pure function of the signing secret and the encoded expiry; nothing is
// persisted and there is no revocation.
type TokenAuthenticator struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	clock    clock.Clock
}

// NewTokenAuthenticator creates a TokenAuthenticator. The secret is fixed for
// the lifetime of the process.
func NewTokenAuthenticator(secret, issuer, audience string, ttl time.Duration, clk clock.Clock) *TokenAuthenticator {
	return &TokenAuthenticator{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		clock:    clk,
	}
}

// Issue generates a signed token for the given subject, expiring after the
// configured TTL.
func (a *TokenAuthenticator) Issue(subject string) (string, error) {
	now := a.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    a.issuer,
		Audience:  jwt.ClaimStrings{a.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenStr, err := token.SignedString(a.secret)
	if err != nil {
		return "", err
	}

	return tokenStr, nil
}

// Resolve validates a token and returns its subject. Any failure collapses to
// ErrInvalidToken.
func (a *TokenAuthenticator) Resolve(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return a.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithAudience(a.audience),
		jwt.WithIssuer(a.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(a.clock.Now),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
