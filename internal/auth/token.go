// Package auth implements the credential primitives: password hashing and
// the issuance/verification of the signed bearer tokens that gate every
// protected endpoint. Tokens are stateless — validity is recomputed from the
// signature and expiry, never looked up server-side.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/clipforge/clip-shortener/internal/core/domain"
)

// DefaultTokenTTL is the fixed token lifetime.
const DefaultTokenTTL = 24 * time.Hour

var ErrTokenInvalid = errors.New("token is invalid")
var ErrTokenExpired = errors.New("token has expired")

// Claims are the identity attributes embedded at issuance. They are trusted
// as-of issuance time; a username/email change is not reflected until the
// token is reissued.
type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer creates and verifies HS256-signed tokens with a shared secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer returns an Issuer signing with secret. A non-positive ttl falls
// back to DefaultTokenTTL.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the user's identity claims, expiring ttl from now.
func (i *Issuer) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify validates the signature and expiry and returns the embedded claims.
// Fails with ErrTokenExpired when the token is past its expiry and
// ErrTokenInvalid for every other defect (bad signature, wrong algorithm,
// malformed token).
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
