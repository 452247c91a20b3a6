package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued bearer token stays valid. A "logout" does
// not revoke tokens, so this bounds the exposure window of a captured one.
const TokenTTL = time.Hour

// ErrInvalidToken covers missing, malformed, expired and badly signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// UserClaim carries the authenticated user's id inside the token payload.
type UserClaim struct {
	ID string `json:"id"`
}

// Claims is the JWT payload. The user id is the only application claim.
type Claims struct {
	User UserClaim `json:"user"`
	jwt.RegisteredClaims
}

// Tokens signs and verifies HS256 bearer tokens with an injected secret.
type Tokens struct {
	secret []byte
	now    func() time.Time
}

// NewTokens constructs a Tokens helper around the given signing secret.
func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret), now: time.Now}
}

// Sign issues a token embedding the user id, expiring after TokenTTL.
func (t *Tokens) Sign(userID string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", errors.New("user id is required")
	}

	now := t.now().UTC()
	claims := Claims{
		User: UserClaim{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks signature and expiry and returns the embedded user id.
func (t *Tokens) Verify(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrInvalidToken
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(tok *jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.User.ID == "" {
		return "", ErrInvalidToken
	}
	return claims.User.ID, nil
}
