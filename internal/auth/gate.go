// Package auth implements the admin access gate: a login endpoint that
// exchanges the configured admin credentials for a signed bearer token, and
// the validation used by the middleware guarding mutation endpoints.
package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthorized is returned for bad credentials and for any token that
// fails to parse, verify, or name the configured admin.
var ErrUnauthorized = errors.New("invalid credentials")

// Gate issues and validates admin bearer tokens. Tokens are HMAC-SHA256
// signed JWTs carrying only the admin identity and an issue timestamp; they
// have no expiry, so a token stays valid as long as the signing secret and
// configured username do.
type Gate struct {
	username string
	password string
	secret   []byte
	now      func() time.Time
}

// NewGate creates a gate for the configured admin credentials.
func NewGate(username, password, secret string) *Gate {
	return &Gate{
		username: username,
		password: password,
		secret:   []byte(secret),
		now:      time.Now,
	}
}

// IssueToken compares the supplied credentials against the configured pair
// and returns a signed token on match.
func (g *Gate) IssueToken(username, password string) (string, error) {
	if g.username == "" || g.password == "" || len(g.secret) == 0 {
		return "", ErrUnauthorized
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
	if !userOK || !passOK {
		return "", ErrUnauthorized
	}

	claims := jwt.RegisteredClaims{
		Subject:  g.username,
		IssuedAt: jwt.NewNumericDate(g.now().UTC()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// ValidateToken verifies the signature and returns the admin username iff
// the token subject matches the configured admin.
func (g *Gate) ValidateToken(tokenString string) (string, error) {
	if g.username == "" || len(g.secret) == 0 {
		return "", ErrUnauthorized
	}

	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrUnauthorized
	}
	if claims.Subject != g.username {
		return "", ErrUnauthorized
	}
	return claims.Subject, nil
}
