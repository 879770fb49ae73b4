// Package token issues and verifies the stateless session tokens used by the
// API. Tokens are HS256 JWTs carrying the user id and role; validity is
// determined purely by signature and expiry, never by a server-side lookup.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/caseflow/case-api/internal/core/domain"
)

// ErrInvalidToken is returned for every verification failure. Callers must
// not learn whether the token was tampered with, malformed, or expired.
var ErrInvalidToken = errors.New("invalid token")

const defaultTTL = 24 * time.Hour

// Claims is the identity asserted by a verified token.
type Claims struct {
	UserID string
	Role   domain.Role
}

// Issuer signs and verifies session tokens with a process-wide secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token asserting {userID, role} until now + TTL.
func (i *Issuer) Issue(userID string, role domain.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
// All failure modes collapse into ErrInvalidToken.
func (i *Issuer) Verify(tokenString string) (Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !tkn.Valid {
		return Claims{}, ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	roleStr, _ := claims["role"].(string)
	role := domain.Role(roleStr)
	if userID == "" || !role.Valid() {
		return Claims{}, ErrInvalidToken
	}

	return Claims{UserID: userID, Role: role}, nil
}
