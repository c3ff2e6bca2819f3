package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTIssuer signs authentication tokens with a symmetric key. Issuer,
// audience and lifetime come from process configuration, never from the
// request. It also parses incoming tokens for the auth middleware.
type JWTIssuer struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewJWTIssuer(key, issuer, audience string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{key: []byte(key), issuer: issuer, audience: audience, ttl: ttl}
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Issue returns a signed HS256 token for the user, expiring at issuedAt
// plus the configured lifetime.
func (m *JWTIssuer) Issue(userID, email string, issuedAt time.Time) (string, time.Time, error) {
	expiresAt := issuedAt.Add(m.ttl)
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.key)
	return s, expiresAt, err
}

// Parse validates signature, lifetime, issuer and audience.
func (m *JWTIssuer) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return m.key, nil
		},
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
