package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenType = "cart_session"

var errInvalidToken = errors.New("invalid session token")

// TokenIssuer signs session IDs into the cookie value and reads them back.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates an HS256 issuer.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token for sessionID.
func (i *TokenIssuer) Issue(sessionID string) (string, error) {
	now := i.now()
	claims := jwt.MapClaims{
		"sid": sessionID,
		"typ": tokenType,
		"iat": now.Unix(),
		"exp": now.Add(i.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse validates raw and returns the session ID it carries.
func (i *TokenIssuer) Parse(raw string) (string, error) {
	parsed, err := jwt.Parse(raw, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil || !parsed.Valid {
		return "", errInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errInvalidToken
	}
	if typ, _ := claims["typ"].(string); typ != tokenType {
		return "", errInvalidToken
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errInvalidToken
	}
	return sid, nil
}
