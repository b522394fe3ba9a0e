package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity claims embedded in an auth token: subject
// (username), issuer, and expiry. They live only inside the token; nothing
// is persisted.
type Claims struct {
	jwt.RegisteredClaims
}

// Username returns the token subject
func (c *Claims) Username() string {
	return c.Subject
}

// TokenService issues and verifies signed, time-bounded identity tokens
type TokenService struct {
	secret     []byte
	issuer     string
	expiration time.Duration
}

// TokenServiceConfig holds configuration for the token service
type TokenServiceConfig struct {
	Secret         string
	Issuer         string
	ExpirationMins int
}

// NewTokenService creates a new token service
func NewTokenService(cfg TokenServiceConfig) *TokenService {
	return &TokenService{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		expiration: time.Duration(cfg.ExpirationMins) * time.Minute,
	}
}

// Issue signs a token for the given username, valid until now + the
// configured TTL.
func (s *TokenService) Issue(username string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthentication, err)
	}
	return token, nil
}

// Verify validates signature, expiry and issuer. Any failure collapses to
// ErrAuthentication so callers cannot tell which check rejected the token.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrAuthentication
	}
	return &claims, nil
}

// Expiration returns the configured token TTL
func (s *TokenService) Expiration() time.Duration {
	return s.expiration
}
