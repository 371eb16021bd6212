// Package auth provides session token issuance/verification and password
// hashing for the blog API.
//
// AUTHENTICATION FLOW:
//  1. POST /signup or /signin issues a signed JWT carrying the user's id
//  2. The client presents that token verbatim in the `authorization` header
//     (no "Bearer " prefix — the raw token is the header value)
//  3. RequireAuth verifies the signature and expiry on every /blog route and
//     puts the user id into the request context
//
// The token is self-contained: verification needs only the shared HMAC
// secret, never a database lookup. There is no server-side revocation — a
// token stays valid until it expires.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "blog-platform"

// TokenService signs and verifies session tokens.
//
// The same secret is used for both operations (HS256 is symmetric). Rotating
// the secret invalidates every outstanding session.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService signing with the given secret.
// The secret should be at least 32 bytes of random data in production
// (JWT_SECRET=$(openssl rand -hex 32)); anything under 16 characters is
// rejected outright. ttl is how long issued tokens stay valid.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: JWT secret must be at least 16 characters")
	}
	if ttl <= 0 {
		return nil, errors.New("auth: token TTL must be positive")
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// sessionClaims is the JWT payload. The user's numeric id travels in a
// custom "id" claim; the embedded RegisteredClaims supply iat/exp/iss.
type sessionClaims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// Issue creates and signs a session token for the given user id.
//
// The token carries an expiry claim (configured TTL) which Verify enforces.
// Signing is a pure function of (userID, secret, clock) — no side effects,
// nothing is stored.
func (s *TokenService) Issue(userID int64) (string, error) {
	now := time.Now()

	c := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}

	return signed, nil
}

// IssueWithTTL creates a token with a custom lifetime. Used by tests to
// produce already-expired tokens; not part of the normal signin flow.
func (s *TokenService) IssueWithTTL(userID int64, ttl time.Duration) (string, error) {
	now := time.Now()

	c := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}

	return signed, nil
}

// Verify parses a token string and returns the user id it encodes.
//
// Every failure mode — empty string, malformed structure, bad signature,
// expired, wrong issuer — comes back as a single generic error; callers get
// no distinction and the Auth Gate turns any of them into a rejected
// request.
//
// jwt.WithValidMethods pins the algorithm to HS256 so a token claiming
// alg=none (or an RSA public-key confusion) is rejected before signature
// checking.
func (s *TokenService) Verify(tokenStr string) (int64, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&sessionClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, fmt.Errorf("auth: invalid token: %w", err)
	}

	c, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return 0, errors.New("auth: invalid token claims")
	}
	if c.UserID <= 0 {
		return 0, errors.New("auth: token has no user id")
	}

	return c.UserID, nil
}
