package auth

import (
	"context"
	"net/http"
)

// contextKey is an unexported type for context keys in this package.
// A package-private key type means no other package can read or shadow the
// user id we store in the request context.
type contextKey string

const userIDKey contextKey = "userID"

// rejectedBody is the exact body the gate returns for any authentication
// failure. Clients match on it, so it is part of the API contract.
const rejectedBody = `{"msg":"You are not signed in"}`

// RequireAuth is the gate in front of every /blog route.
//
// It reads the raw `authorization` header (an absent header yields the empty
// string, which Verify rejects like any other malformed token), verifies it,
// and either attaches the resolved user id to the request context or
// short-circuits with 403 and {"msg":"You are not signed in"}. Missing
// header, garbage token, bad signature, and expired token are deliberately
// indistinguishable to the client.
func RequireAuth(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := tokens.Verify(r.Header.Get("authorization"))
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(rejectedBody))
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUserID(r.Context(), userID)))
		})
	}
}

// ContextWithUserID attaches an authenticated user id to the context. The
// gate calls it after a successful Verify; tests use it to stand in for the
// gate.
func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext retrieves the authenticated user's id from the request
// context. Returns (0, false) on routes not behind RequireAuth.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok && id > 0
}
