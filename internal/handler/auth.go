// Package handler contains the HTTP layer: request parsing, schema
// validation, and response mapping. Handlers never touch the database —
// they call services and translate the outcome.
//
// Every handler follows the same four-stage pipeline:
//  1. read the identity from context (protected routes only)
//  2. parse the body or path parameter
//  3. validate against the named schema; first violation → 411
//  4. call the service (one persistence operation) and map the result
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/blog-platform/internal/apperror"
	"github.com/sakif/blog-platform/internal/schema"
	"github.com/sakif/blog-platform/internal/service"
)

// AuthHandler serves POST /signup and POST /signin.
type AuthHandler struct {
	auth   *service.AuthService
	logger *slog.Logger
}

func NewAuthHandler(auth *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// signinResponse wraps the issued token for POST /signin.
type signinResponse struct {
	Msg string `json:"msg"`
	Jwt string `json:"jwt"`
}

// HandleSignup creates an account and returns the session token as a raw
// text body — the one endpoint whose 200 response is not JSON.
//
// HTTP: POST /signup, body {email, password, name}
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var in schema.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeValidation(w, "request body must be valid JSON")
		return
	}

	if err := in.Validate(); err != nil {
		writeValidation(w, schema.FirstViolation(err))
		return
	}

	res, err := h.auth.Signup(r.Context(), in.Email, in.Password, in.Name)
	if err != nil {
		h.logger.Warn("signup failed",
			slog.String("email", in.Email),
			slog.String("error", err.Error()),
		)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(res.Token))
}

// HandleSignin verifies credentials and returns {msg, jwt}.
//
// HTTP: POST /signin, body {email, password}
//
// A credential mismatch is 403 {"error":"User not found"} — a shape of its
// own, distinct from both the auth-gate body and the generic error body.
func (h *AuthHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	var in schema.SigninInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeValidation(w, "request body must be valid JSON")
		return
	}

	if err := in.Validate(); err != nil {
		writeValidation(w, schema.FirstViolation(err))
		return
	}

	res, err := h.auth.Signin(r.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "User not found"})
			return
		}
		h.logger.Error("signin failed", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, signinResponse{
		Msg: "Successfully Signed in",
		Jwt: res.Token,
	})
}
