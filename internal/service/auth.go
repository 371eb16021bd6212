// Package service contains the business logic layer.
//
// The layering is the usual one:
//
//	Handler (HTTP)  → parses requests, writes responses
//	Service         → business rules, orchestration
//	Repository (DB) → persistence behind interfaces
//
// Services accept primitives and return domain models and apperror values —
// they know nothing about HTTP, which keeps them callable from tests (and
// any future CLI or job) with plain function calls.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sakif/blog-platform/internal/apperror"
	"github.com/sakif/blog-platform/internal/auth"
	"github.com/sakif/blog-platform/internal/model"
	"github.com/sakif/blog-platform/internal/repository"
)

// AuthService implements signup and signin.
//
// Dependencies (injected via NewAuthService):
//   - users     repository.UserRepository → create/look up accounts
//   - tokens    *auth.TokenService        → issue session tokens
//   - passwords *auth.PasswordService     → bcrypt hashing
type AuthService struct {
	users     repository.UserRepository
	tokens    *auth.TokenService
	passwords *auth.PasswordService
	logger    *slog.Logger
}

func NewAuthService(
	users repository.UserRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

// AuthResult bundles the user record and the issued session token so the
// handler can build its response in one step.
type AuthResult struct {
	User  *model.User
	Token string
}

// Signup creates an account and signs the new user in.
//
// The password is bcrypt-hashed before it ever reaches the repository.
// A duplicate email surfaces as apperror.ErrConflict from the repository
// and propagates untouched.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (*AuthResult, error) {
	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("service/auth: hashing password: %w", err)
	}

	user := &model.User{
		Email:    email,
		Password: hash,
		Name:     name,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user signed up",
		slog.Int64("userID", user.ID),
		slog.String("email", user.Email),
	)

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("service/auth: issuing token for user %d: %w", user.ID, err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Signin verifies credentials and issues a session token.
//
// Unknown email and wrong password both come back as the same NotFound
// ("User not found") — the API does not reveal which half of the credential
// pair was wrong.
func (s *AuthService) Signin(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, &apperror.AppError{Err: apperror.ErrNotFound, Message: "User not found"}
		}
		return nil, err
	}

	if err := s.passwords.Verify(user.Password, password); err != nil {
		return nil, &apperror.AppError{Err: apperror.ErrNotFound, Message: "User not found"}
	}

	s.logger.Info("user signed in", slog.Int64("userID", user.ID))

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("service/auth: issuing token for user %d: %w", user.ID, err)
	}

	return &AuthResult{User: user, Token: token}, nil
}
