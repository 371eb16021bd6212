package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/sakif/blog-platform/internal/apperror"
	"github.com/sakif/blog-platform/internal/model"
	"github.com/sakif/blog-platform/internal/repository"
)

// compile-time check that *DB implements repository.UserRepository
var _ repository.UserRepository = (*DB)(nil)

// CreateUser inserts a new user. bun writes the generated AUTOINCREMENT id back
// into user.ID after the insert.
//
// A UNIQUE violation on email becomes apperror.ErrConflict; everything else
// from the driver becomes ErrUnavailable. Handlers map the two differently,
// so the distinction matters (signup with a taken email is the caller's
// problem, a broken database is ours).
func (db *DB) CreateUser(ctx context.Context, user *model.User) error {
	now := time.Now()
	user.CreatedAt = &now
	user.UpdatedAt = &now

	if _, err := db.bun.NewInsert().Model(user).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("user", "email already registered")
		}
		return apperror.Unavailable("sqlite: inserting user", err)
	}

	return nil
}

// GetUserByEmail looks a user up by exact email. Used by signin; the caller
// verifies the password hash.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := new(model.User)

	err := db.bun.NewSelect().
		Model(user).
		Where("usr.email = ?", email).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &apperror.AppError{
				Err:     apperror.ErrNotFound,
				Message: "user not found",
			}
		}
		return nil, apperror.Unavailable("sqlite: getting user by email", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by primary key.
func (db *DB) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	user := new(model.User)

	err := db.bun.NewSelect().
		Model(user).
		Where("usr.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user", id)
		}
		return nil, apperror.Unavailable("sqlite: getting user", err)
	}

	return user, nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure. The modernc driver exposes it only through the error text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
