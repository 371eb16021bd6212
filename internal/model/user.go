// Package model defines the data structures used throughout the application.
//
// The structs carry bun struct tags so the ORM knows how to map them to
// tables, and json tags so the handlers can serialize them in responses.
// Keeping both sets of tags on one struct means the model package is the
// single source of truth for what a User or a Blog looks like.
package model

import (
	"time"

	"github.com/uptrace/bun"
)

// User represents a registered account.
//
// The ID is a system-assigned integer (SQLite AUTOINCREMENT via the pk tag)
// and is immutable once created. Email carries a UNIQUE constraint — one
// account per address; the repository translates the constraint violation
// into a Conflict error.
//
// Password holds the bcrypt hash, never the plaintext. The `json:"-"` tag
// guarantees it can never leak into a response body, no matter which handler
// marshals the struct.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID        int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Email     string     `bun:"email,notnull,unique" json:"email,omitempty"`
	Password  string     `bun:"password,notnull" json:"-"`
	Name      string     `bun:"name,notnull" json:"name,omitempty"`
	CreatedAt *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt,omitempty"`
	UpdatedAt *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updatedAt,omitempty"`
}
