// Package repository declares the persistence interfaces the service layer
// programs against. The sqlite subpackage provides the bun-backed
// implementation; tests provide in-memory mocks.
//
// Both interfaces are implemented by the same *sqlite.DB, so the method
// names carry the entity to keep the method sets disjoint.
package repository

import (
	"context"

	"github.com/sakif/blog-platform/internal/model"
)

type UserRepository interface {
	// CreateUser inserts a new user and fills in ID and timestamps.
	// Returns apperror.ErrConflict when the email is already registered.
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
}

type BlogRepository interface {
	// CreateBlog inserts a new blog and fills in ID and timestamps.
	CreateBlog(ctx context.Context, blog *model.Blog) error
	// UpdateBlog persists new title/content for blog.ID. AuthorID never changes.
	UpdateBlog(ctx context.Context, blog *model.Blog) error
	// GetBlogByID returns id/title/content plus the author's name joined in.
	GetBlogByID(ctx context.Context, id int64) (*model.Blog, error)
	// ListBlogs returns every blog with the same projection, unpaginated.
	ListBlogs(ctx context.Context) ([]model.Blog, error)
}
