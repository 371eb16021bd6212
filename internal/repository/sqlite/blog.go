package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/sakif/blog-platform/internal/apperror"
	"github.com/sakif/blog-platform/internal/model"
	"github.com/sakif/blog-platform/internal/repository"
)

// compile-time check that *DB implements repository.BlogRepository
var _ repository.BlogRepository = (*DB)(nil)

// withAuthorName limits the Author relation join to the author's name —
// the projection every read endpoint returns.
func withAuthorName(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Column("name")
}

// CreateBlog inserts a new blog. AuthorID must already be set by the caller
// (the service takes it from the authenticated identity); the foreign key
// rejects ids that don't reference an existing user.
func (db *DB) CreateBlog(ctx context.Context, blog *model.Blog) error {
	now := time.Now()
	blog.CreatedAt = &now
	blog.UpdatedAt = &now

	if _, err := db.bun.NewInsert().Model(blog).Exec(ctx); err != nil {
		return apperror.Unavailable("sqlite: inserting blog", err)
	}

	return nil
}

// UpdateBlog persists new title and content for blog.ID. The author column is
// deliberately not in the column list — authorship is immutable.
func (db *DB) UpdateBlog(ctx context.Context, blog *model.Blog) error {
	now := time.Now()
	blog.UpdatedAt = &now

	res, err := db.bun.NewUpdate().
		Model(blog).
		Column("title", "content", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return apperror.Unavailable("sqlite: updating blog", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return apperror.Unavailable("sqlite: updating blog", err)
	}
	if affected == 0 {
		return apperror.NotFound("blog", blog.ID)
	}

	return nil
}

// GetBlogByID fetches one blog with the id/title/content projection and the
// author's name joined in.
func (db *DB) GetBlogByID(ctx context.Context, id int64) (*model.Blog, error) {
	blog := new(model.Blog)

	err := db.bun.NewSelect().
		Model(blog).
		Column("blog.id", "blog.title", "blog.content", "blog.author_id").
		Relation("Author", withAuthorName).
		Where("blog.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("blog", id)
		}
		return nil, apperror.Unavailable("sqlite: getting blog", err)
	}

	return blog, nil
}

// ListBlogs fetches every blog, oldest first, with the same projection as
// GetByID. No filter, no pagination — the listing endpoint returns the
// whole table.
func (db *DB) ListBlogs(ctx context.Context) ([]model.Blog, error) {
	blogs := make([]model.Blog, 0)

	err := db.bun.NewSelect().
		Model(&blogs).
		Column("blog.id", "blog.title", "blog.content", "blog.author_id").
		Relation("Author", withAuthorName).
		Order("blog.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, apperror.Unavailable("sqlite: listing blogs", err)
	}

	return blogs, nil
}
