package service

import (
	"context"
	"log/slog"

	"github.com/sakif/blog-platform/internal/apperror"
	"github.com/sakif/blog-platform/internal/model"
	"github.com/sakif/blog-platform/internal/repository"
)

// BlogService implements the blog CRUD rules on top of the repository.
type BlogService struct {
	blogs  repository.BlogRepository
	logger *slog.Logger
}

func NewBlogService(blogs repository.BlogRepository, logger *slog.Logger) *BlogService {
	return &BlogService{
		blogs:  blogs,
		logger: logger,
	}
}

// Create saves a new blog. authorID comes from the authenticated identity —
// it is never taken from the request body, so a caller cannot publish as
// somebody else.
func (s *BlogService) Create(ctx context.Context, authorID int64, title, content string) (*model.Blog, error) {
	blog := &model.Blog{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}

	if err := s.blogs.CreateBlog(ctx, blog); err != nil {
		s.logger.Error("failed to create blog",
			slog.Int64("authorID", authorID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("blog created",
		slog.Int64("blogID", blog.ID),
		slog.Int64("authorID", authorID),
	)

	return blog, nil
}

// Update replaces title and content of the blog identified by id.
//
// Only the author may update their blog: the existing record is fetched
// first and the caller's identity compared against its AuthorID. Anyone
// else gets Forbidden, no matter how valid their session is.
func (s *BlogService) Update(ctx context.Context, callerID, id int64, title, content string) (*model.Blog, error) {
	existing, err := s.blogs.GetBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.AuthorID != callerID {
		s.logger.Warn("blog update rejected: caller is not the author",
			slog.Int64("blogID", id),
			slog.Int64("callerID", callerID),
			slog.Int64("authorID", existing.AuthorID),
		)
		return nil, apperror.Forbidden("only the author can update this blog")
	}

	blog := &model.Blog{
		ID:       id,
		Title:    title,
		Content:  content,
		AuthorID: existing.AuthorID,
	}
	if err := s.blogs.UpdateBlog(ctx, blog); err != nil {
		s.logger.Error("failed to update blog",
			slog.Int64("blogID", id),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("blog updated", slog.Int64("blogID", id))

	return blog, nil
}

// GetByID returns one blog with the author's name joined in.
func (s *BlogService) GetByID(ctx context.Context, id int64) (*model.Blog, error) {
	if id <= 0 {
		return nil, apperror.ValidationFailed("id", "blog id must be a positive integer")
	}
	return s.blogs.GetBlogByID(ctx, id)
}

// List returns every blog. The endpoint is unpaginated by contract.
func (s *BlogService) List(ctx context.Context) ([]model.Blog, error) {
	blogs, err := s.blogs.ListBlogs(ctx)
	if err != nil {
		s.logger.Error("failed to list blogs", slog.String("error", err.Error()))
		return nil, err
	}
	return blogs, nil
}
