package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/blog-platform/internal/apperror"
	"github.com/sakif/blog-platform/internal/model"
)

func createTestBlog(t *testing.T, db *DB, authorID int64, title, content string) *model.Blog {
	t.Helper()
	blog := &model.Blog{Title: title, Content: content, AuthorID: authorID}
	if err := db.CreateBlog(context.Background(), blog); err != nil {
		t.Fatalf("failed to create test blog: %v", err)
	}
	return blog
}

// =========================================================================
// CREATE TESTS
// =========================================================================

func TestCreateBlog(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author@x.com", "Author")

	blog := &model.Blog{Title: "T", Content: "C", AuthorID: author.ID}
	if err := db.CreateBlog(context.Background(), blog); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if blog.ID == 0 {
		t.Error("Create() did not set blog.ID")
	}
	if blog.CreatedAt == nil {
		t.Error("Create() did not set blog.CreatedAt")
	}
}

func TestCreateBlog_UnknownAuthor(t *testing.T) {
	db := newTestDB(t)

	// No user with id 42 exists; the foreign key must reject the row.
	err := db.CreateBlog(context.Background(), &model.Blog{
		Title:    "T",
		Content:  "C",
		AuthorID: 42,
	})
	if err == nil {
		t.Fatal("Create() should reject an author id that references no user")
	}
}

// =========================================================================
// GET / LIST TESTS
// =========================================================================

func TestGetBlogByID_ProjectsAuthorName(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "jane@x.com", "Jane")
	created := createTestBlog(t, db, author.ID, "Title", "Content")

	found, err := db.GetBlogByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetBlogByID() error = %v", err)
	}

	if found.Title != "Title" || found.Content != "Content" {
		t.Errorf("got (%q, %q), want (Title, Content)", found.Title, found.Content)
	}
	if found.Author == nil {
		t.Fatal("GetBlogByID() did not join the author")
	}
	if found.Author.Name != "Jane" {
		t.Errorf("Author.Name = %q, want %q", found.Author.Name, "Jane")
	}
	// Projection excludes the author's credentials.
	if found.Author.Email != "" || found.Author.Password != "" {
		t.Error("GetBlogByID() leaked author columns beyond the name")
	}
}

func TestGetBlogByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetBlogByID(context.Background(), 12345)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetBlogByID() error = %v, want ErrNotFound", err)
	}
}

func TestListBlogs(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "many@x.com", "Prolific")

	createTestBlog(t, db, author.ID, "first", "1")
	createTestBlog(t, db, author.ID, "second", "2")
	createTestBlog(t, db, author.ID, "third", "3")

	blogs, err := db.ListBlogs(context.Background())
	if err != nil {
		t.Fatalf("ListBlogs() error = %v", err)
	}

	if len(blogs) != 3 {
		t.Fatalf("ListBlogs() returned %d blogs, want 3", len(blogs))
	}
	// Oldest first.
	if blogs[0].Title != "first" || blogs[2].Title != "third" {
		t.Errorf("ListBlogs() order = [%q, %q, %q], want insertion order",
			blogs[0].Title, blogs[1].Title, blogs[2].Title)
	}
	for i, b := range blogs {
		if b.Author == nil || b.Author.Name != "Prolific" {
			t.Errorf("blogs[%d] missing author name", i)
		}
	}
}

func TestListBlogs_Empty(t *testing.T) {
	db := newTestDB(t)

	blogs, err := db.ListBlogs(context.Background())
	if err != nil {
		t.Fatalf("ListBlogs() error = %v", err)
	}
	if len(blogs) != 0 {
		t.Errorf("ListBlogs() on empty table returned %d blogs", len(blogs))
	}
}

// =========================================================================
// UPDATE TESTS
// =========================================================================

func TestUpdateBlog(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "upd@x.com", "Upd")
	created := createTestBlog(t, db, author.ID, "old title", "old content")

	err := db.UpdateBlog(context.Background(), &model.Blog{
		ID:      created.ID,
		Title:   "new title",
		Content: "new content",
	})
	if err != nil {
		t.Fatalf("UpdateBlog() error = %v", err)
	}

	found, err := db.GetBlogByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetBlogByID() error = %v", err)
	}
	if found.Title != "new title" || found.Content != "new content" {
		t.Errorf("after update got (%q, %q)", found.Title, found.Content)
	}
	// Authorship survives the update untouched.
	if found.AuthorID != author.ID {
		t.Errorf("AuthorID = %d, want %d", found.AuthorID, author.ID)
	}
}

func TestUpdateBlog_NotFound(t *testing.T) {
	db := newTestDB(t)

	err := db.UpdateBlog(context.Background(), &model.Blog{
		ID:      777,
		Title:   "T",
		Content: "C",
	})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("UpdateBlog() error = %v, want ErrNotFound", err)
	}
}
