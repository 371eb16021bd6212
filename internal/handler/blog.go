package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sakif/blog-platform/internal/auth"
	"github.com/sakif/blog-platform/internal/schema"
	"github.com/sakif/blog-platform/internal/service"
)

// BlogHandler serves the /blog resource. Every route here sits behind
// auth.RequireAuth, so the user id is always in the request context.
type BlogHandler struct {
	blogs  *service.BlogService
	logger *slog.Logger
}

func NewBlogHandler(blogs *service.BlogService, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{blogs: blogs, logger: logger}
}

// blogResponse is the envelope for every successful /blog response. Blog
// holds either a single record or a slice, matching the legacy shape.
type blogResponse struct {
	Msg  string `json:"msg"`
	Blog any    `json:"blog"`
}

// callerID reads the authenticated identity the gate put in the context.
// On a RequireAuth route it is always present; the false branch guards
// against a future wiring mistake, not a real request path.
func (h *BlogHandler) callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"msg":"You are not signed in"}`))
		return 0, false
	}
	return id, true
}

// HandleCreate creates a blog authored by the caller.
//
// HTTP: POST /blog, body {title, content}
func (h *BlogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var in schema.CreateBlogInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeValidation(w, "request body must be valid JSON")
		return
	}

	if err := in.Validate(); err != nil {
		writeValidation(w, schema.FirstViolation(err))
		return
	}

	blog, err := h.blogs.Create(r.Context(), userID, in.Title, in.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, blogResponse{
		Msg:  "Blog created successfully",
		Blog: blog,
	})
}

// HandleUpdate replaces title/content of the blog named by body.id.
// The service rejects callers who are not the author with 403.
//
// HTTP: PUT /blog, body {id, title, content}
func (h *BlogHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var in schema.UpdateBlogInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeValidation(w, "request body must be valid JSON")
		return
	}

	if err := in.Validate(); err != nil {
		writeValidation(w, schema.FirstViolation(err))
		return
	}

	blog, err := h.blogs.Update(r.Context(), userID, in.ID, in.Title, in.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, blogResponse{
		Msg:  "Blog updated successfully",
		Blog: blog,
	})
}

// HandleList returns every blog with the id/title/content/author.name
// projection.
//
// HTTP: GET /blog/bulk
func (h *BlogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.callerID(w, r); !ok {
		return
	}

	blogs, err := h.blogs.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, blogResponse{
		Msg:  "Blogs fetched successfully",
		Blog: blogs,
	})
}

// HandleGetByID returns one blog by path id, same projection as the listing.
//
// HTTP: GET /blog/{id}
func (h *BlogHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.callerID(w, r); !ok {
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeValidation(w, "id: must be an integer")
		return
	}

	blog, err := h.blogs.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, blogResponse{
		Msg:  "Blog fetched successfully",
		Blog: blog,
	})
}
