// Package client is a small HTTP client for the blog API.
//
// It mirrors what the web frontend does: obtain a token via signup/signin,
// keep it, and present it verbatim in the `authorization` header on every
// blog call (the raw token is the header value — no "Bearer " prefix).
// The end-to-end server tests drive the whole API through this package.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Author is the projected author of a blog — only the name crosses the wire.
type Author struct {
	Name string `json:"name"`
}

// Blog is a post as the read endpoints return it.
type Blog struct {
	ID      int64   `json:"id"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Author  *Author `json:"author,omitempty"`
}

// Client talks to one blog API server. It is safe for concurrent use once
// the token is set; SetToken itself is not synchronized.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// New creates a Client for the API at baseURL (no trailing slash).
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken sets the session token sent on subsequent requests. Signup and
// Signin call it automatically.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client: server returned %d: %s", e.StatusCode, e.Body)
}

// Signup creates an account and stores the returned session token.
// The signup endpoint answers with the raw token as a text body.
func (c *Client) Signup(ctx context.Context, email, password, name string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/signup", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	})
	if err != nil {
		return "", err
	}

	c.token = string(body)
	return c.token, nil
}

// Signin authenticates and stores the returned session token.
func (c *Client) Signin(ctx context.Context, email, password string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/signin", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	var res struct {
		Jwt string `json:"jwt"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("client: decoding signin response: %w", err)
	}

	c.token = res.Jwt
	return c.token, nil
}

// CreateBlog publishes a new blog authored by the signed-in user.
func (c *Client) CreateBlog(ctx context.Context, title, content string) (*Blog, error) {
	body, err := c.do(ctx, http.MethodPost, "/blog", map[string]string{
		"title":   title,
		"content": content,
	})
	if err != nil {
		return nil, err
	}
	return decodeBlog(body)
}

// UpdateBlog replaces title and content of the blog with the given id.
func (c *Client) UpdateBlog(ctx context.Context, id int64, title, content string) (*Blog, error) {
	body, err := c.do(ctx, http.MethodPut, "/blog", map[string]any{
		"id":      id,
		"title":   title,
		"content": content,
	})
	if err != nil {
		return nil, err
	}
	return decodeBlog(body)
}

// GetBlog fetches one blog by id.
func (c *Client) GetBlog(ctx context.Context, id int64) (*Blog, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/blog/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeBlog(body)
}

// ListBlogs fetches every blog.
func (c *Client) ListBlogs(ctx context.Context) ([]Blog, error) {
	body, err := c.do(ctx, http.MethodGet, "/blog/bulk", nil)
	if err != nil {
		return nil, err
	}

	var res struct {
		Blog []Blog `json:"blog"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("client: decoding blog list: %w", err)
	}
	return res.Blog, nil
}

func decodeBlog(body []byte) (*Blog, error) {
	var res struct {
		Blog *Blog `json:"blog"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("client: decoding blog response: %w", err)
	}
	return res.Blog, nil
}

// do sends one request and returns the raw response body, turning any
// non-2xx status into an *APIError.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("client: encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("client: building request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("authorization", c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("client: reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
