// Package schema declares the request payload shapes and their validation
// rules.
//
// Each inbound body (signup, signin, create-blog, update-blog) has a struct
// here with a Validate method built on ozzo-validation. The rules are
// declarative data, not imperative checks scattered through handlers, and a
// failed validation is an ordinary error value — nothing in this package
// panics or writes HTTP responses.
//
// The API contract reports only the first violated rule (the `cause` field
// of the 411 response); FirstViolation extracts it deterministically.
package schema

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Password bounds: bcrypt ignores input beyond 72 bytes, so anything longer
// would silently verify against a truncated prefix. Reject it up front.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
	MaxNameLength     = 100
	MaxTitleLength    = 200
)

// SignupInput is the body of POST /signup.
type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (in SignupInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.Password, validation.Required, validation.Length(MinPasswordLength, MaxPasswordLength)),
		validation.Field(&in.Name, validation.Required, validation.Length(1, MaxNameLength)),
	)
}

// SigninInput is the body of POST /signin.
type SigninInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in SigninInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.Password, validation.Required),
	)
}

// CreateBlogInput is the body of POST /blog. The author is never part of the
// payload — it comes from the authenticated identity.
type CreateBlogInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (in CreateBlogInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.Length(1, MaxTitleLength)),
		validation.Field(&in.Content, validation.Required),
	)
}

// UpdateBlogInput is the body of PUT /blog. The target blog is addressed by
// id in the body, not the path.
type UpdateBlogInput struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (in UpdateBlogInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ID, validation.Required, validation.Min(int64(1))),
		validation.Field(&in.Title, validation.Required, validation.Length(1, MaxTitleLength)),
		validation.Field(&in.Content, validation.Required),
	)
}

// FirstViolation returns the message of the first violated rule in err,
// prefixed with the field name ("email: must be a valid email address").
//
// ozzo-validation reports all violations at once as a field→error map; the
// API contract wants exactly one. Map iteration order is random in Go, so
// the field names are sorted to make "first" deterministic.
func FirstViolation(err error) string {
	if err == nil {
		return ""
	}

	verrs, ok := err.(validation.Errors)
	if !ok {
		return err.Error()
	}

	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		if verrs[field] != nil {
			return field + ": " + verrs[field].Error()
		}
	}
	return err.Error()
}
