package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Blog is a post written by a User.
//
// AuthorID references users.id and is set once at creation time from the
// authenticated identity — it never changes afterwards, even on update.
// Author is the bun relation used for the read projection (GET endpoints
// return the author's name joined in); it is only populated when a query
// explicitly asks for it, so timestamps and the pointer fields use omitempty
// to keep the projected JSON down to {id, title, content, author:{name}}.
type Blog struct {
	bun.BaseModel `bun:"table:blogs,alias:blog"`

	ID        int64      `bun:"id,pk,autoincrement" json:"id"`
	Title     string     `bun:"title,notnull" json:"title"`
	Content   string     `bun:"content,notnull" json:"content"`
	AuthorID  int64      `bun:"author_id,notnull" json:"authorId,omitempty"`
	Author    *User      `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
	CreatedAt *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt,omitempty"`
	UpdatedAt *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updatedAt,omitempty"`
}
