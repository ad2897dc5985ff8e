package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Post is the aggregate root for a blog post. Comments and their
// replies are embedded documents owned by the post; they are only ever
// read or mutated through the root.
type Post struct {
	ID        string     `json:"id" validate:"required"`
	Title     string     `json:"title" validate:"required"`
	Content   string     `json:"content" validate:"required"`
	AuthorID  string     `json:"authorId" validate:"required"`
	Author    *Author    `json:"author,omitempty" validate:"-"`
	Comments  []*Comment `json:"comments" validate:"-"`
	CreatedAt time.Time  `json:"createdAt" validate:"required"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Comment is owned exclusively by its parent post.
type Comment struct {
	ID        string    `json:"id" validate:"required"`
	Text      string    `json:"text" validate:"required"`
	AuthorID  string    `json:"authorId" validate:"required"`
	Author    *Author   `json:"author,omitempty" validate:"-"`
	Replies   []*Reply  `json:"replies" validate:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// Reply is owned exclusively by its parent comment.
type Reply struct {
	ID        string    `json:"id" validate:"required"`
	Text      string    `json:"text" validate:"required"`
	AuthorID  string    `json:"authorId" validate:"required"`
	Author    *Author   `json:"author,omitempty" validate:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// Author is the minimal projection of a user embedded in read
// responses in place of a bare author id.
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Principal is the authenticated actor performing an operation.
type Principal struct {
	ID      string
	IsAdmin bool
}

// User is an account record. Stored as a JSON document, so the hash
// carries a tag; handlers must respond with Projection(), never the
// raw user.
type User struct {
	ID           string    `json:"id" validate:"required"`
	Username     string    `json:"username" validate:"required,min=2,max=50"`
	PasswordHash []byte    `json:"passwordHash,omitempty" validate:"required"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
}
