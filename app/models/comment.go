package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	return validate.Struct(c)
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate() {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.Replies == nil {
		c.Replies = []*Reply{}
	}
}

// AddReply appends a reply to the comment, preserving insertion order
func (c *Comment) AddReply(reply *Reply) error {
	if reply == nil {
		return errors.New("reply cannot be nil")
	}

	c.Replies = append(c.Replies, reply)
	return nil
}

// RemoveReply removes the reply with the given ID from the comment.
// The relative order of the remaining replies is preserved.
func (c *Comment) RemoveReply(replyID string) error {
	for i, reply := range c.Replies {
		if reply.ID == replyID {
			c.Replies = append(c.Replies[:i], c.Replies[i+1:]...)
			return nil
		}
	}
	return errors.New("reply not found")
}

// Validate checks if the reply meets all validation requirements
func (r *Reply) Validate() error {
	return validate.Struct(r)
}

// BeforeCreate sets up any necessary fields before creation
func (r *Reply) BeforeCreate() {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
}
