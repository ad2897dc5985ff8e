package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.UpdatedAt = p.CreatedAt
	if p.Comments == nil {
		p.Comments = []*Comment{}
	}
}

// Touch updates the modification timestamp
func (p *Post) Touch() {
	p.UpdatedAt = time.Now().UTC()
}

// AddComment appends a comment to the post, preserving insertion order
func (p *Post) AddComment(comment *Comment) error {
	if comment == nil {
		return errors.New("comment cannot be nil")
	}

	p.Comments = append(p.Comments, comment)
	return nil
}

// RemoveComment removes the comment with the given ID from the post.
// The relative order of the remaining comments is preserved.
func (p *Post) RemoveComment(commentID string) error {
	for i, comment := range p.Comments {
		if comment.ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return errors.New("comment not found")
}

// FindComment returns the comment with the given ID, or nil
func (p *Post) FindComment(commentID string) *Comment {
	for _, comment := range p.Comments {
		if comment.ID == commentID {
			return comment
		}
	}
	return nil
}
