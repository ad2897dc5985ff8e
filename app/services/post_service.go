package services

import (
	"fmt"

	"github.com/jullianMozo/BlogPostAPI/app/models"
	"github.com/jullianMozo/BlogPostAPI/app/repositories"
)

// PostService owns the lifecycle of a post aggregate and its embedded
// comment tree. All mutations load the whole aggregate, change it in
// memory and persist it back as one document; sub-entities are never
// written independently of their root.
type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// ListPosts retrieves all posts, newest first, with author projections
// resolved on every post, comment and reply
func (s *PostService) ListPosts() ([]*models.Post, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	if err := s.resolveAuthors(posts); err != nil {
		return nil, fmt.Errorf("failed to resolve authors: %v", err)
	}
	return posts, nil
}

// GetPost retrieves a single post with author projections resolved
func (s *PostService) GetPost(id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.resolveAuthors([]*models.Post{post}); err != nil {
		return nil, fmt.Errorf("failed to resolve authors: %v", err)
	}
	return post, nil
}

// CreatePost creates a new post owned by the principal. Title and
// content are required.
func (s *PostService) CreatePost(principal models.Principal, title, content string) (*models.Post, error) {
	post := &models.Post{
		Title:    title,
		Content:  content,
		AuthorID: principal.ID,
	}
	post.BeforeCreate()

	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// AddComment appends a comment by the principal to the post. Any
// authenticated principal may comment; there is no ownership check.
func (s *PostService) AddComment(principal models.Principal, postID, text string) (*models.Comment, error) {
	comment := &models.Comment{
		Text:     text,
		AuthorID: principal.ID,
	}
	comment.BeforeCreate()

	if err := comment.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	err := s.postRepo.Mutate(postID, func(post *models.Post) error {
		if err := post.AddComment(comment); err != nil {
			return err
		}
		post.Touch()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// EditPost overwrites the post's title and content. Only the author or
// an admin may edit. Title and content are validated the same way as
// on creation.
func (s *PostService) EditPost(principal models.Principal, postID, title, content string) error {
	if title == "" || content == "" {
		return fmt.Errorf("%w: title and content are required", ErrInvalidArgument)
	}

	return s.postRepo.Mutate(postID, func(post *models.Post) error {
		if !canModify(principal, post.AuthorID) {
			return ErrForbidden
		}

		post.Title = title
		post.Content = content
		post.Touch()
		return nil
	})
}

// DeletePost deletes the whole aggregate; embedded comments and
// replies cascade. Only the author or an admin may delete.
func (s *PostService) DeletePost(principal models.Principal, postID string) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}

	if !canModify(principal, post.AuthorID) {
		return ErrForbidden
	}

	return s.postRepo.Delete(postID)
}

// DeleteComment removes the comment with the given ID from the post,
// preserving the relative order of the remaining comments. The
// operation itself performs no author check; the routing layer gates
// it behind the admin role.
func (s *PostService) DeleteComment(principal models.Principal, postID, commentID string) error {
	return s.postRepo.Mutate(postID, func(post *models.Post) error {
		if post.FindComment(commentID) == nil {
			return repositories.ErrNotFound
		}

		if err := post.RemoveComment(commentID); err != nil {
			return err
		}
		post.Touch()
		return nil
	})
}

// canModify reports whether the principal owns the entity or is an admin
func canModify(principal models.Principal, authorID string) bool {
	return principal.IsAdmin || principal.ID == authorID
}

// resolveAuthors replaces author IDs with minimal author projections on
// every post, comment and reply. Authors that no longer resolve are
// left unset rather than failing the read.
func (s *PostService) resolveAuthors(posts []*models.Post) error {
	cache := make(map[string]*models.Author)

	lookup := func(id string) (*models.Author, error) {
		if author, ok := cache[id]; ok {
			return author, nil
		}
		user, err := s.userRepo.GetByID(id)
		if err == repositories.ErrNotFound {
			cache[id] = nil
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		cache[id] = user.Projection()
		return cache[id], nil
	}

	for _, post := range posts {
		author, err := lookup(post.AuthorID)
		if err != nil {
			return err
		}
		post.Author = author

		for _, comment := range post.Comments {
			author, err := lookup(comment.AuthorID)
			if err != nil {
				return err
			}
			comment.Author = author

			for _, reply := range comment.Replies {
				author, err := lookup(reply.AuthorID)
				if err != nil {
					return err
				}
				reply.Author = author
			}
		}
	}
	return nil
}
