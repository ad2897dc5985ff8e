package repositories

import "github.com/jullianMozo/BlogPostAPI/app/models"

// PostRepository defines the interface for post aggregate data access.
// A post and its embedded comments and replies are loaded and persisted
// as one document.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	// Mutate loads the post, applies fn to it in memory and persists
	// the result as a single atomic read-modify-write. An error from fn
	// aborts the write and is returned unchanged.
	Mutate(id string, fn func(post *models.Post) error) error
	Delete(id string) error
}

// UserRepository defines the interface for user account data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}
