package mock

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/jullianMozo/BlogPostAPI/app/models"
	"github.com/jullianMozo/BlogPostAPI/app/repositories"
)

// PostRepository is an in-memory PostRepository for tests. Documents
// are cloned on the way in and out so callers never share state with
// the store, matching the behavior of the Badger-backed repository.
type PostRepository struct {
	posts map[string]*models.Post
	mutex sync.RWMutex
}

// UserRepository is an in-memory UserRepository for tests
type UserRepository struct {
	users      map[string]*models.User
	byUsername map[string]string
	mutex      sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[string]*models.Post),
	}
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:      make(map[string]*models.User),
		byUsername: make(map[string]string),
	}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[string]*models.Post)
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; exists {
		return repositories.ErrConflict
	}
	m.posts[post.ID] = clonePost(post)
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return clonePost(post), nil
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for _, post := range m.posts {
		posts = append(posts, clonePost(post))
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = clonePost(post)
	return nil
}

func (m *PostRepository) Mutate(id string, fn func(post *models.Post) error) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	stored, exists := m.posts[id]
	if !exists {
		return repositories.ErrNotFound
	}

	// fn runs on a copy so a failed mutation leaves the document untouched
	post := clonePost(stored)
	if err := fn(post); err != nil {
		return err
	}
	m.posts[id] = post
	return nil
}

func (m *PostRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

// UserRepository implementation

func (m *UserRepository) Create(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.byUsername[user.Username]; exists {
		return repositories.ErrConflict
	}
	m.users[user.ID] = user
	m.byUsername[user.Username] = user.ID
	return nil
}

func (m *UserRepository) GetByID(id string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *UserRepository) GetByUsername(username string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	id, exists := m.byUsername[username]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return m.users[id], nil
}

func clonePost(post *models.Post) *models.Post {
	data, err := json.Marshal(post)
	if err != nil {
		panic(err)
	}
	var clone models.Post
	if err := json.Unmarshal(data, &clone); err != nil {
		panic(err)
	}
	return &clone
}
