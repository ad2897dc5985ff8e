package repositories

import (
	"fmt"
	"sort"

	"github.com/jullianMozo/BlogPostAPI/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB. Each
// post aggregate is stored as one JSON document under "post:<id>".
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create persists a new post aggregate
func (r *BadgerPostRepository) Create(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(PostKeyPrefix + post.ID)

		_, err := txn.Get(key)
		if err == nil {
			return ErrConflict
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// GetByID retrieves a post aggregate by ID
func (r *BadgerPostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, PostKeyPrefix+id, &post)
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves all posts ordered by creation time, newest first
func (r *BadgerPostRepository) List() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %v", err)
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// Update overwrites an existing post aggregate
func (r *BadgerPostRepository) Update(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(PostKeyPrefix + post.ID)

		// Verify post exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Mutate loads the post, applies fn and persists the result inside a
// single Badger transaction. Concurrent mutations of the same post are
// serialized by the store, so an append cannot be lost to a stale
// whole-document overwrite.
func (r *BadgerPostRepository) Mutate(id string, fn func(post *models.Post) error) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var post models.Post
		if err := getEntity(txn, PostKeyPrefix+id, &post); err != nil {
			return err
		}

		if err := fn(&post); err != nil {
			return err
		}

		data, err := marshalEntity(&post)
		if err != nil {
			return err
		}
		return txn.Set([]byte(PostKeyPrefix+id), data)
	})
}

// Delete deletes a post aggregate by ID. Embedded comments and replies
// go with the document.
func (r *BadgerPostRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(PostKeyPrefix + id)

		// Verify post exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}

// getEntity reads and unmarshals a single document within a transaction
func getEntity(txn *badger.Txn, key string, entity interface{}) error {
	item, err := txn.Get([]byte(key))
	if err == badger.ErrKeyNotFound {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return item.Value(func(val []byte) error {
		return unmarshalEntity(val, entity)
	})
}
