package repositories

import (
	"github.com/jullianMozo/BlogPostAPI/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerUserRepository implements UserRepository using BadgerDB. Users
// are stored under "user:<id>" with a "username:<name>" index key for
// lookups by username.
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Create persists a new user. Usernames are unique.
func (r *BadgerUserRepository) Create(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		indexKey := []byte(UsernameKeyPrefix + user.Username)

		_, err := txn.Get(indexKey)
		if err == nil {
			return ErrConflict
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}

		if err := txn.Set([]byte(UserKeyPrefix+user.ID), data); err != nil {
			return err
		}
		return txn.Set(indexKey, []byte(user.ID))
	})
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, UserKeyPrefix+id, &user)
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by username via the index key
func (r *BadgerUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(UsernameKeyPrefix + username))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var id string
		if err := item.Value(func(val []byte) error {
			id = string(val)
			return nil
		}); err != nil {
			return err
		}

		return getEntity(txn, UserKeyPrefix+id, &user)
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}
