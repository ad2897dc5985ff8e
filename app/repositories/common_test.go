package repositories

import (
	"testing"

	"github.com/jullianMozo/BlogPostAPI/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a throwaway Badger instance in a temp directory
func newTestDB(t *testing.T) *badger.DB {
	t.Helper()

	opts := badger.DefaultOptions(t.TempDir()).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1)
	db, err := badger.Open(opts)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func newTestPost(t *testing.T, title string) *models.Post {
	t.Helper()

	post := &models.Post{
		Title:    title,
		Content:  "content of " + title,
		AuthorID: "author-1",
	}
	post.BeforeCreate()
	require.NoError(t, post.Validate())
	return post
}
