package services

import (
	"testing"

	"github.com/jullianMozo/BlogPostAPI/app/models"
	"github.com/jullianMozo/BlogPostAPI/app/repositories"
	"github.com/jullianMozo/BlogPostAPI/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = models.Principal{ID: "user-alice"}
	bob   = models.Principal{ID: "user-bob"}
	admin = models.Principal{ID: "user-admin", IsAdmin: true}
)

func newTestService(t *testing.T) (*PostService, *mock.PostRepository, *mock.UserRepository) {
	t.Helper()

	postRepo := mock.NewPostRepository()
	userRepo := mock.NewUserRepository()
	for id, username := range map[string]string{
		"user-alice": "alice",
		"user-bob":   "bob",
		"user-admin": "root",
	} {
		user := &models.User{ID: id, Username: username}
		require.NoError(t, user.SetPassword("s3cret"))
		user.BeforeCreate()
		require.NoError(t, userRepo.Create(user))
	}
	return NewPostService(postRepo, userRepo), postRepo, userRepo
}

func TestCreatePost(t *testing.T) {
	service, _, _ := newTestService(t)

	t.Run("valid", func(t *testing.T) {
		post, err := service.CreatePost(alice, "A", "B")
		require.NoError(t, err)
		assert.NotEmpty(t, post.ID)
		assert.Equal(t, alice.ID, post.AuthorID)
		assert.Empty(t, post.Comments)
		assert.False(t, post.CreatedAt.IsZero())
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := service.CreatePost(alice, "", "content")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := service.CreatePost(alice, "title", "")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("invalid creates nothing", func(t *testing.T) {
		before, err := service.ListPosts()
		require.NoError(t, err)

		_, err = service.CreatePost(alice, "", "")
		assert.ErrorIs(t, err, ErrInvalidArgument)

		after, err := service.ListPosts()
		require.NoError(t, err)
		assert.Equal(t, len(before), len(after))
	})
}

func TestGetPostRoundTrip(t *testing.T) {
	service, _, _ := newTestService(t)

	created, err := service.CreatePost(alice, "Round Trip", "Body")
	require.NoError(t, err)

	got, err := service.GetPost(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Content, got.Content)
	assert.Equal(t, created.AuthorID, got.AuthorID)
	assert.Empty(t, got.Comments)

	require.NotNil(t, got.Author)
	assert.Equal(t, "alice", got.Author.Username)
}

func TestGetPostNotFound(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.GetPost("no-such-post")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestListPostsOrder(t *testing.T) {
	service, _, _ := newTestService(t)

	first, err := service.CreatePost(alice, "first", "body")
	require.NoError(t, err)
	second, err := service.CreatePost(bob, "second", "body")
	require.NoError(t, err)
	// Force distinct timestamps regardless of clock resolution
	second.CreatedAt = first.CreatedAt.Add(1)
	require.NoError(t, service.postRepo.Update(second))

	posts, err := service.ListPosts()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "second", posts[0].Title)
	assert.Equal(t, "first", posts[1].Title)

	require.NotNil(t, posts[0].Author)
	assert.Equal(t, "bob", posts[0].Author.Username)
}

func TestAddComment(t *testing.T) {
	service, _, _ := newTestService(t)

	post, err := service.CreatePost(alice, "Post", "Body")
	require.NoError(t, err)

	t.Run("any principal may comment", func(t *testing.T) {
		comment, err := service.AddComment(bob, post.ID, "hi")
		require.NoError(t, err)
		assert.Equal(t, bob.ID, comment.AuthorID)

		got, err := service.GetPost(post.ID)
		require.NoError(t, err)
		require.Len(t, got.Comments, 1)
		assert.Equal(t, "hi", got.Comments[0].Text)
		assert.Equal(t, bob.ID, got.Comments[0].AuthorID)
		require.NotNil(t, got.Comments[0].Author)
		assert.Equal(t, "bob", got.Comments[0].Author.Username)
	})

	t.Run("each comment appends exactly one", func(t *testing.T) {
		before, err := service.GetPost(post.ID)
		require.NoError(t, err)

		_, err = service.AddComment(alice, post.ID, "another")
		require.NoError(t, err)

		after, err := service.GetPost(post.ID)
		require.NoError(t, err)
		assert.Equal(t, len(before.Comments)+1, len(after.Comments))
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := service.AddComment(bob, post.ID, "")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := service.AddComment(bob, "no-such-post", "hi")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestEditPost(t *testing.T) {
	service, _, _ := newTestService(t)

	post, err := service.CreatePost(alice, "Original", "Body")
	require.NoError(t, err)

	t.Run("author may edit", func(t *testing.T) {
		err := service.EditPost(alice, post.ID, "Edited", "New body")
		require.NoError(t, err)

		got, err := service.GetPost(post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Edited", got.Title)
		assert.Equal(t, "New body", got.Content)
	})

	t.Run("admin may edit", func(t *testing.T) {
		err := service.EditPost(admin, post.ID, "Admin edit", "Admin body")
		require.NoError(t, err)

		got, err := service.GetPost(post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Admin edit", got.Title)
	})

	t.Run("other principal forbidden and post unchanged", func(t *testing.T) {
		err := service.EditPost(bob, post.ID, "Hijacked", "Nope")
		assert.ErrorIs(t, err, ErrForbidden)

		got, err := service.GetPost(post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Admin edit", got.Title)
		assert.Equal(t, "Admin body", got.Content)
	})

	t.Run("empty fields rejected before load", func(t *testing.T) {
		err := service.EditPost(alice, post.ID, "", "body")
		assert.ErrorIs(t, err, ErrInvalidArgument)

		err = service.EditPost(alice, post.ID, "title", "")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("missing post", func(t *testing.T) {
		err := service.EditPost(alice, "no-such-post", "t", "c")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestDeletePost(t *testing.T) {
	service, _, _ := newTestService(t)

	t.Run("author may delete", func(t *testing.T) {
		post, err := service.CreatePost(alice, "Mine", "Body")
		require.NoError(t, err)

		require.NoError(t, service.DeletePost(alice, post.ID))

		_, err = service.GetPost(post.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("admin may delete", func(t *testing.T) {
		post, err := service.CreatePost(alice, "Mine", "Body")
		require.NoError(t, err)

		require.NoError(t, service.DeletePost(admin, post.ID))

		_, err = service.GetPost(post.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("other principal forbidden", func(t *testing.T) {
		post, err := service.CreatePost(alice, "Mine", "Body")
		require.NoError(t, err)

		err = service.DeletePost(bob, post.ID)
		assert.ErrorIs(t, err, ErrForbidden)

		_, err = service.GetPost(post.ID)
		assert.NoError(t, err)
	})

	t.Run("comments cascade with the aggregate", func(t *testing.T) {
		post, err := service.CreatePost(alice, "With comments", "Body")
		require.NoError(t, err)
		_, err = service.AddComment(bob, post.ID, "hi")
		require.NoError(t, err)

		require.NoError(t, service.DeletePost(alice, post.ID))

		_, err = service.GetPost(post.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("missing post", func(t *testing.T) {
		err := service.DeletePost(alice, "no-such-post")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestDeleteComment(t *testing.T) {
	service, _, _ := newTestService(t)

	post, err := service.CreatePost(alice, "Post", "Body")
	require.NoError(t, err)

	var ids []string
	for _, text := range []string{"one", "two", "three"} {
		comment, err := service.AddComment(bob, post.ID, text)
		require.NoError(t, err)
		ids = append(ids, comment.ID)
	}

	t.Run("removes exactly the matching comment, order preserved", func(t *testing.T) {
		require.NoError(t, service.DeleteComment(admin, post.ID, ids[1]))

		got, err := service.GetPost(post.ID)
		require.NoError(t, err)
		require.Len(t, got.Comments, 2)
		assert.Equal(t, "one", got.Comments[0].Text)
		assert.Equal(t, "three", got.Comments[1].Text)
	})

	t.Run("unknown comment id leaves comments unchanged", func(t *testing.T) {
		err := service.DeleteComment(admin, post.ID, "no-such-comment")
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		got, err := service.GetPost(post.ID)
		require.NoError(t, err)
		assert.Len(t, got.Comments, 2)
	})

	t.Run("missing post", func(t *testing.T) {
		err := service.DeleteComment(admin, "no-such-post", ids[0])
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestCommentScenario(t *testing.T) {
	service, _, _ := newTestService(t)

	post, err := service.CreatePost(alice, "A", "B")
	require.NoError(t, err)

	comment, err := service.AddComment(bob, post.ID, "hi")
	require.NoError(t, err)

	got, err := service.GetPost(post.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "hi", got.Comments[0].Text)
	assert.Equal(t, bob.ID, got.Comments[0].AuthorID)

	require.NoError(t, service.DeleteComment(admin, post.ID, comment.ID))

	got, err = service.GetPost(post.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Comments)
}

func TestResolveAuthorsMissingUser(t *testing.T) {
	service, _, _ := newTestService(t)

	ghost := models.Principal{ID: "user-ghost"}
	post, err := service.CreatePost(ghost, "Orphan", "Body")
	require.NoError(t, err)

	got, err := service.GetPost(post.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Author)
	assert.Equal(t, "user-ghost", got.AuthorID)
}
