package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return NewStore(db)
}

func TestUserEmailIsUnique(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.CreateUser(&User{Email: "a@example.com", Password: "x", Name: "A"}))
	err := store.CreateUser(&User{Email: "a@example.com", Password: "y", Name: "B"})
	assert.Error(t, err)

	count, err := store.UserCount()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUserByEmailMissingIsNotAnError(t *testing.T) {
	store := newTestStore(t)

	user, err := store.UserByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestBlogPostTitleIsUnique(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.CreateUser(&User{Email: "a@example.com", Password: "x", Name: "A"}))
	require.NoError(t, store.CreateBlogPost(&BlogPost{
		AuthorID: 1, Title: "First", Subtitle: "s", Date: "August 28, 2026", Body: "b", ImgURL: "http://x/y.png",
	}))

	err := store.CreateBlogPost(&BlogPost{
		AuthorID: 1, Title: "First", Subtitle: "other", Date: "August 28, 2026", Body: "b2", ImgURL: "http://x/z.png",
	})
	assert.Error(t, err)
}

func TestBlogPostByIDMissingFails(t *testing.T) {
	store := newTestStore(t)

	_, err := store.BlogPostByID(42)
	assert.Error(t, err)
}

func TestDeleteBlogPostCascadesComments(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.CreateUser(&User{Email: "a@example.com", Password: "x", Name: "A"}))
	post := BlogPost{AuthorID: 1, Title: "First", Subtitle: "s", Date: "August 28, 2026", Body: "b", ImgURL: "http://x/y.png"}
	require.NoError(t, store.CreateBlogPost(&post))

	require.NoError(t, store.CreateComment(&Comment{Text: "one", PostID: post.ID, UserID: 1}))
	require.NoError(t, store.CreateComment(&Comment{Text: "two", PostID: post.ID, UserID: 1}))

	require.NoError(t, store.DeleteBlogPost(post.ID))

	_, err := store.BlogPostByID(post.ID)
	assert.Error(t, err)

	count, err := store.CommentCountForPost(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestCommentsForPostJoinsCommenter(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.CreateUser(&User{Email: "admin@example.com", Password: "x", Name: "Admin"}))
	require.NoError(t, store.CreateUser(&User{Email: "reader@example.com", Password: "x", Name: "Reader"}))

	post := BlogPost{AuthorID: 1, Title: "First", Subtitle: "s", Date: "August 28, 2026", Body: "b", ImgURL: "http://x/y.png"}
	require.NoError(t, store.CreateBlogPost(&post))

	require.NoError(t, store.CreateComment(&Comment{Text: "earlier", PostID: post.ID, UserID: 2}))
	require.NoError(t, store.CreateComment(&Comment{Text: "later", PostID: post.ID, UserID: 1}))

	comments, err := store.CommentsForPost(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, "earlier", comments[0].Text)
	assert.Equal(t, "reader@example.com", comments[0].Email)
	assert.Equal(t, "Reader", comments[0].Name)

	assert.Equal(t, "later", comments[1].Text)
	assert.Equal(t, "Admin", comments[1].Name)
}

func TestAllBlogPostsInsertionOrder(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.CreateUser(&User{Email: "a@example.com", Password: "x", Name: "A"}))
	for _, title := range []string{"one", "two", "three"} {
		require.NoError(t, store.CreateBlogPost(&BlogPost{
			AuthorID: 1, Title: title, Subtitle: "s", Date: "August 28, 2026", Body: "b", ImgURL: "http://x/y.png",
		}))
	}

	posts, err := store.AllBlogPosts()
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "one", posts[0].Title)
	assert.Equal(t, "three", posts[2].Title)
}
