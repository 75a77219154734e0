package repositories

import (
	"testing"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newAuthor(first, last, user string) *models.Author {
	return &models.Author{FirstName: first, LastName: last, UserName: user}
}

func TestAuthorRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerAuthorRepository(db)

	t.Run("create assigns sequential ids", func(t *testing.T) {
		a := newAuthor("Ada", "Lovelace", "ada")
		require.NoError(t, repo.Create(a))
		require.Equal(t, 1, a.ID)

		b := newAuthor("Alan", "Turing", "alan")
		require.NoError(t, repo.Create(b))
		require.Equal(t, 2, b.ID)
	})

	t.Run("get returns the stored author", func(t *testing.T) {
		got, err := repo.GetByID(1)
		require.NoError(t, err)
		require.Equal(t, "ada", got.UserName)
		require.Equal(t, "Ada", got.FirstName)
	})

	t.Run("get missing id returns ErrNotFound", func(t *testing.T) {
		_, err := repo.GetByID(999)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list returns all authors", func(t *testing.T) {
		authors, err := repo.List()
		require.NoError(t, err)
		require.Len(t, authors, 2)
	})

	t.Run("update persists changed fields", func(t *testing.T) {
		a, err := repo.GetByID(1)
		require.NoError(t, err)
		a.LastName = "Byron"
		require.NoError(t, repo.Update(a))

		got, err := repo.GetByID(1)
		require.NoError(t, err)
		require.Equal(t, "Byron", got.LastName)
	})

	t.Run("update missing author returns ErrNotFound", func(t *testing.T) {
		err := repo.Update(&models.Author{ID: 999, FirstName: "X", LastName: "Y", UserName: "z"})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("find by username excludes the given id", func(t *testing.T) {
		found, err := repo.FindByUserName("alan", 0)
		require.NoError(t, err)
		require.Equal(t, 2, found.ID)

		_, err = repo.FindByUserName("alan", 2)
		require.ErrorIs(t, err, ErrNotFound)

		_, err = repo.FindByUserName("nobody", 0)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete removes the author and is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Delete(2))
		_, err := repo.GetByID(2)
		require.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, repo.Delete(2))
	})
}

func TestPostRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	seed := func(title string, authorID int) *models.Post {
		p := &models.Post{Title: title, Content: "body of " + title, AuthorID: authorID}
		require.NoError(t, repo.Create(p))
		return p
	}

	first := seed("First", 1)
	seed("Second", 1)
	other := seed("Other", 2)

	t.Run("create assigns sequential ids", func(t *testing.T) {
		require.Equal(t, 1, first.ID)
		require.Equal(t, 3, other.ID)
	})

	t.Run("get round-trips the comment list", func(t *testing.T) {
		p, err := repo.GetByID(first.ID)
		require.NoError(t, err)
		require.NoError(t, p.AddComment(models.Comment{Content: "nice"}))
		require.NoError(t, repo.Update(p))

		got, err := repo.GetByID(first.ID)
		require.NoError(t, err)
		require.Len(t, got.Comments, 1)
		require.Equal(t, "nice", got.Comments[0].Content)
	})

	t.Run("get missing id returns ErrNotFound", func(t *testing.T) {
		_, err := repo.GetByID(999)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list by author filters on the reference", func(t *testing.T) {
		posts, err := repo.ListByAuthor(1)
		require.NoError(t, err)
		require.Len(t, posts, 2)

		posts, err = repo.ListByAuthor(99)
		require.NoError(t, err)
		require.Empty(t, posts)
	})

	t.Run("delete by author removes only that author's posts", func(t *testing.T) {
		require.NoError(t, repo.DeleteByAuthor(1))

		posts, err := repo.List()
		require.NoError(t, err)
		require.Len(t, posts, 1)
		require.Equal(t, other.ID, posts[0].ID)
	})

	t.Run("delete by author with no posts is a no-op", func(t *testing.T) {
		require.NoError(t, repo.DeleteByAuthor(42))

		posts, err := repo.List()
		require.NoError(t, err)
		require.Len(t, posts, 1)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Delete(other.ID))
		require.NoError(t, repo.Delete(other.ID))

		posts, err := repo.List()
		require.NoError(t, err)
		require.Empty(t, posts)
	})
}
