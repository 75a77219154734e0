package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFullName(t *testing.T) {
	t.Run("concatenates first and last name", func(t *testing.T) {
		a := &Author{FirstName: "Ada", LastName: "Lovelace"}
		require.Equal(t, "Ada Lovelace", FullName(a))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		a := &Author{FirstName: "Ada", LastName: ""}
		require.Equal(t, "Ada", FullName(a))

		a = &Author{FirstName: "", LastName: "Lovelace"}
		require.Equal(t, "Lovelace", FullName(a))
	})

	t.Run("nil author yields empty name", func(t *testing.T) {
		require.Equal(t, "", FullName(nil))
	})
}

func TestAuthorValidate(t *testing.T) {
	t.Run("valid author passes", func(t *testing.T) {
		a := &Author{FirstName: "Ada", LastName: "Lovelace", UserName: "ada"}
		require.NoError(t, a.Validate())
	})

	t.Run("missing userName fails", func(t *testing.T) {
		a := &Author{FirstName: "Ada", LastName: "Lovelace"}
		require.Error(t, a.Validate())
	})
}

func TestPostValidate(t *testing.T) {
	t.Run("valid post passes", func(t *testing.T) {
		p := &Post{Title: "T", Content: "C", AuthorID: 1}
		require.NoError(t, p.Validate())
	})

	t.Run("missing title fails", func(t *testing.T) {
		p := &Post{Content: "C", AuthorID: 1}
		require.Error(t, p.Validate())
	})

	t.Run("missing author reference fails", func(t *testing.T) {
		p := &Post{Title: "T", Content: "C"}
		require.Error(t, p.Validate())
	})
}

func TestAddComment(t *testing.T) {
	p := &Post{Title: "T", Content: "C", AuthorID: 1}

	require.NoError(t, p.AddComment(Comment{Content: "first"}))
	require.NoError(t, p.AddComment(Comment{Content: "second"}))
	require.Len(t, p.Comments, 2)
	require.Equal(t, "first", p.Comments[0].Content)

	require.Error(t, p.AddComment(Comment{}))
	require.Len(t, p.Comments, 2)
}

func TestViews(t *testing.T) {
	author := &Author{ID: 3, FirstName: "Ada", LastName: "Lovelace", UserName: "ada"}

	t.Run("author creation response keys the id as _id", func(t *testing.T) {
		data, err := json.Marshal(NewAuthorCreatedView(author))
		require.NoError(t, err)
		require.JSONEq(t, `{"_id":3,"name":"Ada Lovelace","userName":"ada"}`, string(data))
	})

	t.Run("author view keys the id as id", func(t *testing.T) {
		data, err := json.Marshal(NewAuthorView(author))
		require.NoError(t, err)
		require.JSONEq(t, `{"id":3,"name":"Ada Lovelace","userName":"ada"}`, string(data))
	})

	t.Run("post view embeds the author name, never the reference", func(t *testing.T) {
		post := &Post{ID: 7, Title: "T", Content: "C", AuthorID: 3}
		data, err := json.Marshal(NewPostView(post, author))
		require.NoError(t, err)
		require.JSONEq(t, `{"id":7,"title":"T","content":"C","author":"Ada Lovelace","comments":[]}`, string(data))
	})

	t.Run("post view comment list is never null", func(t *testing.T) {
		post := &Post{ID: 7, Title: "T", Content: "C", AuthorID: 3}
		view := NewPostView(post, author)
		require.NotNil(t, view.Comments)
	})

	t.Run("dangling author reference serializes as empty name", func(t *testing.T) {
		post := &Post{ID: 7, Title: "T", Content: "C", AuthorID: 99}
		item := NewPostListItem(post, nil)
		require.Equal(t, "", item.Author)
	})
}
