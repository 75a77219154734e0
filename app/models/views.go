package models

// Serialization views: the shapes returned to API clients. The raw
// author reference and internal fields never appear in these.

// AuthorView is the public shape of an author.
type AuthorView struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	UserName string `json:"userName"`
}

// AuthorCreatedView is the author-creation response. The wire contract
// keys the identifier "_id" here and nowhere else.
type AuthorCreatedView struct {
	ID       int    `json:"_id"`
	Name     string `json:"name"`
	UserName string `json:"userName"`
}

// PostListItem is a post as it appears in list responses, without its
// comments.
type PostListItem struct {
	ID      int    `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
	Title   string `json:"title"`
}

// PostView is the full public shape of a post, including the embedded
// comment list.
type PostView struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Author   string    `json:"author"`
	Comments []Comment `json:"comments"`
}

// PostUpdatedView is the field-selected response to a post update.
type PostUpdatedView struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewAuthorView maps an author through its serialization view.
func NewAuthorView(a *Author) AuthorView {
	return AuthorView{
		ID:       a.ID,
		Name:     FullName(a),
		UserName: a.UserName,
	}
}

// NewAuthorCreatedView maps a freshly created author through the
// creation response shape.
func NewAuthorCreatedView(a *Author) AuthorCreatedView {
	return AuthorCreatedView{
		ID:       a.ID,
		Name:     FullName(a),
		UserName: a.UserName,
	}
}

// NewPostListItem maps a post and its resolved author through the list
// item shape.
func NewPostListItem(p *Post, author *Author) PostListItem {
	return PostListItem{
		ID:      p.ID,
		Author:  FullName(author),
		Content: p.Content,
		Title:   p.Title,
	}
}

// NewPostView maps a post and its resolved author through the full
// serialization view. The comment list is never null in the payload.
func NewPostView(p *Post, author *Author) PostView {
	comments := p.Comments
	if comments == nil {
		comments = []Comment{}
	}
	return PostView{
		ID:       p.ID,
		Title:    p.Title,
		Content:  p.Content,
		Author:   FullName(author),
		Comments: comments,
	}
}

// NewPostUpdatedView maps an updated post through the update response
// shape.
func NewPostUpdatedView(p *Post) PostUpdatedView {
	return PostUpdatedView{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
	}
}
