package models

// Author represents a registered writer.
type Author struct {
	ID        int    `json:"id" validate:"gte=0"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	UserName  string `json:"userName" validate:"required"`
}

// Post represents a blog post referencing its author by ID.
// Comments live inside the post document; they have no identity of
// their own.
type Post struct {
	ID       int       `json:"id" validate:"gte=0"`
	Title    string    `json:"title" validate:"required"`
	Content  string    `json:"content" validate:"required"`
	AuthorID int       `json:"author_id" validate:"required,gte=0"`
	Comments []Comment `json:"comments" validate:"-"`
}

// Comment is a content-only value owned by exactly one post.
type Comment struct {
	Content string `json:"content"`
}
