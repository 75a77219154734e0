package models

import "errors"

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	return validate.Struct(p)
}

// AddComment appends a comment to the post's embedded comment list.
func (p *Post) AddComment(comment Comment) error {
	if comment.Content == "" {
		return errors.New("comment content cannot be empty")
	}
	p.Comments = append(p.Comments, comment)
	return nil
}
