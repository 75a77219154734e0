package repositories

import "inkwell/app/models"

// AuthorRepository defines the interface for author data access
type AuthorRepository interface {
	Create(author *models.Author) error
	GetByID(id int) (*models.Author, error)
	List() ([]*models.Author, error)
	Update(author *models.Author) error
	// Delete removes an author; deleting an absent id is not an error.
	Delete(id int) error
	// FindByUserName returns the author holding userName, skipping the
	// record with excludeID. ErrNotFound means the name is free.
	FindByUserName(userName string, excludeID int) (*models.Author, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	// Delete removes a post; deleting an absent id is not an error.
	Delete(id int) error
	ListByAuthor(authorID int) ([]*models.Post, error)
	// DeleteByAuthor removes every post referencing authorID.
	DeleteByAuthor(authorID int) error
}
