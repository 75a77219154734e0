package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

var (
	// ErrUserNameTaken signals that another author already holds the
	// candidate user name.
	ErrUserNameTaken = errors.New("user name already taken")
)

// authorUpdatableFields is the whitelist of fields an author update may
// touch.
var authorUpdatableFields = []string{"firstName", "lastName", "userName"}

// AuthorService handles business logic for authors
type AuthorService struct {
	authorRepo repositories.AuthorRepository
	postRepo   repositories.PostRepository
}

// NewAuthorService creates a new AuthorService
func NewAuthorService(authorRepo repositories.AuthorRepository, postRepo repositories.PostRepository) *AuthorService {
	return &AuthorService{
		authorRepo: authorRepo,
		postRepo:   postRepo,
	}
}

// CreateAuthor creates a new author. User-name uniqueness is not
// checked here; the store accepts duplicates at creation time and only
// updates enforce the invariant.
func (s *AuthorService) CreateAuthor(author *models.Author) error {
	if err := author.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return s.authorRepo.Create(author)
}

// GetAuthor retrieves an author by ID
func (s *AuthorService) GetAuthor(id int) (*models.Author, error) {
	return s.authorRepo.GetByID(id)
}

// ListAuthors retrieves all authors
func (s *AuthorService) ListAuthors() ([]*models.Author, error) {
	return s.authorRepo.List()
}

// UpdateAuthor applies the whitelisted fields from the submitted
// payload to an existing author. A user-name change is rejected without
// mutating state when another author already holds the candidate name.
func (s *AuthorService) UpdateAuthor(id int, fields map[string]json.RawMessage) (*models.Author, error) {
	author, err := s.authorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if raw, ok := fields["userName"]; ok {
		var candidate string
		if err := json.Unmarshal(raw, &candidate); err != nil {
			return nil, fmt.Errorf("%w: bad userName", ErrInvalidPayload)
		}
		_, err := s.authorRepo.FindByUserName(candidate, id)
		if err == nil {
			return nil, ErrUserNameTaken
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
	}

	for _, field := range authorUpdatableFields {
		raw, ok := fields[field]
		if !ok {
			continue
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, fmt.Errorf("%w: bad %s", ErrInvalidPayload, field)
		}
		switch field {
		case "firstName":
			author.FirstName = value
		case "lastName":
			author.LastName = value
		case "userName":
			author.UserName = value
		}
	}

	if err := author.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if err := s.authorRepo.Update(author); err != nil {
		return nil, err
	}
	return author, nil
}

// DeleteAuthor deletes an author and every post referencing it. The
// posts sweep must fully complete before the author record is removed;
// a failure there aborts the whole operation.
func (s *AuthorService) DeleteAuthor(id int) error {
	if err := s.postRepo.DeleteByAuthor(id); err != nil {
		return fmt.Errorf("failed to delete posts for author %d: %w", id, err)
	}
	return s.authorRepo.Delete(id)
}
