package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

var (
	// ErrAuthorNotFound signals that a post's author reference does not
	// resolve to an existing author.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrInvalidPayload signals that submitted data failed a schema
	// constraint; handlers report it as a client fault.
	ErrInvalidPayload = errors.New("invalid payload")
)

// postUpdatableFields is the whitelist of fields a post update may
// touch. The author reference is immutable after creation.
var postUpdatableFields = []string{"title", "content"}

// PostService handles business logic for blog posts
type PostService struct {
	postRepo   repositories.PostRepository
	authorRepo repositories.AuthorRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, authorRepo repositories.AuthorRepository) *PostService {
	return &PostService{
		postRepo:   postRepo,
		authorRepo: authorRepo,
	}
}

// PostWithAuthor pairs a post with its resolved author. Author is nil
// when the reference dangles.
type PostWithAuthor struct {
	Post   *models.Post
	Author *models.Author
}

// CreatePost creates a new blog post after resolving its author
// reference. It returns the resolved author so callers can shape the
// response without a second lookup.
func (s *PostService) CreatePost(post *models.Post) (*models.Author, error) {
	author, err := s.authorRepo.GetByID(post.AuthorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return author, nil
}

// GetPost retrieves a post by ID with its author resolved
func (s *PostService) GetPost(id int) (*PostWithAuthor, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	// Resolve the author reference after the primary query. A dangling
	// reference is not an error here.
	author, err := s.authorRepo.GetByID(post.AuthorID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve author: %w", err)
	}

	return &PostWithAuthor{Post: post, Author: author}, nil
}

// ListPosts retrieves all posts with their authors resolved
func (s *PostService) ListPosts() ([]*PostWithAuthor, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	result := make([]*PostWithAuthor, 0, len(posts))
	for _, post := range posts {
		author, err := s.authorRepo.GetByID(post.AuthorID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve author for post %d: %w", post.ID, err)
		}
		result = append(result, &PostWithAuthor{Post: post, Author: author})
	}

	return result, nil
}

// UpdatePost applies the whitelisted fields from the submitted payload
// to an existing post. Fields outside the whitelist are silently
// ignored.
func (s *PostService) UpdatePost(id int, fields map[string]json.RawMessage) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	for _, field := range postUpdatableFields {
		raw, ok := fields[field]
		if !ok {
			continue
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, fmt.Errorf("%w: bad %s", ErrInvalidPayload, field)
		}
		switch field {
		case "title":
			post.Title = value
		case "content":
			post.Content = value
		}
	}

	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost deletes a post. Deleting an id that no longer exists is a
// success.
func (s *PostService) DeletePost(id int) error {
	return s.postRepo.Delete(id)
}
