package mock

import (
	"sync"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

type AuthorRepository struct {
	authors map[int]*models.Author
	nextID  int
	mutex   sync.RWMutex
}

type PostRepository struct {
	posts  map[int]*models.Post
	nextID int
	mutex  sync.RWMutex
}

func NewAuthorRepository() *AuthorRepository {
	return &AuthorRepository{
		authors: make(map[int]*models.Author),
		nextID:  1,
	}
}

func (m *AuthorRepository) Clear() {
	m.authors = make(map[int]*models.Author)
	m.nextID = 1
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

func (m *PostRepository) Clear() {
	m.posts = make(map[int]*models.Post)
	m.nextID = 1
}

// AuthorRepository implementation

func (m *AuthorRepository) Create(author *models.Author) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	author.ID = m.nextID
	m.nextID++
	m.authors[author.ID] = author
	return nil
}

func (m *AuthorRepository) GetByID(id int) (*models.Author, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	author, exists := m.authors[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return author, nil
}

func (m *AuthorRepository) List() ([]*models.Author, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var authors []*models.Author
	for id := 1; id <= m.nextID-1; id++ {
		if author, exists := m.authors[id]; exists {
			authors = append(authors, author)
		}
	}
	return authors, nil
}

func (m *AuthorRepository) Update(author *models.Author) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.authors[author.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.authors[author.ID] = author
	return nil
}

func (m *AuthorRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.authors, id)
	return nil
}

func (m *AuthorRepository) FindByUserName(userName string, excludeID int) (*models.Author, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, author := range m.authors {
		if author.UserName == userName && author.ID != excludeID {
			return author, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for id := 1; id <= m.nextID-1; id++ {
		if post, exists := m.posts[id]; exists {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.posts, id)
	return nil
}

func (m *PostRepository) ListByAuthor(authorID int) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for id := 1; id <= m.nextID-1; id++ {
		if post, exists := m.posts[id]; exists && post.AuthorID == authorID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (m *PostRepository) DeleteByAuthor(authorID int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for id, post := range m.posts {
		if post.AuthorID == authorID {
			delete(m.posts, id)
		}
	}
	return nil
}
