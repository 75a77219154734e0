package repositories

import (
	"fmt"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerAuthorRepository implements AuthorRepository using BadgerDB
type BadgerAuthorRepository struct {
	db *badger.DB
}

// NewBadgerAuthorRepository creates a new BadgerAuthorRepository
func NewBadgerAuthorRepository(db *badger.DB) *BadgerAuthorRepository {
	return &BadgerAuthorRepository{db: db}
}

// Create creates a new author
func (r *BadgerAuthorRepository) Create(author *models.Author) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, AuthorSeqKey)
		if err != nil {
			return err
		}
		author.ID = id

		data, err := marshalEntity(author)
		if err != nil {
			return err
		}

		key := []byte(fmt.Sprintf("%s%d", AuthorKeyPrefix, author.ID))
		return txn.Set(key, data)
	})
}

// GetByID retrieves an author by ID
func (r *BadgerAuthorRepository) GetByID(id int) (*models.Author, error) {
	var author models.Author

	err := r.db.View(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", AuthorKeyPrefix, id))
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &author)
		})
	})

	if err != nil {
		return nil, err
	}
	return &author, nil
}

// List retrieves all authors
func (r *BadgerAuthorRepository) List() ([]*models.Author, error) {
	var authors []*models.Author
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(AuthorKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var author models.Author
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &author)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal author: %v", err)
			}
			authors = append(authors, &author)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return authors, nil
}

// Update updates an existing author
func (r *BadgerAuthorRepository) Update(author *models.Author) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", AuthorKeyPrefix, author.ID))

		// Verify author exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err := marshalEntity(author)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes an author by ID. Deleting an id that no longer exists
// succeeds, matching the store's remove semantics.
func (r *BadgerAuthorRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", AuthorKeyPrefix, id))
		return txn.Delete(key)
	})
}

// FindByUserName retrieves the author holding userName, skipping the
// record with excludeID
func (r *BadgerAuthorRepository) FindByUserName(userName string, excludeID int) (*models.Author, error) {
	var match *models.Author

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(AuthorKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var author models.Author
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &author)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal author: %v", err)
			}
			if author.UserName == userName && author.ID != excludeID {
				match = &author
				return nil
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrNotFound
	}
	return match, nil
}
