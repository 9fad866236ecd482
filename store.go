package bookshelf

import (
	"context"
	"errors"
	"fmt"

	"github.com/Suiper34/virtual-bookshelf-web/db"
)

func NewStore(db db.DB) *Store {
	return &Store{
		db: db,
	}
}

// Store is the catalogue of books, backed by any of the supported databases.
type Store struct {
	db db.DB
}

// Init creates the books table if it doesn't exist.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.Mutate(ctx, s.db.Statements().Init()...); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	return nil
}

// Ping checks that the database can be reached.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.db.QueryScalarInt64(ctx, "select 1;", nil); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// List returns every book, ordered by title using the database's default collation.
func (s *Store) List(ctx context.Context) (books []Book, err error) {
	outputs, err := s.db.Query(ctx, s.db.Statements().List())
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return booksOf(outputs[0]), nil
}

// Get gets a book by id. If the book does not exist, it returns ok=false.
func (s *Store) Get(ctx context.Context, id int64) (b Book, ok bool, err error) {
	outputs, err := s.db.Query(ctx, s.db.Statements().Get(id))
	if err != nil {
		return Book{}, false, fmt.Errorf("get: %w", err)
	}
	rows := outputs[0]
	if len(rows) == 0 {
		return Book{}, false, nil
	}
	if len(rows) > 1 {
		return Book{}, false, fmt.Errorf("get: multiple books found for id %d", id)
	}
	return Book(rows[0]), true, nil
}

// Add inserts a new book. The id of b is ignored, the database assigns one.
//
// If a book with the same title already exists, ErrDuplicateTitle is returned.
func (s *Store) Add(ctx context.Context, b Book) (err error) {
	_, err = s.db.Mutate(ctx, s.db.Statements().Insert(b.Title, b.Author, b.Rating))
	switch {
	case errors.Is(err, db.ErrUniqueViolation):
		return newErrDuplicateTitle(b.Title)
	case errors.Is(err, db.ErrCheckViolation):
		return fmt.Errorf("add: %w: %w", ErrInvalidBook, err)
	case err != nil:
		return fmt.Errorf("add: %w", err)
	}
	return nil
}

// UpdateRating sets the rating of an existing book. Title and author are never changed.
//
// If the book does not exist, ErrNotFound is returned.
func (s *Store) UpdateRating(ctx context.Context, id int64, rating float64) (err error) {
	_, err = s.db.Mutate(ctx, s.db.Statements().UpdateRating(id, rating))
	switch {
	case errors.Is(err, db.ErrNoRowsAffected):
		return newErrNotFound(id)
	case errors.Is(err, db.ErrCheckViolation):
		return fmt.Errorf("update rating: %w: %w", ErrInvalidBook, err)
	case err != nil:
		return fmt.Errorf("update rating: %w", err)
	}
	return nil
}

// Delete permanently removes a book. If the book does not exist, ErrNotFound is returned.
func (s *Store) Delete(ctx context.Context, id int64) (err error) {
	_, err = s.db.Mutate(ctx, s.db.Statements().Delete(id))
	if errors.Is(err, db.ErrNoRowsAffected) {
		return newErrNotFound(id)
	}
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

// Count returns the number of books in the store.
func (s *Store) Count(ctx context.Context) (count int64, err error) {
	q := s.db.Statements().Count()
	count, err = s.db.QueryScalarInt64(ctx, q.SQL, q.Args)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return count, nil
}
