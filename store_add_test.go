package bookshelf

import (
	"context"
	"errors"
	"testing"
)

func newAddTest(ctx context.Context, store *Store) func(t *testing.T) {
	return func(t *testing.T) {
		t.Run("Can add a book", func(t *testing.T) {
			defer deleteAll(ctx, t, store)

			expected := Book{Title: "Dune", Author: "Herbert", Rating: 9}
			if err := store.Add(ctx, expected); err != nil {
				t.Errorf("unexpected error adding book: %v", err)
			}
			actual, err := store.List(ctx)
			if err != nil {
				t.Errorf("unexpected error listing books: %v", err)
			}
			if !bookSliceIsEqual([]Book{expected}, actual) {
				t.Errorf("expected %#v, got %#v", []Book{expected}, actual)
			}
		})
		t.Run("Ratings at the boundaries are accepted", func(t *testing.T) {
			defer deleteAll(ctx, t, store)

			mustAdd(ctx, t, store,
				Book{Title: "Zero", Author: "Author", Rating: 0},
				Book{Title: "Ten", Author: "Author", Rating: 10},
			)
		})
		t.Run("Adding a duplicate title returns ErrDuplicateTitle and does not write a second row", func(t *testing.T) {
			defer deleteAll(ctx, t, store)

			mustAdd(ctx, t, store, Book{Title: "Dune", Author: "Herbert", Rating: 9})

			err := store.Add(ctx, Book{Title: "Dune", Author: "Someone else", Rating: 2})
			var dupErr ErrDuplicateTitle
			if !errors.As(err, &dupErr) {
				t.Fatalf("expected ErrDuplicateTitle, got %v", err)
			}
			if dupErr.Title != "Dune" {
				t.Errorf("expected title %q in error, got %q", "Dune", dupErr.Title)
			}
			count, err := store.Count(ctx)
			if err != nil {
				t.Errorf("unexpected error counting books: %v", err)
			}
			if count != 1 {
				t.Errorf("expected 1 book, got %d", count)
			}
			b := mustFindByTitle(ctx, t, store, "Dune")
			if b.Author != "Herbert" {
				t.Errorf("expected the original book to be unchanged, got %#v", b)
			}
		})
		t.Run("Ratings outside of 0-10 are rejected by the database", func(t *testing.T) {
			defer deleteAll(ctx, t, store)

			err := store.Add(ctx, Book{Title: "Too good", Author: "Author", Rating: 10.5})
			if !errors.Is(err, ErrInvalidBook) {
				t.Errorf("expected ErrInvalidBook, got %v", err)
			}
			count, err := store.Count(ctx)
			if err != nil {
				t.Errorf("unexpected error counting books: %v", err)
			}
			if count != 0 {
				t.Errorf("expected no books, got %d", count)
			}
		})
		t.Run("Empty titles are rejected by the database", func(t *testing.T) {
			defer deleteAll(ctx, t, store)

			err := store.Add(ctx, Book{Title: "", Author: "Author", Rating: 5})
			if !errors.Is(err, ErrInvalidBook) {
				t.Errorf("expected ErrInvalidBook, got %v", err)
			}
		})
	}
}
