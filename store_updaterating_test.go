package bookshelf

import (
	"context"
	"errors"
	"testing"
)

func newUpdateRatingTest(ctx context.Context, store *Store) func(t *testing.T) {
	return func(t *testing.T) {
		t.Run("Only the rating of the matching book is changed", func(t *testing.T) {
			defer deleteAll(ctx, t, store)

			mustAdd(ctx, t, store,
				Book{Title: "Dune", Author: "Herbert", Rating: 9},
				Book{Title: "Foundation", Author: "Asimov", Rating: 8.5},
			)
			dune := mustFindByTitle(ctx, t, store, "Dune")

			if err := store.UpdateRating(ctx, dune.ID, 7.5); err != nil {
				t.Fatalf("unexpected error updating rating: %v", err)
			}

			actual, ok, err := store.Get(ctx, dune.ID)
			if err != nil || !ok {
				t.Fatalf("expected book to be found, ok=%v, err=%v", ok, err)
			}
			expected := Book{ID: dune.ID, Title: "Dune", Author: "Herbert", Rating: 7.5}
			if actual != expected {
				t.Errorf("expected %#v, got %#v", expected, actual)
			}
			foundation := mustFindByTitle(ctx, t, store, "Foundation")
			if foundation.Rating != 8.5 {
				t.Errorf("expected other book to keep rating 8.5, got %v", foundation.Rating)
			}
		})
		t.Run("Updating a book that does not exist returns ErrNotFound", func(t *testing.T) {
			defer deleteAll(ctx, t, store)

			mustAdd(ctx, t, store, Book{Title: "Dune", Author: "Herbert", Rating: 9})
			dune := mustFindByTitle(ctx, t, store, "Dune")

			err := store.UpdateRating(ctx, dune.ID+1000, 1)
			var notFound ErrNotFound
			if !errors.As(err, &notFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
			if notFound.ID != dune.ID+1000 {
				t.Errorf("expected id %d in error, got %d", dune.ID+1000, notFound.ID)
			}
			unchanged := mustFindByTitle(ctx, t, store, "Dune")
			if unchanged.Rating != 9 {
				t.Errorf("expected rating to be unchanged, got %v", unchanged.Rating)
			}
		})
		t.Run("Ratings outside of 0-10 are rejected by the database", func(t *testing.T) {
			defer deleteAll(ctx, t, store)

			mustAdd(ctx, t, store, Book{Title: "Dune", Author: "Herbert", Rating: 9})
			dune := mustFindByTitle(ctx, t, store, "Dune")

			if err := store.UpdateRating(ctx, dune.ID, -1); !errors.Is(err, ErrInvalidBook) {
				t.Errorf("expected ErrInvalidBook, got %v", err)
			}
			unchanged := mustFindByTitle(ctx, t, store, "Dune")
			if unchanged.Rating != 9 {
				t.Errorf("expected rating to be unchanged, got %v", unchanged.Rating)
			}
		})
	}
}
