package bookshelf

import (
	"context"
	"errors"
	"testing"
)

func newDeleteTest(ctx context.Context, store *Store) func(t *testing.T) {
	return func(t *testing.T) {
		defer deleteAll(ctx, t, store)

		t.Run("Can delete", func(t *testing.T) {
			mustAdd(ctx, t, store, Book{Title: "Dune", Author: "Herbert", Rating: 9})
			dune := mustFindByTitle(ctx, t, store, "Dune")

			if err := store.Delete(ctx, dune.ID); err != nil {
				t.Errorf("unexpected error deleting book: %v", err)
			}

			_, ok, err := store.Get(ctx, dune.ID)
			if err != nil {
				t.Errorf("unexpected error getting book: %v", err)
			}
			if ok {
				t.Error("expected book to be deleted")
			}

			t.Run("Deleting it again returns ErrNotFound", func(t *testing.T) {
				err := store.Delete(ctx, dune.ID)
				var notFound ErrNotFound
				if !errors.As(err, &notFound) {
					t.Errorf("expected ErrNotFound, got %v", err)
				}
			})
		})
		t.Run("Ids are not reused after deletion", func(t *testing.T) {
			defer deleteAll(ctx, t, store)

			mustAdd(ctx, t, store, Book{Title: "First", Author: "Author", Rating: 1})
			first := mustFindByTitle(ctx, t, store, "First")
			if err := store.Delete(ctx, first.ID); err != nil {
				t.Fatalf("unexpected error deleting book: %v", err)
			}

			mustAdd(ctx, t, store, Book{Title: "Second", Author: "Author", Rating: 2})
			second := mustFindByTitle(ctx, t, store, "Second")
			if second.ID <= first.ID {
				t.Errorf("expected new id to be greater than %d, got %d", first.ID, second.ID)
			}
		})
		t.Run("Deleting a book that never existed leaves other books alone", func(t *testing.T) {
			defer deleteAll(ctx, t, store)

			mustAdd(ctx, t, store, Book{Title: "Dune", Author: "Herbert", Rating: 9})
			dune := mustFindByTitle(ctx, t, store, "Dune")

			err := store.Delete(ctx, dune.ID+1000)
			var notFound ErrNotFound
			if !errors.As(err, &notFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
			count, err := store.Count(ctx)
			if err != nil {
				t.Errorf("unexpected error counting books: %v", err)
			}
			if count != 1 {
				t.Errorf("expected 1 book, got %d", count)
			}
		})
	}
}
