package bookshelf

import (
	"context"
	"testing"
)

func newListTest(ctx context.Context, store *Store) func(t *testing.T) {
	return func(t *testing.T) {
		defer deleteAll(ctx, t, store)

		t.Run("Returns an empty list when there are no books", func(t *testing.T) {
			actual, err := store.List(ctx)
			if err != nil {
				t.Errorf("unexpected error listing books: %v", err)
			}
			if len(actual) != 0 {
				t.Errorf("expected no books, got %#v", actual)
			}
		})
		t.Run("Returns books in ascending title order regardless of insertion order", func(t *testing.T) {
			defer deleteAll(ctx, t, store)

			mustAdd(ctx, t, store,
				Book{Title: "The Left Hand of Darkness", Author: "Le Guin", Rating: 8},
				Book{Title: "Dune", Author: "Herbert", Rating: 9},
				Book{Title: "Neuromancer", Author: "Gibson", Rating: 7.5},
				Book{Title: "Foundation", Author: "Asimov", Rating: 8.5},
			)
			expected := []Book{
				{Title: "Dune", Author: "Herbert", Rating: 9},
				{Title: "Foundation", Author: "Asimov", Rating: 8.5},
				{Title: "Neuromancer", Author: "Gibson", Rating: 7.5},
				{Title: "The Left Hand of Darkness", Author: "Le Guin", Rating: 8},
			}

			actual, err := store.List(ctx)
			if err != nil {
				t.Errorf("unexpected error listing books: %v", err)
			}
			if !bookSliceIsEqual(expected, actual) {
				t.Errorf("expected %#v, got %#v", expected, actual)
			}
		})
		t.Run("Assigns a distinct id to every book", func(t *testing.T) {
			defer deleteAll(ctx, t, store)

			mustAdd(ctx, t, store,
				Book{Title: "A", Author: "Author", Rating: 1},
				Book{Title: "B", Author: "Author", Rating: 2},
				Book{Title: "C", Author: "Author", Rating: 3},
			)
			actual, err := store.List(ctx)
			if err != nil {
				t.Errorf("unexpected error listing books: %v", err)
			}
			seen := map[int64]bool{}
			for _, b := range actual {
				if seen[b.ID] {
					t.Errorf("id %d was assigned twice", b.ID)
				}
				seen[b.ID] = true
			}
		})
	}
}
