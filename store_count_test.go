package bookshelf

import (
	"context"
	"testing"
)

func newCountTest(ctx context.Context, store *Store) func(t *testing.T) {
	return func(t *testing.T) {
		defer deleteAll(ctx, t, store)

		t.Run("Can count books", func(t *testing.T) {
			mustAdd(ctx, t, store,
				Book{Title: "Dune", Author: "Herbert", Rating: 9},
				Book{Title: "Foundation", Author: "Asimov", Rating: 8.5},
				Book{Title: "Neuromancer", Author: "Gibson", Rating: 7.5},
			)

			count, err := store.Count(ctx)
			if err != nil {
				t.Errorf("unexpected error counting books: %v", err)
			}
			if count != 3 {
				t.Errorf("expected 3 books, got %d", count)
			}
		})
	}
}
