package bookshelf

import (
	"context"
	"testing"
)

func newGetTest(ctx context.Context, store *Store) func(t *testing.T) {
	return func(t *testing.T) {
		defer deleteAll(ctx, t, store)

		expected := Book{Title: "Dune", Author: "Herbert", Rating: 9}
		mustAdd(ctx, t, store, expected)
		id := mustFindByTitle(ctx, t, store, "Dune").ID

		t.Run("Can get a book by id", func(t *testing.T) {
			actual, ok, err := store.Get(ctx, id)
			if err != nil {
				t.Errorf("unexpected error getting book: %v", err)
			}
			if !ok {
				t.Error("expected book to be found")
			}
			if actual.ID != id {
				t.Errorf("expected id %d, got %d", id, actual.ID)
			}
			if !bookIsEqualIgnoringID(expected, actual) {
				t.Errorf("expected %#v, got %#v", expected, actual)
			}
		})
		t.Run("Returns ok=false if the book does not exist", func(t *testing.T) {
			_, ok, err := store.Get(ctx, id+1000)
			if err != nil {
				t.Errorf("unexpected error getting book: %v", err)
			}
			if ok {
				t.Error("expected book not to be found")
			}
		})
	}
}
