package bookshelf

import (
	"context"
	"testing"
)

func bookSliceIsEqual(a, b []Book) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !bookIsEqualIgnoringID(a[i], b[i]) {
			return false
		}
	}
	return true
}

func bookIsEqualIgnoringID(a, b Book) bool {
	return a.Title == b.Title && a.Author == b.Author && a.Rating == b.Rating
}

func deleteAll(ctx context.Context, t *testing.T, store *Store) {
	t.Helper()
	books, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error listing books: %v", err)
	}
	for _, b := range books {
		if err := store.Delete(ctx, b.ID); err != nil {
			t.Fatalf("unexpected error deleting book %d: %v", b.ID, err)
		}
	}
}

func mustAdd(ctx context.Context, t *testing.T, store *Store, books ...Book) {
	t.Helper()
	for _, b := range books {
		if err := store.Add(ctx, b); err != nil {
			t.Fatalf("unexpected error adding %q: %v", b.Title, err)
		}
	}
}

func mustFindByTitle(ctx context.Context, t *testing.T, store *Store, title string) Book {
	t.Helper()
	books, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error listing books: %v", err)
	}
	for _, b := range books {
		if b.Title == title {
			return b
		}
	}
	t.Fatalf("expected to find book %q", title)
	return Book{}
}

func runStoreTests(t *testing.T, store *Store) {
	ctx := context.Background()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("unexpected error initializing store: %v", err)
	}
	if err := store.Init(ctx); err != nil {
		t.Fatalf("unexpected error initializing store a second time: %v", err)
	}
	if err := store.Ping(ctx); err != nil {
		t.Fatalf("unexpected error pinging store: %v", err)
	}

	// Clear the data before running the tests.
	deleteAll(ctx, t, store)

	t.Run("List", newListTest(ctx, store))
	t.Run("Get", newGetTest(ctx, store))
	t.Run("Add", newAddTest(ctx, store))
	t.Run("UpdateRating", newUpdateRatingTest(ctx, store))
	t.Run("Delete", newDeleteTest(ctx, store))
	t.Run("Count", newCountTest(ctx, store))
	t.Run("Scenario", newScenarioTest(ctx, store))

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("unexpected error counting data after tests: %v", err)
	}
	if count > 0 {
		t.Fatalf("expected all data to be deleted after tests, got %d items", count)
	}
}
