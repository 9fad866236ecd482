package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

type ListCommand struct {
}

func (c *ListCommand) Run(ctx context.Context, g GlobalFlags) error {
	store, closer, err := g.Store(ctx)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer closer()

	books, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(books)
}
