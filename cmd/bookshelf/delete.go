package main

import (
	"context"
	"fmt"
)

type DeleteCommand struct {
	ID int64 `arg:"" help:"The id of the book to delete." required:""`
}

func (c *DeleteCommand) Run(ctx context.Context, g GlobalFlags) error {
	store, closer, err := g.Store(ctx)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer closer()

	return store.Delete(ctx, c.ID)
}
