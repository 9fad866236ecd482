package main

import (
	"context"
	"fmt"
)

type InitCommand struct {
}

func (c *InitCommand) Run(ctx context.Context, g GlobalFlags) error {
	store, closer, err := g.Store(ctx)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer closer()

	return store.Init(ctx)
}
