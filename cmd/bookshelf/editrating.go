package main

import (
	"context"
	"fmt"

	"github.com/Suiper34/virtual-bookshelf-web/forms"
)

type EditRatingCommand struct {
	ID     int64  `arg:"" help:"The id of the book." required:""`
	Rating string `arg:"" help:"The new rating, from 0 to 10." required:""`
}

func (c *EditRatingCommand) Run(ctx context.Context, g GlobalFlags) error {
	form := forms.EditRating{Rating: c.Rating}
	if errs := form.Validate(); errs.Any() {
		return formError(errs)
	}

	store, closer, err := g.Store(ctx)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer closer()

	return store.UpdateRating(ctx, c.ID, form.Value())
}
