package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Suiper34/virtual-bookshelf-web/forms"
)

type AddCommand struct {
	Title  string `arg:"" help:"The title of the book." required:""`
	Author string `arg:"" help:"The author of the book." required:""`
	Rating string `arg:"" help:"A rating from 0 to 10." required:""`
}

func (c *AddCommand) Run(ctx context.Context, g GlobalFlags) error {
	form := forms.AddBook{
		Title:  c.Title,
		Author: c.Author,
		Rating: c.Rating,
	}
	if errs := form.Validate(); errs.Any() {
		return formError(errs)
	}

	store, closer, err := g.Store(ctx)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer closer()

	return store.Add(ctx, form.Book())
}

func formError(errs forms.Errors) error {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	msgs := make([]string, len(fields))
	for i, field := range fields {
		msgs[i] = fmt.Sprintf("%s: %s", field, errs[field])
	}
	return fmt.Errorf("invalid book: %s", strings.Join(msgs, " "))
}
