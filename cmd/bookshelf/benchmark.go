package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	bookshelf "github.com/Suiper34/virtual-bookshelf-web"
)

type BenchmarkCommand struct {
	N int `name:"number" short:"n" help:"Number of books to add, then get." default:"10000"`
	W int `name:"workers" short:"w" help:"Number of workers to use." default:"100"`
}

func (c *BenchmarkCommand) Run(ctx context.Context, g GlobalFlags) error {
	store, closer, err := g.Store(ctx)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer closer()
	if err := store.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	// Titles are unique, so prefix them with the start time to allow repeated runs.
	prefix := fmt.Sprintf("benchmark-%d", time.Now().UnixNano())

	fmt.Printf("Adding %d books with %d workers...\n", c.N, c.W)
	adds := make(chan int, c.W)
	go func() {
		for i := 0; i < c.N; i++ {
			adds <- i
		}
		close(adds)
	}()
	c.run("add", func() error {
		for i := range adds {
			err := store.Add(ctx, bookshelf.Book{
				Title:  fmt.Sprintf("%s-%d", prefix, i),
				Author: "Benchmark",
				Rating: float64(i % 11),
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	books, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}
	if len(books) == 0 {
		return nil
	}

	fmt.Printf("Getting %d books with %d workers...\n", c.N, c.W)
	gets := make(chan int64, c.W)
	go func() {
		for i := 0; i < c.N; i++ {
			gets <- books[rand.IntN(len(books))].ID
		}
		close(gets)
	}()
	c.run("get", func() error {
		for id := range gets {
			if _, _, err := store.Get(ctx, id); err != nil {
				return err
			}
		}
		return nil
	})

	return nil
}

func (c *BenchmarkCommand) run(name string, worker func() error) {
	var wg sync.WaitGroup
	start := time.Now()
	for i := 0; i < c.W; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := worker(); err != nil {
				fmt.Printf("%s error: %v\n", name, err)
			}
		}()
	}
	wg.Wait()
	timeTaken := time.Since(start)
	opsPerSecond := float64(c.N) / timeTaken.Seconds()
	fmt.Printf("Complete, in %v, %v ops per second\n", timeTaken, opsPerSecond)
}
