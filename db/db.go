package db

import (
	"context"
	"errors"
)

// Book is the row stored in the books table.
type Book struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
}

type DB interface {
	// Query runs queries against the store. Each query must select the id, title, author and rating columns.
	Query(ctx context.Context, queries ...Query) (output [][]Book, err error)
	// Mutate runs mutations against the store within a single transaction.
	// If any mutation fails, none of them are applied.
	Mutate(ctx context.Context, mutations ...Mutation) (rowsAffected []int64, err error)
	QueryScalarInt64(ctx context.Context, query string, args map[string]any) (n int64, err error)
	// Statements returns the SQL dialect used by the store.
	Statements() StatementSet
}

type Query struct {
	SQL  string
	Args map[string]any
}

type Mutation struct {
	SQL  string
	Args map[string]any
	// MustAffectRows causes the mutation to fail with ErrNoRowsAffected if no rows were changed.
	MustAffectRows bool
}

var (
	ErrNoRowsAffected  = errors.New("no rows affected")
	ErrUniqueViolation = errors.New("unique constraint violation")
	ErrCheckViolation  = errors.New("check constraint violation")
)
