package bookshelf

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Suiper34/virtual-bookshelf-web/db"
	"github.com/Suiper34/virtual-bookshelf-web/db/stmts"
	rqlitehttp "github.com/rqlite/rqlite-go-http"
)

func NewRqlite(client *rqlitehttp.Client) *Rqlite {
	return &Rqlite{
		client:          client,
		timeout:         time.Second * 30,
		readConsistency: rqlitehttp.ReadConsistencyLevelWeak,
	}
}

type Rqlite struct {
	client          *rqlitehttp.Client
	timeout         time.Duration
	readConsistency rqlitehttp.ReadConsistencyLevel
}

func (rq *Rqlite) isDB() db.DB { return rq }

// rqlite expects named parameters without the leading colon used by the SQLite statements.
func rqliteParams(args map[string]any) map[string]any {
	if len(args) == 0 {
		return nil
	}
	params := make(map[string]any, len(args))
	for k, v := range args {
		params[strings.TrimPrefix(k, ":")] = v
	}
	return params
}

func (rq *Rqlite) Query(ctx context.Context, queries ...db.Query) (outputs [][]db.Book, err error) {
	statements := make(rqlitehttp.SQLStatements, len(queries))
	for i, q := range queries {
		statements[i] = rqlitehttp.SQLStatement{
			SQL:         q.SQL,
			NamedParams: rqliteParams(q.Args),
		}
	}
	opts := &rqlitehttp.QueryOptions{
		Timeout: rq.timeout,
		Level:   rq.readConsistency,
	}
	qr, err := rq.client.Query(ctx, statements, opts)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(qr.Results) != len(queries) {
		return nil, fmt.Errorf("query: expected %d results, got %d", len(queries), len(qr.Results))
	}
	outputs = make([][]db.Book, len(queries))
	for i, result := range qr.Results {
		if result.Error != "" {
			return outputs, fmt.Errorf("query: error in query index %d: %s", i, result.Error)
		}
		if err = checkResultColumns(result); err != nil {
			return outputs, fmt.Errorf("query: error in query index %d: %w", i, err)
		}
		for _, values := range result.Values {
			b, err := newBookFromValues(values)
			if err != nil {
				return outputs, fmt.Errorf("query: error in query index %d: %w", i, err)
			}
			outputs[i] = append(outputs[i], b)
		}
	}
	return outputs, nil
}

func (rq *Rqlite) Mutate(ctx context.Context, mutations ...db.Mutation) (rowsAffected []int64, err error) {
	statements := make(rqlitehttp.SQLStatements, len(mutations))
	for i, m := range mutations {
		statements[i] = rqlitehttp.SQLStatement{
			SQL:         m.SQL,
			NamedParams: rqliteParams(m.Args),
		}
	}
	opts := &rqlitehttp.ExecuteOptions{
		Transaction: true,
		Wait:        true,
		Timeout:     rq.timeout,
	}
	qr, err := rq.client.Execute(ctx, statements, opts)
	if err != nil {
		return nil, fmt.Errorf("mutate: %w", err)
	}
	if len(qr.Results) != len(mutations) {
		// In a transaction, rqlite stops at the first failing statement.
		for i, result := range qr.Results {
			if result.Error != "" {
				return nil, fmt.Errorf("mutate: error in mutation index %d: %w", i, rqliteError(result.Error))
			}
		}
		return nil, fmt.Errorf("mutate: expected %d results, got %d", len(mutations), len(qr.Results))
	}
	rowsAffected = make([]int64, len(mutations))
	for i, result := range qr.Results {
		if result.Error != "" {
			return rowsAffected, fmt.Errorf("mutate: error in mutation index %d: %w", i, rqliteError(result.Error))
		}
		rowsAffected[i] = result.RowsAffected
		if mutations[i].MustAffectRows && rowsAffected[i] == 0 {
			return rowsAffected, fmt.Errorf("mutate: error in mutation index %d: %w", i, db.ErrNoRowsAffected)
		}
	}
	return rowsAffected, nil
}

func rqliteError(msg string) error {
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %s", db.ErrUniqueViolation, msg)
	case strings.Contains(msg, "CHECK constraint failed"), strings.Contains(msg, "NOT NULL constraint failed"):
		return fmt.Errorf("%w: %s", db.ErrCheckViolation, msg)
	}
	return errors.New(msg)
}

func (rq *Rqlite) QueryScalarInt64(ctx context.Context, sql string, args map[string]any) (n int64, err error) {
	q := rqlitehttp.SQLStatement{
		SQL:         sql,
		NamedParams: rqliteParams(args),
	}
	opts := &rqlitehttp.QueryOptions{
		Timeout: rq.timeout,
		Level:   rq.readConsistency,
	}
	qr, err := rq.client.Query(ctx, rqlitehttp.SQLStatements{q}, opts)
	if err != nil {
		return 0, err
	}
	if len(qr.Results) != 1 {
		return 0, fmt.Errorf("scalar: expected 1 result, got %d", len(qr.Results))
	}
	if qr.Results[0].Error != "" {
		return 0, fmt.Errorf("scalar: %s", qr.Results[0].Error)
	}
	if len(qr.Results[0].Values) != 1 {
		return 0, fmt.Errorf("scalar: expected 1 row, got %d", len(qr.Results[0].Values))
	}
	if len(qr.Results[0].Values[0]) != 1 {
		return 0, fmt.Errorf("scalar: expected 1 column, got %d", len(qr.Results[0].Values[0]))
	}
	return tryGetInt64(qr.Results[0].Values[0][0])
}

func (rq *Rqlite) Statements() db.StatementSet {
	return stmts.SQLite{}
}

func checkResultColumns(result rqlitehttp.QueryResult) (err error) {
	if len(result.Columns) != 4 {
		return fmt.Errorf("book: expected 4 columns, got %d", len(result.Columns))
	}
	if result.Columns[0] != "id" || result.Columns[1] != "title" || result.Columns[2] != "author" || result.Columns[3] != "rating" {
		return fmt.Errorf("book: expected id, title, author and rating columns not found, got: %#v", result.Columns)
	}
	return nil
}

func newBookFromValues(values []any) (b db.Book, err error) {
	if len(values) != 4 {
		return b, fmt.Errorf("book: expected 4 columns, got %d", len(values))
	}
	if b.ID, err = tryGetInt64(values[0]); err != nil {
		return b, fmt.Errorf("book: id: %w", err)
	}
	var ok bool
	if b.Title, ok = values[1].(string); !ok {
		return b, fmt.Errorf("book: title: expected string, got %T", values[1])
	}
	if b.Author, ok = values[2].(string); !ok {
		return b, fmt.Errorf("book: author: expected string, got %T", values[2])
	}
	if b.Rating, ok = values[3].(float64); !ok {
		return b, fmt.Errorf("book: rating: expected float64, got %T", values[3])
	}
	return b, nil
}

// JSON numbers are decoded as float64.
func tryGetInt64(v any) (int64, error) {
	floatValue, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("expected float64, got %T", v)
	}
	return int64(floatValue), nil
}
