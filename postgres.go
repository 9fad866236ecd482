package bookshelf

import (
	"context"
	"errors"
	"fmt"

	"github.com/Suiper34/virtual-bookshelf-web/db"
	"github.com/Suiper34/virtual-bookshelf-web/db/stmts"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres SQLSTATE codes mapped onto db errors.
const (
	pgUniqueViolation           = "23505"
	pgCheckViolation            = "23514"
	pgNotNullViolation          = "23502"
	pgStringDataRightTruncation = "22001"
)

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{
		pool: pool,
	}
}

type Postgres struct {
	pool *pgxpool.Pool
}

func (pg *Postgres) isDB() db.DB { return pg }

func (pg *Postgres) Query(ctx context.Context, queries ...db.Query) (outputs [][]db.Book, err error) {
	outputs = make([][]db.Book, len(queries))
	for i, q := range queries {
		rows, err := pg.pool.Query(ctx, q.SQL, pgx.NamedArgs(q.Args))
		if err != nil {
			return outputs, fmt.Errorf("query: error in query index %d: %w", i, err)
		}
		for rows.Next() {
			var b db.Book
			if err = rows.Scan(&b.ID, &b.Title, &b.Author, &b.Rating); err != nil {
				rows.Close()
				return outputs, fmt.Errorf("query: error scanning row: %w", err)
			}
			outputs[i] = append(outputs[i], b)
		}
		rows.Close()
		if err = rows.Err(); err != nil {
			return outputs, fmt.Errorf("query: error in query index %d: %w", i, err)
		}
	}
	return outputs, nil
}

func (pg *Postgres) Mutate(ctx context.Context, mutations ...db.Mutation) (rowsAffected []int64, err error) {
	rowsAffected = make([]int64, len(mutations))
	err = pgx.BeginFunc(ctx, pg.pool, func(tx pgx.Tx) error {
		for i, m := range mutations {
			res, err := tx.Exec(ctx, m.SQL, pgx.NamedArgs(m.Args))
			if err != nil {
				return fmt.Errorf("mutate: error in mutation index %d: %w", i, postgresError(err))
			}
			rowsAffected[i] = res.RowsAffected()
			if m.MustAffectRows && rowsAffected[i] == 0 {
				return fmt.Errorf("mutate: error in mutation index %d: %w", i, db.ErrNoRowsAffected)
			}
		}
		return nil
	})
	return rowsAffected, err
}

func postgresError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %w", db.ErrUniqueViolation, err)
	case pgCheckViolation, pgNotNullViolation, pgStringDataRightTruncation:
		return fmt.Errorf("%w: %w", db.ErrCheckViolation, err)
	}
	return err
}

func (pg *Postgres) QueryScalarInt64(ctx context.Context, query string, args map[string]any) (n int64, err error) {
	row := pg.pool.QueryRow(ctx, query, pgx.NamedArgs(args))
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("query: error scanning row: %w", err)
	}
	return n, nil
}

func (pg *Postgres) Statements() db.StatementSet {
	return stmts.Postgres{}
}
