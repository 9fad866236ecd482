package bookshelf

import (
	"context"
	"fmt"

	"github.com/Suiper34/virtual-bookshelf-web/db"
	"github.com/Suiper34/virtual-bookshelf-web/db/stmts"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

func NewSqlite(pool *sqlitex.Pool) *Sqlite {
	return &Sqlite{
		pool: pool,
	}
}

type Sqlite struct {
	pool *sqlitex.Pool
}

func (s *Sqlite) isDB() db.DB { return s }

func (s *Sqlite) Query(ctx context.Context, queries ...db.Query) (outputs [][]db.Book, err error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	outputs = make([][]db.Book, len(queries))
	for i, q := range queries {
		opts := &sqlitex.ExecOptions{
			Named: q.Args,
			ResultFunc: func(stmt *sqlite.Stmt) (err error) {
				outputs[i] = append(outputs[i], db.Book{
					ID:     stmt.GetInt64("id"),
					Title:  stmt.GetText("title"),
					Author: stmt.GetText("author"),
					Rating: stmt.GetFloat("rating"),
				})
				return nil
			},
		}
		if err = sqlitex.Execute(conn, q.SQL, opts); err != nil {
			return outputs, fmt.Errorf("query: error in query index %d: %w", i, err)
		}
	}

	return outputs, nil
}

func (s *Sqlite) Mutate(ctx context.Context, mutations ...db.Mutation) (rowsAffected []int64, err error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	// The savepoint is rolled back if err is non-nil when the function returns.
	defer sqlitex.Save(conn)(&err)

	rowsAffected = make([]int64, len(mutations))
	for i, m := range mutations {
		opts := &sqlitex.ExecOptions{
			Named: m.Args,
		}
		if err = sqlitex.Execute(conn, m.SQL, opts); err != nil {
			return rowsAffected, fmt.Errorf("mutate: error in mutation index %d: %w", i, sqliteError(err))
		}
		rowsAffected[i] = int64(conn.Changes())
		if m.MustAffectRows && rowsAffected[i] == 0 {
			return rowsAffected, fmt.Errorf("mutate: error in mutation index %d: %w", i, db.ErrNoRowsAffected)
		}
	}

	return rowsAffected, nil
}

func sqliteError(err error) error {
	switch sqlite.ErrCode(err) {
	case sqlite.ResultConstraintUnique, sqlite.ResultConstraintPrimaryKey:
		return fmt.Errorf("%w: %w", db.ErrUniqueViolation, err)
	case sqlite.ResultConstraintCheck, sqlite.ResultConstraintNotNull:
		return fmt.Errorf("%w: %w", db.ErrCheckViolation, err)
	}
	return err
}

func (s *Sqlite) QueryScalarInt64(ctx context.Context, sql string, params map[string]any) (v int64, err error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return 0, err
	}
	defer s.pool.Put(conn)

	opts := &sqlitex.ExecOptions{
		Named: params,
		ResultFunc: func(stmt *sqlite.Stmt) (err error) {
			if stmt.ColumnType(0) != sqlite.TypeInteger {
				return fmt.Errorf("expected integer, got %s", stmt.ColumnType(0).String())
			}
			v = stmt.ColumnInt64(0)
			return nil
		},
	}
	if err := sqlitex.Execute(conn, sql, opts); err != nil {
		return 0, err
	}
	return v, nil
}

func (s *Sqlite) Statements() db.StatementSet {
	return stmts.SQLite{}
}
