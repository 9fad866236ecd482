package stmts

import (
	"github.com/Suiper34/virtual-bookshelf-web/db"
)

type Postgres struct{}

func (pg Postgres) isStatementSet() db.StatementSet {
	return pg
}

func (Postgres) Init() []db.Mutation {
	return []db.Mutation{
		{
			SQL: `CREATE TABLE IF NOT EXISTS books (
    id bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    title varchar(250) NOT NULL UNIQUE CHECK (title <> ''),
    author varchar(250) NOT NULL CHECK (author <> ''),
    rating double precision NOT NULL CHECK (rating >= 0 AND rating <= 10)
);`,
		},
		{
			SQL: `CREATE INDEX IF NOT EXISTS books_title ON books(title);`,
		},
	}
}

func (Postgres) List() db.Query {
	return db.Query{
		SQL: `SELECT id, title, author, rating FROM books ORDER BY title;`,
	}
}

func (Postgres) Get(id int64) db.Query {
	return db.Query{
		SQL: `SELECT id, title, author, rating FROM books WHERE id = @id;`,
		Args: map[string]any{
			"id": id,
		},
	}
}

func (Postgres) Insert(title, author string, rating float64) db.Mutation {
	return db.Mutation{
		SQL: `INSERT INTO books (title, author, rating) VALUES (@title, @author, @rating);`,
		Args: map[string]any{
			"title":  title,
			"author": author,
			"rating": rating,
		},
		MustAffectRows: true,
	}
}

func (Postgres) UpdateRating(id int64, rating float64) db.Mutation {
	return db.Mutation{
		SQL: `UPDATE books SET rating = @rating WHERE id = @id;`,
		Args: map[string]any{
			"id":     id,
			"rating": rating,
		},
		MustAffectRows: true,
	}
}

func (Postgres) Delete(id int64) db.Mutation {
	return db.Mutation{
		SQL: `DELETE FROM books WHERE id = @id;`,
		Args: map[string]any{
			"id": id,
		},
		MustAffectRows: true,
	}
}

func (Postgres) Count() db.Query {
	return db.Query{
		SQL: `SELECT count(*) FROM books;`,
	}
}
