package stmts

import (
	"github.com/Suiper34/virtual-bookshelf-web/db"
)

// SQLite statements are also used by rqlite, which speaks the SQLite dialect.
type SQLite struct {
}

func (ss SQLite) isStatementSet() db.StatementSet {
	return ss
}

// Init uses autoincrement so that the ids of deleted books are never handed out again.
func (SQLite) Init() []db.Mutation {
	return []db.Mutation{
		{
			SQL: `create table if not exists books (
  id integer primary key autoincrement,
  title text not null unique check (length(title) between 1 and 250),
  author text not null check (length(author) between 1 and 250),
  rating real not null check (rating >= 0 and rating <= 10)
);`,
		},
		{
			SQL: `create index if not exists books_title on books(title);`,
		},
	}
}

func (SQLite) List() db.Query {
	return db.Query{
		SQL: `select id, title, author, rating from books order by title;`,
	}
}

func (SQLite) Get(id int64) db.Query {
	return db.Query{
		SQL: `select id, title, author, rating from books where id = :id;`,
		Args: map[string]any{
			":id": id,
		},
	}
}

func (SQLite) Insert(title, author string, rating float64) db.Mutation {
	return db.Mutation{
		SQL: `insert into books (title, author, rating) values (:title, :author, :rating);`,
		Args: map[string]any{
			":title":  title,
			":author": author,
			":rating": rating,
		},
		MustAffectRows: true,
	}
}

func (SQLite) UpdateRating(id int64, rating float64) db.Mutation {
	return db.Mutation{
		SQL: `update books set rating = :rating where id = :id;`,
		Args: map[string]any{
			":id":     id,
			":rating": rating,
		},
		MustAffectRows: true,
	}
}

func (SQLite) Delete(id int64) db.Mutation {
	return db.Mutation{
		SQL: `delete from books where id = :id;`,
		Args: map[string]any{
			":id": id,
		},
		MustAffectRows: true,
	}
}

func (SQLite) Count() db.Query {
	return db.Query{
		SQL: `select count(*) from books;`,
	}
}
