package main

import (
	"context"
	"fmt"
	"net/url"
	"os"

	bookshelf "github.com/Suiper34/virtual-bookshelf-web"
	"github.com/Suiper34/virtual-bookshelf-web/db"
	"github.com/alecthomas/kong"
	"github.com/jackc/pgx/v5/pgxpool"
	rqlitehttp "github.com/rqlite/rqlite-go-http"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"zombiezen.com/go/sqlite/sqlitex"
)

type GlobalFlags struct {
	Type       string `help:"The type of database to use." enum:"sqlite,postgres,rqlite" default:"sqlite" env:"BOOKSHELF_TYPE"`
	Connection string `help:"The connection string to use." default:"file:books-collection.db?mode=rwc" env:"BOOKSHELF_CONNECTION"`
	LogLevel   string `help:"The minimum level to log at." enum:"debug,info,warn,error" default:"info" env:"BOOKSHELF_LOG_LEVEL"`
	LogFormat  string `help:"The log encoding." enum:"json,console" default:"json" env:"BOOKSHELF_LOG_FORMAT"`
}

func (g GlobalFlags) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(g.LogLevel)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	if g.LogFormat == "console" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

// Store opens the database. The returned function releases its connections.
func (g GlobalFlags) Store(ctx context.Context) (store *bookshelf.Store, closer func(), err error) {
	db, closer, err := g.DB(ctx)
	if err != nil {
		return nil, nil, err
	}
	return bookshelf.NewStore(db), closer, nil
}

func (g GlobalFlags) DB(ctx context.Context) (db.DB, func(), error) {
	switch g.Type {
	case "sqlite":
		pool, err := sqlitex.NewPool(g.Connection, sqlitex.PoolOptions{})
		if err != nil {
			return nil, nil, err
		}
		return bookshelf.NewSqlite(pool), func() { pool.Close() }, nil
	case "postgres":
		pool, err := pgxpool.New(ctx, g.Connection)
		if err != nil {
			return nil, nil, err
		}
		return bookshelf.NewPostgres(pool), pool.Close, nil
	case "rqlite":
		u, err := url.Parse(g.Connection)
		if err != nil {
			return nil, nil, err
		}
		user := u.Query().Get("user")
		password := u.Query().Get("password")
		// Remove user and password from the connection string.
		u.RawQuery = ""
		client := rqlitehttp.NewClient(u.String(), nil)
		if user != "" && password != "" {
			client.SetBasicAuth(user, password)
		}
		return bookshelf.NewRqlite(client), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown database type %q", g.Type)
	}
}

type CLI struct {
	GlobalFlags

	Init       InitCommand       `cmd:"init" help:"Create the books table."`
	Serve      ServeCommand      `cmd:"serve" help:"Run the web server."`
	List       ListCommand       `cmd:"list" help:"List all books as JSON."`
	Add        AddCommand        `cmd:"add" help:"Add a book."`
	EditRating EditRatingCommand `cmd:"edit-rating" help:"Change the rating of a book."`
	Delete     DeleteCommand     `cmd:"delete" help:"Delete a book."`
	Count      CountCommand      `cmd:"count" help:"Count the number of books."`
	Benchmark  BenchmarkCommand  `cmd:"benchmark" help:"Measure add and get throughput."`
}

func main() {
	var cli CLI
	ctx := context.Background()
	kctx := kong.Parse(&cli,
		kong.Name("bookshelf"),
		kong.Description("A catalogue of the books you've read."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(cli.GlobalFlags, (*GlobalFlags)(nil)),
	)
	if err := kctx.Run(ctx, cli.GlobalFlags); err != nil {
		fmt.Println(err)

		os.Exit(1)
	}
}
