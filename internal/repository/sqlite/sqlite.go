// Package sqlite implements the repository interfaces with the bun ORM over
// an embedded SQLite database.
//
// WHY bun ON TOP OF database/sql?
// The models already describe their tables through struct tags, so bun can
// generate the DDL, the inserts, and the author-name join for us — no
// hand-maintained column lists drifting out of sync with the structs. bun
// wraps a plain *sql.DB, so the driver stays modernc.org/sqlite: a pure Go
// translation of SQLite, no CGo, cross-compiles everywhere Go does.
//
// The DSN is a file path in production ("data/blog.db") or ":memory:" in
// tests.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/sakif/blog-platform/internal/model"

	// Registers the "sqlite" driver with database/sql at init time.
	_ "modernc.org/sqlite"
)

// DB wraps the bun handle and implements repository.UserRepository and
// repository.BlogRepository. The server owns it and closes it on shutdown.
type DB struct {
	bun *bun.DB
}

// New opens the database, applies the connection pragmas, and creates the
// schema if it doesn't exist yet.
func New(dsn string) (*DB, error) {
	sqldb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// An in-memory database exists per connection — cap the pool at one so
	// every query (and the migration) sees the same database.
	if dsn == ":memory:" {
		sqldb.SetMaxOpenConns(1)
	}

	// Surface a bad path or permissions problem now, not on the first query.
	if err := sqldb.Ping(); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets reads proceed while a write is in flight — SQLite's default
	// journal mode locks the whole file on every write.
	if _, err := sqldb.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// SQLite ships with foreign keys OFF; blogs.author_id → users.id needs
	// them on.
	if _, err := sqldb.Exec("PRAGMA foreign_keys=ON"); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{bun: bun.NewDB(sqldb, sqlitedialect.New())}

	if err := db.migrate(context.Background()); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the underlying connection pool, flushing the WAL.
func (db *DB) Close() error {
	return db.bun.Close()
}

// migrate creates the tables from the model definitions. bun derives the
// DDL — columns, UNIQUE on users.email, the author_id foreign key — from
// the struct tags, and IF NOT EXISTS makes this safe to run on every start.
func (db *DB) migrate(ctx context.Context) error {
	if _, err := db.bun.NewCreateTable().
		Model((*model.User)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	if _, err := db.bun.NewCreateTable().
		Model((*model.Blog)(nil)).
		IfNotExists().
		WithForeignKeys().
		Exec(ctx); err != nil {
		return fmt.Errorf("creating blogs table: %w", err)
	}

	return nil
}
