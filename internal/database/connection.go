// Package database provides connection management and the storage
// operations for the archive.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/tubevault/tubevault/db/migrations"
	"github.com/tubevault/tubevault/internal/config"
	sqldb "github.com/tubevault/tubevault/internal/database/sqlc"

	// Import SQLite driver for database/sql
	_ "modernc.org/sqlite"
)

// Context holds the database connection, its query interface, and the
// single-writer lock.
type Context struct {
	DB      *sql.DB
	Queries *sqldb.Queries
	lock    *flock.Flock
}

// CreateDatabase opens the archive, acquires the single-writer lock, and
// applies pending migrations. A missing or broken migration set is fatal:
// nothing can be archived without a schema.
func CreateDatabase(dbPath string) (*Context, error) {
	path := dbPath
	if path == "" {
		path = config.DBPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// One connection, one writer. The lock turns a second concurrent
	// process into an immediate error instead of interleaved writes.
	lock := flock.New(filepath.Join(filepath.Dir(path), "tubevault.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire archive lock: %w", err)
	}
	if !locked {
		return nil, errors.New("archive is in use by another tubevault process")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(ON)", filepath.ToSlash(absPath))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return &Context{
		DB:      db,
		Queries: sqldb.New(db),
		lock:    lock,
	}, nil
}

// CloseDatabase closes the connection and releases the writer lock.
func CloseDatabase(ctx *Context) error {
	if ctx == nil {
		return nil
	}
	var errs []error
	if ctx.DB != nil {
		if err := ctx.DB.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if ctx.lock != nil {
		if err := ctx.lock.Unlock(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithTx runs fn inside a single transaction, rolling back on error.
func (c *Context) WithTx(ctx context.Context, fn func(context.Context, *sqldb.Queries) error) error {
	if c == nil || c.DB == nil {
		return fmt.Errorf("database: missing connection")
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(ctx, sqldb.New(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return err
	}
	return nil
}

func queriesFromContext(c *Context) *sqldb.Queries {
	if c == nil {
		return nil
	}
	return c.Queries
}

func runMigrations(db *sql.DB) error {
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to initialise migrate driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}
	defer func() {
		_ = sourceDriver.Close()
	}()

	migrator, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
