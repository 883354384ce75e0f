// Package sqlstore implements the message, group and membership stores on SQLite,
// following the relational schema messages / groups / group_members.
package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

//go:embed migrations.sql
var migrationsFS embed.FS

// maxInParams keeps IN (...) lists well under SQLite's host parameter limit.
const maxInParams = 500

// Open opens (and creates if needed) the database file and applies migrations.
func Open(ctx context.Context, path string, busyTimeout time.Duration, log *slog.Logger) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, stderrors.New("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite prefers a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	applyPragmas(ctx, db, busyTimeout, log)

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// applyPragmas tunes the connection. The store still works without them,
// so failures are only logged.
func applyPragmas(ctx context.Context, db *sql.DB, busyTimeout time.Duration, log *slog.Logger) {
	if busyTimeout > 0 {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout.Milliseconds())); err != nil {
			log.Warn("Setting SQLite busy timeout failed", "error", err)
		}
	}
	var mode string
	if err := db.QueryRowContext(ctx, "PRAGMA journal_mode = WAL").Scan(&mode); err != nil {
		log.Warn("Enabling SQLite WAL failed", "error", err)
	} else if !strings.EqualFold(mode, "wal") {
		log.Warn("SQLite is not running in WAL mode", "journal_mode", mode)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA synchronous = NORMAL"); err != nil {
		log.Warn("Setting SQLite synchronous mode failed", "error", err)
	}
}

func migrate(ctx context.Context, db *sql.DB) error {
	b, err := migrationsFS.ReadFile("migrations.sql")
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, string(b))
	return err
}

// isUniqueViolation reports a PRIMARY KEY or UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !stderrors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		return strings.Contains(se.Error(), "UNIQUE constraint failed")
	}
	return false
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
