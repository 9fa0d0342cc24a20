package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens a read-write sqlite database, creating the file if needed.
func Open(path string) (*sql.DB, error) {
	return open(fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path))
}

// OpenReadOnly opens an existing sqlite database without write access.
func OpenReadOnly(path string) (*sql.DB, error) {
	return open(fmt.Sprintf("file:%s?mode=ro&_foreign_keys=on&_busy_timeout=5000", path))
}

func open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	return db, nil
}

// WithTx runs fn in a transaction.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
