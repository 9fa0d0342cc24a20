package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jask/hanzicards/internal/catalog"
	"github.com/jask/hanzicards/internal/database/repository"
)

// ImportResult summarises an Import run.
type ImportResult struct {
	Lessons int
	Entries int
}

// Import migrates the database at dbPath and replaces its catalog with c.
func Import(ctx context.Context, dbPath string, c *catalog.Catalog) (ImportResult, error) {
	if c.Len() == 0 {
		return ImportResult{}, catalog.ErrEmptyCatalog
	}
	if err := RunMigrations(dbPath); err != nil {
		return ImportResult{}, fmt.Errorf("migrate: %w", err)
	}

	db, err := Open(dbPath)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	repo := repository.NewLessonRepo(db)
	if err := WithTx(ctx, db, func(tx *sql.Tx) error {
		return repo.Replace(ctx, tx, c)
	}); err != nil {
		return ImportResult{}, err
	}

	lessons, entries, err := repo.Count(ctx)
	if err != nil {
		return ImportResult{}, err
	}
	return ImportResult{Lessons: lessons, Entries: entries}, nil
}

// SQLiteSource loads the catalog from a database written by Import. The
// database is opened read-only.
type SQLiteSource struct {
	Path string
}

func (s SQLiteSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	if _, err := os.Stat(s.Path); err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	db, err := OpenReadOnly(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	defer db.Close()

	lessons, err := repository.NewLessonRepo(db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("read catalog db: %w", err)
	}
	if len(lessons) == 0 {
		return nil, catalog.ErrEmptyCatalog
	}
	return &catalog.Catalog{Lessons: lessons}, nil
}

func (s SQLiteSource) String() string { return "sqlite://" + s.Path }

var _ catalog.Source = SQLiteSource{}
