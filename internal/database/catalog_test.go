package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/hanzicards/internal/catalog"
)

func sampleCatalog() *catalog.Catalog {
	return &catalog.Catalog{Lessons: []catalog.Lesson{
		{ID: 7, Title: "ตัวเลข", Image: "images/numbers.png", Vocab: []catalog.VocabEntry{
			{Term: "一", Pronunciation: "Yī", Translation: "หนึ่ง"},
			{Term: "二", Pronunciation: "Èr", Translation: "สอง", Image: "images/er.png"},
		}},
		{ID: 1, Title: "คำทักทาย", Vocab: []catalog.VocabEntry{
			{Term: "你好", Pronunciation: "Nǐ hǎo", Translation: "สวัสดี", PronunciationWithoutTone: "ni hao"},
		}},
	}}
}

func TestImportAndLoadPreservesOrder(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	dbPath := filepath.Join(t.TempDir(), "cards.db")
	res, err := Import(ctx, dbPath, sampleCatalog())
	require.NoError(t, err)
	require.Equal(t, ImportResult{Lessons: 2, Entries: 3}, res)

	src := SQLiteSource{Path: dbPath}
	require.Equal(t, "sqlite://"+dbPath, src.String())
	got, err := src.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, sampleCatalog(), got)
}

func TestImportReplacesPreviousCatalog(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "cards.db")

	_, err := Import(ctx, dbPath, sampleCatalog())
	require.NoError(t, err)

	smaller := &catalog.Catalog{Lessons: []catalog.Lesson{
		{ID: 3, Title: "สี", Vocab: []catalog.VocabEntry{{Term: "红", Pronunciation: "Hóng", Translation: "แดง"}}},
	}}
	res, err := Import(ctx, dbPath, smaller)
	require.NoError(t, err)
	require.Equal(t, ImportResult{Lessons: 1, Entries: 1}, res)

	got, err := SQLiteSource{Path: dbPath}.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, smaller, got)
}

func TestImportRejectsEmptyCatalog(t *testing.T) {
	t.Parallel()
	_, err := Import(context.Background(), filepath.Join(t.TempDir(), "cards.db"), &catalog.Catalog{})
	require.ErrorIs(t, err, catalog.ErrEmptyCatalog)
}

func TestSQLiteSourceMissingFile(t *testing.T) {
	t.Parallel()
	_, err := SQLiteSource{Path: filepath.Join(t.TempDir(), "nope.db")}.Load(context.Background())
	require.Error(t, err)
}

func TestSQLiteSourceEmptyDatabase(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "cards.db")
	require.NoError(t, RunMigrations(dbPath))
	// Running twice is a no-op.
	require.NoError(t, RunMigrations(dbPath))

	_, err := SQLiteSource{Path: dbPath}.Load(context.Background())
	require.ErrorIs(t, err, catalog.ErrEmptyCatalog)
}
