package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/hanzicards/internal/catalog"
)

// LessonRepo reads and rewrites the stored catalog.
type LessonRepo struct {
	db *sql.DB
}

func NewLessonRepo(db *sql.DB) *LessonRepo {
	return &LessonRepo{db: db}
}

// Replace swaps the stored catalog for c inside tx. Lesson and vocabulary
// order is preserved through the position columns.
func (r *LessonRepo) Replace(ctx context.Context, tx *sql.Tx, c *catalog.Catalog) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM vocab`); err != nil {
		return fmt.Errorf("clear vocab: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM lessons`); err != nil {
		return fmt.Errorf("clear lessons: %w", err)
	}

	lessonStmt, err := tx.PrepareContext(ctx, `INSERT INTO lessons(id, title, image, position) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer lessonStmt.Close()

	vocabStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO vocab(lesson_id, position, hanzi, pinyin, thai, image, pinyin_without_tone)
	VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer vocabStmt.Close()

	for pos, l := range c.Lessons {
		if _, err := lessonStmt.ExecContext(ctx, l.ID, l.Title, l.Image, pos); err != nil {
			return fmt.Errorf("insert lesson %d: %w", l.ID, err)
		}
		for i, v := range l.Vocab {
			if _, err := vocabStmt.ExecContext(ctx, l.ID, i, v.Term, v.Pronunciation, v.Translation, v.Image, v.PronunciationWithoutTone); err != nil {
				return fmt.Errorf("insert lesson %d entry %d: %w", l.ID, i, err)
			}
		}
	}
	return nil
}

// List returns every stored lesson with its vocabulary, in stored order.
func (r *LessonRepo) List(ctx context.Context) ([]catalog.Lesson, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, image FROM lessons ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []catalog.Lesson
	index := make(map[int]int)
	for rows.Next() {
		var l catalog.Lesson
		if err := rows.Scan(&l.ID, &l.Title, &l.Image); err != nil {
			return nil, err
		}
		index[l.ID] = len(lessons)
		lessons = append(lessons, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	vrows, err := r.db.QueryContext(ctx, `
	SELECT lesson_id, hanzi, pinyin, thai, image, pinyin_without_tone
	FROM vocab ORDER BY lesson_id, position`)
	if err != nil {
		return nil, err
	}
	defer vrows.Close()
	for vrows.Next() {
		var (
			lessonID int
			v        catalog.VocabEntry
		)
		if err := vrows.Scan(&lessonID, &v.Term, &v.Pronunciation, &v.Translation, &v.Image, &v.PronunciationWithoutTone); err != nil {
			return nil, err
		}
		i, ok := index[lessonID]
		if !ok {
			continue
		}
		lessons[i].Vocab = append(lessons[i].Vocab, v)
	}
	return lessons, vrows.Err()
}

// Count returns the number of stored lessons and vocabulary entries.
func (r *LessonRepo) Count(ctx context.Context) (lessons, entries int, err error) {
	if err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lessons`).Scan(&lessons); err != nil {
		return 0, 0, err
	}
	if err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vocab`).Scan(&entries); err != nil {
		return 0, 0, err
	}
	return lessons, entries, nil
}
