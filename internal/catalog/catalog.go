// Package catalog holds the lesson catalog: the immutable set of lessons and
// vocabulary loaded once at startup.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	ErrEmptyCatalog   = errors.New("catalog has no lessons")
	ErrLessonNotFound = errors.New("lesson not found")
)

// Catalog is the ordered lesson list. It is never modified after load.
type Catalog struct {
	Lessons []Lesson `json:"lessons"`
}

// Lesson is one titled group of vocabulary.
type Lesson struct {
	ID    int          `json:"id"`
	Title string       `json:"title"`
	Image string       `json:"image"`
	Vocab []VocabEntry `json:"vocab"`
}

// VocabEntry is a single term with its pronunciation and translation.
type VocabEntry struct {
	Term                     string `json:"hanzi"`
	Pronunciation            string `json:"pinyin"`
	Translation              string `json:"thai"`
	Image                    string `json:"image,omitempty"`
	PronunciationWithoutTone string `json:"pinyinWithoutTone,omitempty"`
}

// HasImage reports whether the entry references an image.
func (v VocabEntry) HasImage() bool {
	return v.Image != ""
}

// Decode reads a catalog document from r.
func Decode(r io.Reader) (*Catalog, error) {
	var c Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(c.Lessons) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &c, nil
}

// Encode writes the catalog in its wire format.
func Encode(w io.Writer, c *Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(c)
}

// Lesson looks a lesson up by ID.
func (c *Catalog) Lesson(id int) (Lesson, bool) {
	if c == nil {
		return Lesson{}, false
	}
	for _, l := range c.Lessons {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

// Len returns the number of lessons.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Lessons)
}

// Translations returns the lesson's translations in vocabulary order,
// duplicates included.
func Translations(vocab []VocabEntry) []string {
	out := make([]string, 0, len(vocab))
	for _, v := range vocab {
		out = append(out, v.Translation)
	}
	return out
}

// DistinctTranslations returns the lesson's translations with duplicates
// removed, first occurrence wins.
func DistinctTranslations(vocab []VocabEntry) []string {
	seen := make(map[string]bool, len(vocab))
	out := make([]string, 0, len(vocab))
	for _, v := range vocab {
		if seen[v.Translation] {
			continue
		}
		seen[v.Translation] = true
		out = append(out, v.Translation)
	}
	return out
}
