// Package quiz builds multiple-choice questions from a lesson's vocabulary
// and scores answers.
package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jask/hanzicards/internal/catalog"
)

// ErrTooFewTranslations means a lesson cannot supply three distinct wrong
// answers for a question.
var ErrTooFewTranslations = errors.New("lesson has too few distinct translations for a quiz")

const distractors = catalog.QuizOptions - 1

// Question is one quiz prompt with its four options.
type Question struct {
	Term          string
	Pronunciation string
	Correct       string
	Options       []string
}

// Generator draws question orders and distractors. It is not safe for
// concurrent use.
type Generator struct {
	rand *rand.Rand
}

// NewGenerator returns a generator seeded with seed, or with the clock when
// seed is 0.
func NewGenerator(seed int64) Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return Generator{rand: rand.New(rand.NewSource(seed))}
}

// Shuffle returns a shuffled copy of vocab (Fisher-Yates). vocab is not
// modified.
func (g Generator) Shuffle(vocab []catalog.VocabEntry) []catalog.VocabEntry {
	out := make([]catalog.VocabEntry, len(vocab))
	copy(out, vocab)
	for i := len(out) - 1; i > 0; i-- {
		j := g.rand.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Question builds the question for entry. Distractors are drawn at random
// from the translations of lesson, skipping the correct translation and
// translations already chosen.
func (g Generator) Question(entry catalog.VocabEntry, lesson []catalog.VocabEntry) (Question, error) {
	pool := catalog.Translations(lesson)
	if n := wrongTranslations(entry.Translation, lesson); n < distractors {
		return Question{}, fmt.Errorf("%w: %q has %d other translations, need %d", ErrTooFewTranslations, entry.Term, n, distractors)
	}

	options := make([]string, 0, catalog.QuizOptions)
	for len(options) < distractors {
		t := pool[g.rand.Intn(len(pool))]
		if t == entry.Translation || contains(options, t) {
			continue
		}
		options = append(options, t)
	}
	options = append(options, entry.Translation)
	g.rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Question{
		Term:          entry.Term,
		Pronunciation: entry.Pronunciation,
		Correct:       entry.Translation,
		Options:       options,
	}, nil
}

// CanQuiz reports whether every entry of the lesson can be turned into a
// question.
func CanQuiz(lesson []catalog.VocabEntry) error {
	for _, v := range lesson {
		if n := wrongTranslations(v.Translation, lesson); n < distractors {
			return fmt.Errorf("%w: %q has %d other translations, need %d", ErrTooFewTranslations, v.Term, n, distractors)
		}
	}
	return nil
}

func wrongTranslations(correct string, lesson []catalog.VocabEntry) int {
	n := 0
	for _, t := range catalog.DistinctTranslations(lesson) {
		if t != correct {
			n++
		}
	}
	return n
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}
