// Package flow is the screen state machine: Home, Flashcard, Quiz and Result,
// plus the Loading and Failed states around the initial catalog load.
//
// Dispatch takes the current State and an Action and returns the next State.
// Sessions and quiz runs are values that transitions replace rather than
// mutate, so any State can be kept and compared in tests.
package flow

import (
	"github.com/jask/hanzicards/internal/catalog"
	"github.com/jask/hanzicards/internal/quiz"
)

type Screen int

const (
	ScreenLoading Screen = iota
	ScreenFailed
	ScreenHome
	ScreenFlashcard
	ScreenQuiz
	ScreenResult
)

func (s Screen) String() string {
	switch s {
	case ScreenLoading:
		return "loading"
	case ScreenFailed:
		return "failed"
	case ScreenHome:
		return "home"
	case ScreenFlashcard:
		return "flashcard"
	case ScreenQuiz:
		return "quiz"
	case ScreenResult:
		return "result"
	default:
		return "unknown"
	}
}

// Session is a flashcard pass over one lesson.
type Session struct {
	ID       string
	LessonID int
	Title    string
	Vocab    []catalog.VocabEntry
	Index    int
	Flipped  bool
}

// Card returns the entry at the current index.
func (s *Session) Card() catalog.VocabEntry {
	return s.Vocab[s.Index]
}

func (s *Session) last() bool {
	return s.Index == len(s.Vocab)-1
}

// QuizRun is one scored pass over a shuffled copy of the session's vocabulary.
type QuizRun struct {
	ID       string
	Order    []catalog.VocabEntry
	Index    int
	Score    int
	Question quiz.Question
	Outcome  *quiz.Outcome // nil until the current question is answered
}

func (q *QuizRun) Answered() bool { return q.Outcome != nil }

// Total is the number of questions in the run.
func (q *QuizRun) Total() int { return len(q.Order) }

// LastQuestion reports whether the current question is the final one.
func (q *QuizRun) LastQuestion() bool {
	return q.Index == len(q.Order)-1
}

// State is everything the UI renders. The zero value is the Loading screen.
type State struct {
	Screen  Screen
	Catalog *catalog.Catalog
	LoadErr error
	Session *Session
	Quiz    *QuizRun
}

// PrevEnabled reports whether "previous" is usable on the flashcard screen.
func (s State) PrevEnabled() bool {
	return s.Screen == ScreenFlashcard && s.Session != nil && s.Session.Index > 0
}

// AtLastCard reports whether "next" is replaced by "ready to test".
func (s State) AtLastCard() bool {
	return s.Screen == ScreenFlashcard && s.Session != nil && s.Session.last()
}

// ShowHomeControl reports whether the quiz shows its standing "return to
// home" control, which appears once the last question has been answered.
func (s State) ShowHomeControl() bool {
	return s.Screen == ScreenQuiz && s.Quiz != nil && s.Quiz.Answered() && s.Quiz.LastQuestion()
}

// AdvanceLabel is the label of the advance control, or "" while the current
// question is unanswered.
func (s State) AdvanceLabel() string {
	if s.Screen != ScreenQuiz || s.Quiz == nil || !s.Quiz.Answered() {
		return ""
	}
	return quiz.AdvanceLabel(s.Quiz.LastQuestion())
}

// ScoreText is the result line, "correct/total".
func (s State) ScoreText() string {
	if s.Quiz == nil {
		return ""
	}
	return quiz.FormatScore(s.Quiz.Score, s.Quiz.Total())
}
