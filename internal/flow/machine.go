package flow

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/hanzicards/internal/catalog"
	"github.com/jask/hanzicards/internal/quiz"
)

// ErrNotAllowed is returned for actions that do not apply to the current
// screen. The returned state is the input state.
var ErrNotAllowed = errors.New("action not allowed")

// Machine applies actions to states.
type Machine struct {
	Gen   quiz.Generator
	Log   *zap.Logger
	NewID func() string
}

func NewMachine(gen quiz.Generator, log *zap.Logger) *Machine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Machine{Gen: gen, Log: log, NewID: uuid.NewString}
}

// Dispatch returns the state that follows st after a. On error st is
// returned unchanged.
func (m *Machine) Dispatch(st State, a Action) (State, error) {
	next, err := m.apply(st, a)
	if err != nil {
		m.log().Debug("transition rejected",
			zap.String("action", a.actionName()),
			zap.Stringer("screen", st.Screen),
			zap.Error(err),
		)
		return st, err
	}
	if next.Screen != st.Screen {
		fields := []zap.Field{
			zap.String("action", a.actionName()),
			zap.Stringer("from", st.Screen),
			zap.Stringer("to", next.Screen),
		}
		if next.Session != nil {
			fields = append(fields, zap.String("session", next.Session.ID), zap.Int("lesson", next.Session.LessonID))
		}
		if next.Quiz != nil {
			fields = append(fields, zap.String("quiz", next.Quiz.ID))
		}
		m.log().Debug("transition", fields...)
	}
	return next, nil
}

func (m *Machine) apply(st State, a Action) (State, error) {
	switch a := a.(type) {
	case Loaded:
		if st.Screen != ScreenLoading {
			return st, notAllowed(a, st)
		}
		if a.Catalog.Len() == 0 {
			return State{Screen: ScreenFailed, LoadErr: catalog.ErrEmptyCatalog}, nil
		}
		return State{Screen: ScreenHome, Catalog: a.Catalog}, nil

	case LoadFailed:
		if st.Screen != ScreenLoading {
			return st, notAllowed(a, st)
		}
		return State{Screen: ScreenFailed, LoadErr: a.Err}, nil

	case SelectLesson:
		if st.Screen != ScreenHome {
			return st, notAllowed(a, st)
		}
		return m.startLesson(st, a.ID), nil

	case Next:
		if st.Screen != ScreenFlashcard {
			return st, notAllowed(a, st)
		}
		if st.Session.last() {
			return st, nil
		}
		return st.withCard(st.Session.Index + 1), nil

	case Prev:
		if st.Screen != ScreenFlashcard {
			return st, notAllowed(a, st)
		}
		if st.Session.Index == 0 {
			return st, nil
		}
		return st.withCard(st.Session.Index - 1), nil

	case Flip:
		if st.Screen != ScreenFlashcard {
			return st, notAllowed(a, st)
		}
		s := *st.Session
		s.Flipped = !s.Flipped
		st.Session = &s
		return st, nil

	case Ready:
		if !st.AtLastCard() {
			return st, notAllowed(a, st)
		}
		return m.startQuiz(st)

	case Back:
		switch st.Screen {
		case ScreenFlashcard, ScreenQuiz, ScreenResult:
			return State{Screen: ScreenHome, Catalog: st.Catalog}, nil
		}
		return st, notAllowed(a, st)

	case Answer:
		if st.Screen != ScreenQuiz || st.Quiz.Answered() {
			return st, notAllowed(a, st)
		}
		if !hasOption(st.Quiz.Question, a.Option) {
			return st, fmt.Errorf("%w: %q is not an option", ErrNotAllowed, a.Option)
		}
		out := quiz.Evaluate(st.Quiz.Question, a.Option)
		run := *st.Quiz
		run.Outcome = &out
		run.Score += out.Points()
		st.Quiz = &run
		return st, nil

	case Advance:
		if st.Screen != ScreenQuiz || !st.Quiz.Answered() {
			return st, notAllowed(a, st)
		}
		return m.advance(st)

	case Review:
		if st.Screen != ScreenResult {
			return st, notAllowed(a, st)
		}
		return m.startLesson(st, st.Session.LessonID), nil
	}
	return st, fmt.Errorf("%w: unknown action %T", ErrNotAllowed, a)
}

// startLesson opens the lesson at its first card. An unknown or empty
// lesson leaves st as it is.
func (m *Machine) startLesson(st State, id int) State {
	l, ok := st.Catalog.Lesson(id)
	if !ok || len(l.Vocab) == 0 {
		m.log().Info("lesson not started", zap.Int("lesson", id), zap.Bool("found", ok))
		return st
	}
	return State{
		Screen:  ScreenFlashcard,
		Catalog: st.Catalog,
		Session: &Session{
			ID:       m.newID(),
			LessonID: l.ID,
			Title:    l.Title,
			Vocab:    l.Vocab,
		},
	}
}

func (m *Machine) startQuiz(st State) (State, error) {
	vocab := st.Session.Vocab
	if err := quiz.CanQuiz(vocab); err != nil {
		return st, fmt.Errorf("lesson %d: %w", st.Session.LessonID, err)
	}
	order := m.Gen.Shuffle(vocab)
	q, err := m.Gen.Question(order[0], vocab)
	if err != nil {
		return st, err
	}

	run := &QuizRun{ID: m.newID(), Order: order, Question: q}
	m.log().Info("quiz started",
		zap.String("quiz", run.ID),
		zap.Int("lesson", st.Session.LessonID),
		zap.Int("questions", run.Total()),
	)
	return State{Screen: ScreenQuiz, Catalog: st.Catalog, Session: st.Session, Quiz: run}, nil
}

func (m *Machine) advance(st State) (State, error) {
	run := *st.Quiz
	run.Index++
	run.Outcome = nil
	if run.Index >= run.Total() {
		m.log().Info("quiz finished",
			zap.String("quiz", run.ID),
			zap.Int("lesson", st.Session.LessonID),
			zap.String("score", quiz.FormatScore(run.Score, run.Total())),
		)
		return State{Screen: ScreenResult, Catalog: st.Catalog, Session: st.Session, Quiz: &run}, nil
	}

	q, err := m.Gen.Question(run.Order[run.Index], st.Session.Vocab)
	if err != nil {
		return st, err
	}
	run.Question = q
	st.Quiz = &run
	return st, nil
}

func (st State) withCard(i int) State {
	s := *st.Session
	s.Index = i
	s.Flipped = false
	st.Session = &s
	return st
}

func (m *Machine) newID() string {
	if m.NewID == nil {
		return uuid.NewString()
	}
	return m.NewID()
}

func (m *Machine) log() *zap.Logger {
	if m.Log == nil {
		return zap.NewNop()
	}
	return m.Log
}

func hasOption(q quiz.Question, opt string) bool {
	for _, o := range q.Options {
		if o == opt {
			return true
		}
	}
	return false
}

func notAllowed(a Action, st State) error {
	return fmt.Errorf("%w: %s on %s screen", ErrNotAllowed, a.actionName(), st.Screen)
}
