package flow

import "github.com/jask/hanzicards/internal/catalog"

// Action is a user or loader event fed to Dispatch.
type Action interface {
	actionName() string
}

// Loaded delivers the catalog once the initial load finishes.
type Loaded struct{ Catalog *catalog.Catalog }

// LoadFailed ends the initial load with an error. The app stays unusable.
type LoadFailed struct{ Err error }

type SelectLesson struct{ ID int }

type Next struct{}

type Prev struct{}

type Flip struct{}

// Ready starts the quiz from the last flashcard.
type Ready struct{}

type Back struct{}

type Answer struct{ Option string }

type Advance struct{}

// Review restarts the finished lesson from its first card.
type Review struct{}

func (Loaded) actionName() string       { return "loaded" }
func (LoadFailed) actionName() string   { return "load_failed" }
func (SelectLesson) actionName() string { return "select_lesson" }
func (Next) actionName() string         { return "next" }
func (Prev) actionName() string         { return "prev" }
func (Flip) actionName() string         { return "flip" }
func (Ready) actionName() string        { return "ready" }
func (Back) actionName() string         { return "back" }
func (Answer) actionName() string       { return "answer" }
func (Advance) actionName() string      { return "advance" }
func (Review) actionName() string       { return "review" }
