package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

// KeyRegistry maps keys to actions per screen scope. Lookups fall back to
// the global scope.
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal        = "global"
	scopeLoading       = "loading"
	scopeFailed        = "failed"
	scopeHome          = "home"
	scopeHomeFilter    = "home_filter"
	scopeFlashcard     = "flashcard"
	scopeFlashcardLast = "flashcard_last"
	scopeQuiz          = "quiz"
	scopeQuizAnswered  = "quiz_answered"
	scopeResult        = "result"
)

const (
	actionQuit        Action = "quit"
	actionNavigate    Action = "navigate"
	actionUp          Action = "up"
	actionDown        Action = "down"
	actionOpen        Action = "open"
	actionFilter      Action = "filter"
	actionApplyFilter Action = "apply_filter"
	actionClearFilter Action = "clear_filter"
	actionPrev        Action = "prev"
	actionNext        Action = "next"
	actionFlip        Action = "flip"
	actionAudio       Action = "audio"
	actionReady       Action = "ready"
	actionBack        Action = "back"
	actionChoose      Action = "choose"
	actionSelect      Action = "select"
	actionAdvance     Action = "advance"
	actionReview      Action = "review"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	reg(scopeGlobal, actionQuit, []string{"ctrl+c"}, "quit")

	reg(scopeLoading, actionQuit, []string{"q", "ctrl+c"}, "quit")
	reg(scopeFailed, actionQuit, []string{"q", "ctrl+c", "enter", "esc"}, "quit")

	// Help shows the first key; "j/k" is display only.
	reg(scopeHome, actionNavigate, []string{"j/k"}, "navigate")
	reg(scopeHome, actionUp, []string{"k", "up"}, "")
	reg(scopeHome, actionDown, []string{"j", "down"}, "")
	reg(scopeHome, actionOpen, []string{"enter"}, "open lesson")
	reg(scopeHome, actionFilter, []string{"/"}, "filter")
	reg(scopeHome, actionClearFilter, []string{"esc"}, "clear filter")
	reg(scopeHome, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeHomeFilter, actionUp, []string{"up"}, "")
	reg(scopeHomeFilter, actionDown, []string{"down"}, "")
	reg(scopeHomeFilter, actionApplyFilter, []string{"enter"}, "apply")
	reg(scopeHomeFilter, actionClearFilter, []string{"esc"}, "clear")

	reg(scopeFlashcard, actionPrev, []string{"h", "left"}, "prev")
	reg(scopeFlashcard, actionNext, []string{"l", "right"}, "next")
	reg(scopeFlashcard, actionFlip, []string{"space", " "}, "flip")
	reg(scopeFlashcard, actionAudio, []string{"a"}, "audio")
	reg(scopeFlashcard, actionBack, []string{"esc"}, "home")
	reg(scopeFlashcard, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeFlashcardLast, actionPrev, []string{"h", "left"}, "prev")
	reg(scopeFlashcardLast, actionReady, []string{"t", "enter"}, "ready to test")
	reg(scopeFlashcardLast, actionFlip, []string{"space", " "}, "flip")
	reg(scopeFlashcardLast, actionAudio, []string{"a"}, "audio")
	reg(scopeFlashcardLast, actionBack, []string{"esc"}, "home")
	reg(scopeFlashcardLast, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeQuiz, actionChoose, []string{"1-4", "1", "2", "3", "4"}, "answer")
	reg(scopeQuiz, actionNavigate, []string{"j/k"}, "navigate")
	reg(scopeQuiz, actionUp, []string{"k", "up"}, "")
	reg(scopeQuiz, actionDown, []string{"j", "down"}, "")
	reg(scopeQuiz, actionSelect, []string{"enter"}, "select")
	reg(scopeQuiz, actionBack, []string{"esc"}, "home")

	reg(scopeQuizAnswered, actionAdvance, []string{"n", "enter"}, "continue")
	reg(scopeQuizAnswered, actionBack, []string{"esc"}, "home")
	reg(scopeQuizAnswered, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeResult, actionReview, []string{"r"}, "review")
	reg(scopeResult, actionBack, []string{"esc", "enter"}, "home")
	reg(scopeResult, actionQuit, []string{"q", "ctrl+c"}, "quit")

	return r
}

// Register adds b to each of its scopes. Keys already bound in a scope are
// not rebound.
func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 || r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.lookupInScope(keyName, scopeGlobal)
	}
	return nil
}

// HelpBindings returns the scope's bindings for the footer. Bindings without
// help text are left out.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 || b.Help == "" {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	return s
}
