// Package tui is the terminal front end: a bubbletea model that turns key
// presses into flow actions and renders the resulting state.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/hanzicards/internal/audio"
	"github.com/jask/hanzicards/internal/catalog"
	"github.com/jask/hanzicards/internal/flow"
	"github.com/jask/hanzicards/internal/quiz"
)

const appName = "hanzicards"

// Deps are the model's collaborators.
type Deps struct {
	Ctx     context.Context
	Source  catalog.Source
	Machine *flow.Machine
	Player  audio.Player
	Log     *zap.Logger

	ImageDir string // base for relative image references
	AudioDir string
	AudioExt string
}

type Model struct {
	deps  Deps
	keys  *KeyRegistry
	state flow.State

	width  int
	height int

	status    string
	statusErr bool

	// Home
	lessonCursor int
	visible      []int // catalog indices passing the filter
	filter       textinput.Model
	filtering    bool

	// Quiz
	optionCursor int

	spinner  spinner.Model
	progress progress.Model
	help     help.Model
}

func New(d Deps) Model {
	if d.Ctx == nil {
		d.Ctx = context.Background()
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Player == nil {
		d.Player = audio.NopPlayer{}
	}
	if d.Machine == nil {
		d.Machine = flow.NewMachine(quiz.NewGenerator(0), d.Log)
	}

	fi := textinput.New()
	fi.Prompt = "/ "
	fi.Placeholder = "ค้นหาบทเรียน"
	fi.CharLimit = 64
	fi.PromptStyle = cursorStyle
	fi.TextStyle = selectedStyle

	h := help.New()
	h.Styles.ShortKey = helpKeyStyle.Background(colorMantle)
	h.Styles.ShortDesc = helpDescStyle.Background(colorMantle)
	h.Styles.ShortSeparator = helpDescStyle.Background(colorMantle)
	h.ShortSeparator = "  "

	return Model{
		deps:     d,
		keys:     NewKeyRegistry(),
		filter:   fi,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(cursorStyle)),
		progress: progress.New(progress.WithGradient(progressGradient[0], progressGradient[1]), progress.WithoutPercentage(), progress.WithWidth(40)),
		help:     h,
	}
}

// State is the current flow state.
func (m Model) State() flow.State { return m.state }

// ---------------------------------------------------------------------------
// Bubble Tea interface: Init / Update
// ---------------------------------------------------------------------------

func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCatalogCmd(m.deps.Ctx, m.deps.Source), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = max(0, msg.Width-4)
		m.progress.Width = min(40, max(10, m.sectionContentWidth()-16))
		m.filter.Width = max(10, m.sectionContentWidth()-4)
		return m, nil
	case catalogLoadedMsg:
		return m.handleCatalogLoaded(msg)
	case audioPlayedMsg:
		if msg.err != nil {
			m.deps.Log.Warn("audio playback failed", zap.String("path", msg.path), zap.Error(msg.err))
		}
		return m, nil
	case spinner.TickMsg:
		if m.state.Screen != flow.ScreenLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleCatalogLoaded(msg catalogLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.deps.Log.Error("catalog load failed", zap.Stringer("source", m.deps.Source), zap.Error(msg.err))
		m = m.dispatch(flow.LoadFailed{Err: msg.err})
		return m, nil
	}
	for _, is := range catalog.Validate(msg.catalog) {
		m.deps.Log.Warn("catalog issue", zap.String("issue", is.String()), zap.Bool("blocking", is.Blocking()))
	}
	m.deps.Log.Info("catalog loaded", zap.Stringer("source", m.deps.Source), zap.Int("lessons", msg.catalog.Len()))
	m = m.dispatch(flow.Loaded{Catalog: msg.catalog})
	m.refilter()
	return m, nil
}

// scope is the key scope for the current screen.
func (m Model) scope() string {
	st := m.state
	switch st.Screen {
	case flow.ScreenLoading:
		return scopeLoading
	case flow.ScreenFailed:
		return scopeFailed
	case flow.ScreenHome:
		if m.filtering {
			return scopeHomeFilter
		}
		return scopeHome
	case flow.ScreenFlashcard:
		if st.AtLastCard() {
			return scopeFlashcardLast
		}
		return scopeFlashcard
	case flow.ScreenQuiz:
		if st.Quiz.Answered() {
			return scopeQuizAnswered
		}
		return scopeQuiz
	case flow.ScreenResult:
		return scopeResult
	}
	return scopeGlobal
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyName := msg.String()
	b := m.keys.Lookup(keyName, m.scope())
	if b == nil {
		return m, nil
	}

	switch b.Action {
	case actionQuit:
		return m, tea.Quit

	// Home
	case actionUp:
		if m.state.Screen == flow.ScreenQuiz {
			m.optionCursor = max(0, m.optionCursor-1)
		} else {
			m.lessonCursor = max(0, m.lessonCursor-1)
		}
	case actionDown:
		if m.state.Screen == flow.ScreenQuiz {
			m.optionCursor = min(len(m.state.Quiz.Question.Options)-1, m.optionCursor+1)
		} else {
			m.lessonCursor = min(max(0, len(m.visible)-1), m.lessonCursor+1)
		}
	case actionOpen:
		if len(m.visible) == 0 {
			return m, nil
		}
		l := m.state.Catalog.Lessons[m.visible[m.lessonCursor]]
		m = m.dispatch(flow.SelectLesson{ID: l.ID})
	case actionFilter:
		m.filtering = true
		cmd := m.filter.Focus()
		return m, cmd
	case actionClearFilter:
		m.filter.SetValue("")
		m.refilter()

	// Flashcard
	case actionPrev:
		m = m.dispatch(flow.Prev{})
	case actionNext:
		m = m.dispatch(flow.Next{})
	case actionFlip:
		m = m.dispatch(flow.Flip{})
	case actionAudio:
		return m, m.audioCmd()
	case actionReady:
		m = m.dispatch(flow.Ready{})
		m.optionCursor = 0
	case actionBack:
		m = m.dispatch(flow.Back{})

	// Quiz
	case actionChoose:
		idx := int(keyName[0] - '1')
		opts := m.state.Quiz.Question.Options
		if idx < 0 || idx >= len(opts) {
			return m, nil
		}
		m.optionCursor = idx
		m = m.dispatch(flow.Answer{Option: opts[idx]})
	case actionSelect:
		opts := m.state.Quiz.Question.Options
		if m.optionCursor < len(opts) {
			m = m.dispatch(flow.Answer{Option: opts[m.optionCursor]})
		}
	case actionAdvance:
		m = m.dispatch(flow.Advance{})
		m.optionCursor = 0

	// Result
	case actionReview:
		m = m.dispatch(flow.Review{})
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if b := m.keys.Lookup(msg.String(), scopeHomeFilter); b != nil {
		switch b.Action {
		case actionQuit:
			return m, tea.Quit
		case actionUp:
			m.lessonCursor = max(0, m.lessonCursor-1)
		case actionDown:
			m.lessonCursor = min(max(0, len(m.visible)-1), m.lessonCursor+1)
		case actionApplyFilter:
			m.filtering = false
			m.filter.Blur()
		case actionClearFilter:
			m.filtering = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.refilter()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refilter()
	return m, cmd
}

func (m *Model) refilter() {
	if m.state.Catalog == nil {
		m.visible = nil
		m.lessonCursor = 0
		return
	}
	m.visible = filterLessons(m.state.Catalog.Lessons, m.filter.Value())
	if m.lessonCursor >= len(m.visible) {
		m.lessonCursor = max(0, len(m.visible)-1)
	}
}

// dispatch applies a to the flow state. Rejected actions leave the state
// alone and show the reason on the status line.
func (m Model) dispatch(a flow.Action) Model {
	next, err := m.deps.Machine.Dispatch(m.state, a)
	if err != nil {
		switch {
		case errors.Is(err, quiz.ErrTooFewTranslations):
			m.deps.Log.Warn("quiz not started", zap.Error(err))
			m.setError("บทเรียนนี้มีคำแปลไม่พอสำหรับทำแบบทดสอบ (ต้องมีอย่างน้อย 4 คำแปลที่ต่างกัน)")
		case errors.Is(err, flow.ErrNotAllowed):
			m.deps.Log.Debug("action ignored", zap.Error(err))
		default:
			m.deps.Log.Error("transition failed", zap.Error(err))
			m.setError(err.Error())
		}
		return m
	}
	if next.Screen != m.state.Screen {
		m.status = ""
		m.statusErr = false
	}
	m.state = next
	return m
}

func (m Model) audioCmd() tea.Cmd {
	if m.state.Session == nil {
		return nil
	}
	card := m.state.Session.Card()
	path := audio.Path(m.deps.AudioDir, audio.Stem(card), m.deps.AudioExt)
	if path == "" {
		m.deps.Log.Warn("no audio stem", zap.String("term", card.Term))
		return nil
	}
	return playAudioCmd(m.deps.Ctx, m.deps.Player, path)
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}
