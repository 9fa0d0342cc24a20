package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/hanzicards/internal/audio"
	"github.com/jask/hanzicards/internal/catalog"
)

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type catalogLoadedMsg struct {
	catalog *catalog.Catalog
	err     error
}

type audioPlayedMsg struct {
	path string
	err  error
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

func loadCatalogCmd(ctx context.Context, src catalog.Source) tea.Cmd {
	return func() tea.Msg {
		c, err := src.Load(ctx)
		return catalogLoadedMsg{catalog: c, err: err}
	}
}

func playAudioCmd(ctx context.Context, p audio.Player, path string) tea.Cmd {
	return func() tea.Msg {
		return audioPlayedMsg{path: path, err: p.Play(ctx, path)}
	}
}
