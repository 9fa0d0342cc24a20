package audio

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/hanzicards/internal/catalog"
)

func TestStem(t *testing.T) {
	tests := []struct {
		name  string
		entry catalog.VocabEntry
		want  string
	}{
		{"tone marks", catalog.VocabEntry{Pronunciation: "Nǐ hǎo"}, "ni-hao"},
		{"single syllable", catalog.VocabEntry{Pronunciation: "Shì"}, "shi"},
		{"joined syllables", catalog.VocabEntry{Pronunciation: "Xièxiè"}, "xiexie"},
		{"umlaut", catalog.VocabEntry{Pronunciation: "lǜ"}, "lu"},
		{"whitespace runs", catalog.VocabEntry{Pronunciation: "  Zài   jiàn "}, "zai-jian"},
		{"punctuation dropped", catalog.VocabEntry{Pronunciation: "Nǐ hǎo!?"}, "ni-hao"},
		{"explicit override", catalog.VocabEntry{Pronunciation: "Nǐ hǎo", PronunciationWithoutTone: "nihao_2"}, "nihao_2"},
		{"override normalised", catalog.VocabEntry{Pronunciation: "x", PronunciationWithoutTone: "Zai Jian"}, "zai-jian"},
		{"digits kept", catalog.VocabEntry{Pronunciation: "ni3 hao3"}, "ni3-hao3"},
		{"empty", catalog.VocabEntry{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Stem(tt.entry))
		})
	}
}

func TestPath(t *testing.T) {
	require.Equal(t, filepath.Join("audio", "ni-hao.ogg"), Path("audio", "ni-hao", ".ogg"))
	require.Equal(t, "", Path("audio", "", ".ogg"))
}

func TestNewCommandPlayerRejectsEmpty(t *testing.T) {
	_, err := NewCommandPlayer("   ")
	require.ErrorIs(t, err, ErrNoPlayer)
}

func TestCommandPlayerMissingFile(t *testing.T) {
	p, err := NewCommandPlayer("true")
	require.NoError(t, err)
	err = p.Play(context.Background(), filepath.Join(t.TempDir(), "nope.ogg"))
	require.Error(t, err)
	require.False(t, p.Playing())
}

func TestCommandPlayerRestartsPlayback(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	file := filepath.Join(t.TempDir(), "ni-hao.ogg")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	// The shell ignores the appended path ($1) and just sleeps.
	p := &CommandPlayer{name: "sh", args: []string{"-c", "sleep 5", "player"}}
	require.NoError(t, p.Play(context.Background(), file))
	require.True(t, p.Playing())
	first := p.cur

	require.NoError(t, p.Play(context.Background(), file))
	require.NotSame(t, first, p.cur)
	require.NotNil(t, first.ProcessState, "previous playback was not stopped")

	p.Stop()
	require.False(t, p.Playing())
}

func TestCommandPlayerStartFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.ogg")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	p, err := NewCommandPlayer("hanzicards-no-such-player-binary")
	require.NoError(t, err)
	require.Error(t, p.Play(context.Background(), file))
	require.False(t, p.Playing())
}

func TestNopPlayer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, NopPlayer{}.Play(ctx, "whatever.ogg"))
}
