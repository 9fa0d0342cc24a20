package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
)

var ErrNoPlayer = errors.New("audio player not configured")

// Player plays an audio file. Play returns once playback has started.
type Player interface {
	Play(ctx context.Context, path string) error
}

// NopPlayer accepts every request and plays nothing.
type NopPlayer struct{}

func (NopPlayer) Play(context.Context, string) error { return nil }

// CommandPlayer plays files with an external command line such as
// "ffplay -nodisp -autoexit". At most one playback runs at a time: starting a
// new one stops the previous, so repeated plays always start from the top.
type CommandPlayer struct {
	name string
	args []string

	mu   sync.Mutex
	cur  *exec.Cmd
	done chan struct{}
}

// NewCommandPlayer splits command on whitespace. The audio path is appended
// as the last argument on each Play.
func NewCommandPlayer(command string) (*CommandPlayer, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, ErrNoPlayer
	}
	return &CommandPlayer{name: fields[0], args: fields[1:]}, nil
}

func (p *CommandPlayer) Play(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("play audio: empty path")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("play audio: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()

	args := append(append([]string(nil), p.args...), path)
	cmd := exec.CommandContext(ctx, p.name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("play audio %s: %w", path, err)
	}
	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()
	p.cur, p.done = cmd, done
	return nil
}

// Playing reports whether a playback process is still running.
func (p *CommandPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cur == nil {
		return false
	}
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

// Stop ends the current playback, if any.
func (p *CommandPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *CommandPlayer) stopLocked() {
	if p.cur == nil {
		return
	}
	select {
	case <-p.done:
	default:
		_ = p.cur.Process.Kill()
		<-p.done
	}
	p.cur, p.done = nil, nil
}
