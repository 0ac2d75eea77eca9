// Package speech wraps the platform text-to-speech binary behind a small
// engine with exclusive playback.
package speech

import (
	"fmt"
	"os/exec"
	"runtime"
	"sync"

	"github.com/julianstephens/lifeup/internal/logger"
)

// Engine speaks text out loud. Playback is exclusive: starting an utterance
// cancels any in-flight one.
type Engine interface {
	Speak(text string) error
	Stop()
	Playing() bool
}

// CommandEngine shells out to a text-to-speech binary for each utterance.
type CommandEngine struct {
	mu      sync.Mutex
	program string
	args    []string
	cmd     *exec.Cmd
	gen     int
	playing bool
	notify  func(playing bool)
}

// NewCommandEngine picks the platform speech binary: `say` on macOS,
// `espeak` elsewhere.
func NewCommandEngine() *CommandEngine {
	if runtime.GOOS == "darwin" {
		return NewEngine("say")
	}
	return NewEngine("espeak", "-s", "150")
}

// NewEngine builds an engine over an explicit program and base arguments.
// The utterance text is appended as the final argument.
func NewEngine(program string, args ...string) *CommandEngine {
	return &CommandEngine{program: program, args: args}
}

// Notify registers a listener invoked whenever playback starts or ends.
func (e *CommandEngine) Notify(fn func(playing bool)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notify = fn
}

// Speak starts speaking text, cancelling any utterance already playing.
// Empty text is a no-op.
func (e *CommandEngine) Speak(text string) error {
	if text == "" {
		return nil
	}

	e.mu.Lock()
	e.stopLocked()

	cmd := exec.Command(e.program, append(append([]string{}, e.args...), text)...)
	if err := cmd.Start(); err != nil {
		e.setPlayingLocked(false)
		e.mu.Unlock()
		return fmt.Errorf("failed to start speech: %w", err)
	}

	e.cmd = cmd
	e.gen++
	gen := e.gen
	e.setPlayingLocked(true)
	e.mu.Unlock()

	go func() {
		err := cmd.Wait()

		e.mu.Lock()
		defer e.mu.Unlock()
		// A newer utterance or Stop has taken over; stand down.
		if e.gen != gen {
			return
		}
		e.cmd = nil
		e.setPlayingLocked(false)
		if err != nil {
			logger.Warn("speech playback failed", "error", err)
		}
	}()

	return nil
}

// Stop kills the in-flight utterance, if any. Safe to call at teardown.
func (e *CommandEngine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gen++
	e.stopLocked()
	e.setPlayingLocked(false)
}

// Playing reports whether an utterance is in flight.
func (e *CommandEngine) Playing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playing
}

func (e *CommandEngine) stopLocked() {
	if e.cmd != nil && e.cmd.Process != nil {
		_ = e.cmd.Process.Kill()
	}
	e.cmd = nil
}

func (e *CommandEngine) setPlayingLocked(playing bool) {
	if e.playing == playing {
		return
	}
	e.playing = playing
	if e.notify != nil {
		go e.notify(playing)
	}
}
