package speech

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"sync"

	"tripmate/internal/config"
	"tripmate/internal/logging"
)

// CommandRecognizer runs an external transcriber executable (a
// whisper-style CLI that captures the microphone until interrupted and
// prints the final transcript on stdout). Availability is probed once
// at construction; a missing executable yields a recognizer that is
// permanently unsupported rather than one that fails on use.
type CommandRecognizer struct {
	command string
	args    []string
	onEvent func(Event)

	mu        sync.Mutex
	supported bool
	listening bool
	cancel    context.CancelFunc
}

// NewCommandRecognizer probes cfg.Command and wires session events to
// onEvent. Events fire from a background goroutine.
func NewCommandRecognizer(cfg config.SpeechConfig, onEvent func(Event)) *CommandRecognizer {
	if onEvent == nil {
		onEvent = func(Event) {}
	}

	args := cfg.Args
	if cfg.Language != "" {
		args = append(append([]string{}, args...), "--language", cfg.Language)
	}

	r := &CommandRecognizer{
		command: cfg.Command,
		args:    args,
		onEvent: onEvent,
	}
	if cfg.Command != "" {
		if _, err := exec.LookPath(cfg.Command); err == nil {
			r.supported = true
		} else {
			logging.Info("transcriber command not found, speech disabled", "command", cfg.Command)
		}
	}
	return r
}

// Supported reports whether the transcriber executable was found.
func (r *CommandRecognizer) Supported() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.supported
}

// Listening reports whether a session is active.
func (r *CommandRecognizer) Listening() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listening
}

// Start begins a listening session.
func (r *CommandRecognizer) Start(ctx context.Context) error {
	r.mu.Lock()
	if !r.supported {
		r.mu.Unlock()
		return ErrUnsupported
	}
	if r.listening {
		r.mu.Unlock()
		return ErrBusy
	}
	sessionCtx, cancel := context.WithCancel(ctx)
	r.listening = true
	r.cancel = cancel
	r.mu.Unlock()

	go r.listen(sessionCtx)
	return nil
}

// Stop requests the active session to finish. The transcriber flushes
// its final transcript on interrupt.
func (r *CommandRecognizer) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (r *CommandRecognizer) listen(ctx context.Context) {
	defer func() {
		r.mu.Lock()
		r.listening = false
		r.cancel = nil
		r.mu.Unlock()
	}()

	cmd := exec.CommandContext(ctx, r.command, r.args...)
	cmd.Cancel = func() error {
		// Interrupt, don't kill: the transcriber prints the final
		// transcript while shutting down.
		return cmd.Process.Signal(os.Interrupt)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.onEvent(Event{Kind: EventStart})

	err := cmd.Run()
	transcript := strings.TrimSpace(stdout.String())

	// A stop-interrupted run that produced a transcript is a success.
	if err != nil && transcript == "" {
		logging.Warn("transcriber failed", "error", err, "stderr", stderr.String())
		r.onEvent(Event{Kind: EventError, Err: err})
		return
	}
	if transcript == "" {
		r.onEvent(Event{Kind: EventError, Err: ErrNoSpeech})
		return
	}
	r.onEvent(Event{Kind: EventResult, Transcript: transcript})
}
