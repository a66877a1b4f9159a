package executil

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
)

// RecordedCommand captures a command that was executed.
type RecordedCommand struct {
	Cmd  string
	Args []string
}

// RecordingExecutor captures commands for testing.
// Configure Paths, Outputs and Errors to control return values.
type RecordingExecutor struct {
	mu       sync.Mutex
	Commands []RecordedCommand

	// Paths maps executable names to the path LookPath reports.
	// Names missing from the map are reported as not found.
	Paths map[string]string

	// Outputs maps command names to their output.
	// Key is the command as passed to Output (e.g., "/usr/bin/php").
	Outputs map[string][]byte

	// Errors maps command names to their error.
	Errors map[string]error
}

// LookPath returns the configured path for file, or an error wrapping
// exec.ErrNotFound.
func (e *RecordingExecutor) LookPath(file string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if path, ok := e.Paths[file]; ok {
		return path, nil
	}
	return "", fmt.Errorf("lookup %s: %w", file, exec.ErrNotFound)
}

// Output records the command and returns configured output/error.
func (e *RecordingExecutor) Output(ctx context.Context, cmd string, args ...string) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.Commands = append(e.Commands, RecordedCommand{
		Cmd:  cmd,
		Args: args,
	})

	var out []byte
	var err error

	if e.Outputs != nil {
		out = e.Outputs[cmd]
	}
	if e.Errors != nil {
		err = e.Errors[cmd]
	}

	return out, err
}

// Calls returns a copy of the recorded commands.
func (e *RecordingExecutor) Calls() []RecordedCommand {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]RecordedCommand(nil), e.Commands...)
}

// Reset clears recorded commands.
func (e *RecordingExecutor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Commands = nil
}
