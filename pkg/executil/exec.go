// Package executil provides executable lookup and subprocess capture.
package executil

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const maxStderrLen = 500

// waitDelay bounds how long Output waits for orphaned children holding the
// output pipes after the context is done.
const waitDelay = 2 * time.Second

// limitedWriter caps writes to a bytes.Buffer at a maximum byte count.
// Bytes beyond the limit are silently discarded.
type limitedWriter struct {
	buf *bytes.Buffer
	n   int64
	max int64
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if w.n >= w.max {
		return len(p), nil
	}
	remaining := w.max - w.n
	origLen := len(p)
	if int64(origLen) > remaining {
		p = p[:remaining]
	}
	n, err := w.buf.Write(p)
	w.n += int64(n)
	if err != nil {
		return n, err
	}
	return origLen, nil
}

// Executor locates and runs external programs.
type Executor interface {
	// LookPath searches the process search path for an executable named file.
	LookPath(file string) (string, error)
	// Output runs cmd and returns its standard output. Standard error is
	// not part of the returned bytes.
	Output(ctx context.Context, cmd string, args ...string) ([]byte, error)
}

// RealExecutor calls actual programs.
type RealExecutor struct{}

// LookPath wraps exec.LookPath. Misses wrap exec.ErrNotFound.
func (e *RealExecutor) LookPath(file string) (string, error) {
	path, err := exec.LookPath(file)
	if err != nil {
		return "", fmt.Errorf("lookup %s: %w", file, err)
	}
	return path, nil
}

// Output executes a command and returns stdout. On failure the stdout read so
// far is still returned, and stderr (capped at 500 bytes) is folded into the
// error message. The original *exec.ExitError is preserved via wrapping so
// callers can inspect exit codes with errors.As.
func (e *RealExecutor) Output(ctx context.Context, cmd string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	c := exec.CommandContext(ctx, cmd, args...)
	c.Stdout = &stdout
	c.Stderr = &limitedWriter{buf: &stderr, max: maxStderrLen}
	c.WaitDelay = waitDelay

	if err := c.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return stdout.Bytes(), fmt.Errorf("exec %s: %s: %w", cmd, msg, err)
		}
		return stdout.Bytes(), fmt.Errorf("exec %s: %w", cmd, err)
	}

	return stdout.Bytes(), nil
}
