package adapter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"time"

	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

const (
	stderrTailSize = 4 << 10
	waitDelay      = 5 * time.Second
)

// Command is one external program invocation. Args reach the program verbatim;
// no shell ever parses them.
type Command struct {
	Program string
	Args    []string
	Dir     string
}

// String renders the command for logs and reports.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Program
	}

	return c.Program + " " + strings.Join(c.Args, " ")
}

// CommandRunnerAdapter abstracts process execution for the pipeline stages.
type CommandRunnerAdapter interface {
	// Run blocks until the command exits. A non-zero exit status or a failure
	// to start yields a *model.CommandError.
	Run(ctx context.Context, command Command) error
}

// LocalCommandRunnerAdapter runs commands with os/exec.
type LocalCommandRunnerAdapter struct {
	stdout  io.Writer
	stderr  io.Writer
	timeout time.Duration
}

// NewLocalCommandRunnerAdapter constructs a runner that streams the child's
// stdout and stderr into the given writers. A zero timeout disables the
// per-command deadline.
func NewLocalCommandRunnerAdapter(stdout, stderr io.Writer, timeout time.Duration) *LocalCommandRunnerAdapter {
	if stdout == nil {
		stdout = io.Discard
	}

	if stderr == nil {
		stderr = io.Discard
	}

	return &LocalCommandRunnerAdapter{
		stdout:  stdout,
		stderr:  stderr,
		timeout: timeout,
	}
}

// Run executes the command and waits for it.
func (a *LocalCommandRunnerAdapter) Run(ctx context.Context, command Command) error {
	if strings.TrimSpace(command.Program) == "" {
		return &m.CommandError{Args: command.Args, ExitCode: -1, Err: errors.New("no program given")}
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	tail := newTailBuffer(stderrTailSize)

	cmd := exec.CommandContext(ctx, command.Program, command.Args...)
	cmd.Dir = command.Dir
	cmd.Stdout = a.stdout
	cmd.Stderr = io.MultiWriter(a.stderr, tail)
	cmd.WaitDelay = waitDelay

	slog.Debug("Running command", "command", command.String(), "dir", command.Dir)

	started := time.Now()
	err := cmd.Run()

	if err == nil {
		slog.Debug("Command finished", "program", command.Program, "duration", time.Since(started))
		return nil
	}

	cmdErr := &m.CommandError{
		Program:  command.Program,
		Args:     command.Args,
		ExitCode: -1,
		Stderr:   tail.String(),
	}

	var exitErr *exec.ExitError

	switch {
	case ctx.Err() != nil:
		cmdErr.Err = ctx.Err()
	case errors.As(err, &exitErr):
		cmdErr.ExitCode = exitErr.ExitCode()
	default:
		cmdErr.Err = err
	}

	slog.Error("Command failed", "command", command.String(), "exitCode", cmdErr.ExitCode, "error", err)

	return cmdErr
}

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	mu  sync.Mutex
	max int
	buf []byte
}

func newTailBuffer(limit int) *tailBuffer {
	return &tailBuffer{max: limit}
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.max; over > 0 {
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}

	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return string(t.buf)
}
