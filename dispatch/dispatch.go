// Package dispatch turns a parsed element list into an external process
// invocation: flatten the top-level names into an argument vector, then
// spawn and wait.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anas-azouane/RustyParser/taglang"
)

// ErrNoCommand reports an empty argument vector. It is a user-visible
// condition, not a crash.
var ErrNoCommand = errors.New("no command to run")

// Flatten projects each top-level element to its name, in order.
// Attributes and nested children are discarded entirely; the projection
// is lossy and one-directional. The first token is the program to
// execute, the rest are its arguments.
func Flatten(elements []taglang.Element) []string {
	argv := make([]string, 0, len(elements))
	for _, el := range elements {
		argv = append(argv, el.Name)
	}
	return argv
}

// Invocation is a single command run: an argument vector plus a unique ID
// used to correlate log lines.
type Invocation struct {
	ID   uuid.UUID
	Argv []string
}

// NewInvocation wraps argv with a fresh ID.
func NewInvocation(argv []string) Invocation {
	return Invocation{ID: uuid.New(), Argv: argv}
}

func (inv Invocation) String() string {
	return strings.Join(inv.Argv, " ")
}

// Runner spawns invocations and waits for them.
type Runner struct {
	Timeout time.Duration // zero means no limit
	Stdin   io.Reader     // defaults to os.Stdin
	Stdout  io.Writer     // defaults to os.Stdout
	Stderr  io.Writer     // defaults to os.Stderr
	Verbose bool
}

// Run executes the invocation and waits for it to finish. The child's
// exit status is returned as exitCode; a non-zero status is not an error.
// The error return covers the runner's own failures: empty argv, spawn
// failure, timeout.
func (r *Runner) Run(ctx context.Context, inv Invocation) (exitCode int, err error) {
	if len(inv.Argv) == 0 {
		return 0, ErrNoCommand
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, inv.Argv[0], inv.Argv[1:]...)
	cmd.Stdin = r.stdin()
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()

	if r.Verbose {
		fmt.Fprintf(r.stderr(), "[run %s] %s\n", shortID(inv.ID), inv)
	}

	runErr := cmd.Run()
	if runErr == nil {
		return 0, nil
	}

	if ctx.Err() == context.DeadlineExceeded {
		return 0, fmt.Errorf("command timed out after %s", r.Timeout)
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return 0, fmt.Errorf("running %s: %w", inv.Argv[0], runErr)
}

func (r *Runner) stdin() io.Reader {
	if r.Stdin != nil {
		return r.Stdin
	}
	return os.Stdin
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
