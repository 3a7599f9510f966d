// Package git resolves branch, dirtiness, and ahead/behind state for a
// working directory by shelling out to the git binary.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/chmouel/statline/internal/log"
)

// Runner abstracts git command execution so the resolver can be tested
// without a git binary or a real repository.
type Runner interface {
	// Run executes git with the given arguments in dir and returns its
	// standard output. A non-zero exit is returned as an *ExitError.
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// ExitError reports a git invocation that exited non-zero.
type ExitError struct {
	Args   []string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("git %s exited %d", strings.Join(e.Args, " "), e.Code)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// ExitCode returns the git exit code carried by err, or -1 when err is
// not an ExitError.
func ExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return -1
}

// ExecRunner runs real git commands via os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	log.Printf("run: git %s (cwd=%s)", strings.Join(args, " "), dir)
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		var execErr *exec.ExitError
		if errors.As(err, &execErr) {
			return "", &ExitError{Args: args, Code: execErr.ExitCode(), Stderr: string(execErr.Stderr)}
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return string(out), nil
}

// FakeRunner is a test double returning canned output keyed by the
// joined argument list.
type FakeRunner struct {
	Outputs map[string]string
	Errors  map[string]error
	Calls   []string
}

// Run implements Runner.
func (r *FakeRunner) Run(_ context.Context, _ string, args ...string) (string, error) {
	key := strings.Join(args, " ")
	r.Calls = append(r.Calls, key)
	if err, ok := r.Errors[key]; ok {
		return "", err
	}
	if out, ok := r.Outputs[key]; ok {
		return out, nil
	}
	return "", fmt.Errorf("FakeRunner: no output for %q", key)
}
