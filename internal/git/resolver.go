package git

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotRepository is returned by Status when the directory is not
// inside a git working tree.
var ErrNotRepository = errors.New("not a git repository")

// Status is the resolved repository state for one invocation.
type Status struct {
	Branch  string
	Dirty   bool
	Ahead   int
	Behind  int
	IsFresh bool // repository has zero commits
}

// Resolver answers repository queries for a working directory. All
// sub-queries of one Status call target the same directory; the
// repository is assumed not to change concurrently during the call.
type Resolver struct {
	runner Runner
}

// NewResolver returns a Resolver backed by the given runner.
func NewResolver(runner Runner) *Resolver {
	return &Resolver{runner: runner}
}

// IsRepository reports whether dir is inside a git working tree. Use
// Status to distinguish a missing repository from a tool failure.
func (r *Resolver) IsRepository(ctx context.Context, dir string) bool {
	_, err := r.porcelain(ctx, dir)
	return err == nil
}

// porcelain runs `git status --porcelain` once, answering both "is this
// a repository" and "is it dirty" from the same output. A git exit
// failure means no repository; an error spawning git propagates as-is.
func (r *Resolver) porcelain(ctx context.Context, dir string) (string, error) {
	out, err := r.runner.Run(ctx, dir, "status", "--porcelain")
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return "", ErrNotRepository
		}
		return "", err
	}
	return out, nil
}

// CommitCount returns the number of commits reachable from any ref.
func (r *Resolver) CommitCount(ctx context.Context, dir string) (int, error) {
	out, err := r.runner.Run(ctx, dir, "rev-list", "--all", "--count")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0, fmt.Errorf("parsing commit count %q: %w", strings.TrimSpace(out), err)
	}
	return n, nil
}

// RemoteBranchExists reports whether remote/branch is a known
// remote-tracking branch.
func (r *Resolver) RemoteBranchExists(ctx context.Context, dir, branch, remote string) bool {
	out, err := r.runner.Run(ctx, dir, "branch", "-r")
	if err != nil {
		return false
	}
	want := remote + "/" + branch
	for _, line := range strings.Split(out, "\n") {
		name := strings.TrimSpace(line)
		// "origin/HEAD -> origin/main" style aliases carry a suffix.
		if idx := strings.Index(name, " "); idx >= 0 {
			name = name[:idx]
		}
		if name == want {
			return true
		}
	}
	return false
}

// Status resolves branch, dirtiness, and ahead/behind divergence
// against origin. It fails with ErrNotRepository outside a repository;
// any other git failure propagates.
func (r *Resolver) Status(ctx context.Context, dir string) (Status, error) {
	porcelain, err := r.porcelain(ctx, dir)
	if err != nil {
		return Status{}, err
	}
	dirty := strings.TrimSpace(porcelain) != ""

	count, err := r.CommitCount(ctx, dir)
	if err != nil {
		return Status{}, err
	}

	hasOrigin, err := r.hasRemote(ctx, dir, "origin")
	if err != nil {
		return Status{}, err
	}

	if count == 0 {
		return r.freshStatus(ctx, dir, dirty, hasOrigin)
	}

	branch, err := r.currentBranch(ctx, dir)
	if err != nil {
		return Status{}, err
	}

	st := Status{Branch: branch, Dirty: dirty}
	if !hasOrigin {
		return st, nil
	}
	if !r.RemoteBranchExists(ctx, dir, branch, "origin") {
		// Nothing on the remote to compare against yet. Ahead is a
		// sentinel: there is local history the remote has never seen.
		st.Ahead = 1
		return st, nil
	}

	ahead, behind, err := r.aheadBehind(ctx, dir, branch)
	if err != nil {
		return Status{}, err
	}
	st.Ahead = ahead
	st.Behind = behind
	return st, nil
}

// freshStatus handles the zero-commit repository. There is no local
// history to diverge from, so ahead stays 0 and behind counts whatever
// the default remote branch carries, when it exists.
func (r *Resolver) freshStatus(ctx context.Context, dir string, dirty, hasOrigin bool) (Status, error) {
	branch := r.defaultBranch(ctx, dir)
	st := Status{Branch: branch, Dirty: dirty, IsFresh: true}
	if !hasOrigin || !r.RemoteBranchExists(ctx, dir, branch, "origin") {
		return st, nil
	}

	out, err := r.runner.Run(ctx, dir, "rev-list", "--count", "origin/"+branch)
	if err != nil {
		return Status{}, err
	}
	behind, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return Status{}, fmt.Errorf("parsing remote commit count %q: %w", strings.TrimSpace(out), err)
	}
	st.Behind = behind
	return st, nil
}

func (r *Resolver) hasRemote(ctx context.Context, dir, remote string) (bool, error) {
	out, err := r.runner.Run(ctx, dir, "remote")
	if err != nil {
		return false, err
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == remote {
			return true, nil
		}
	}
	return false, nil
}

func (r *Resolver) currentBranch(ctx context.Context, dir string) (string, error) {
	out, err := r.runner.Run(ctx, dir, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// defaultBranch returns the branch name a fresh repository will use for
// its first commit: init.defaultBranch when configured, else "master".
func (r *Resolver) defaultBranch(ctx context.Context, dir string) string {
	out, err := r.runner.Run(ctx, dir, "config", "--get", "init.defaultBranch")
	if err != nil || strings.TrimSpace(out) == "" {
		return "master"
	}
	return strings.TrimSpace(out)
}

// aheadBehind splits the symmetric difference between the local branch
// and its origin counterpart in a single query, so both counts come
// from one consistent snapshot.
func (r *Resolver) aheadBehind(ctx context.Context, dir, branch string) (int, int, error) {
	spec := branch + "...origin/" + branch
	out, err := r.runner.Run(ctx, dir, "rev-list", "--left-right", "--count", spec)
	if err != nil {
		return 0, 0, err
	}
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q", strings.TrimSpace(out))
	}
	ahead, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parsing ahead count %q: %w", fields[0], err)
	}
	behind, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parsing behind count %q: %w", fields[1], err)
	}
	return ahead, behind, nil
}
