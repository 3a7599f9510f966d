package render

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/statline/internal/git"
	"github.com/chmouel/statline/internal/options"
	"github.com/chmouel/statline/internal/theme"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
}

func testRenderer(runner git.Runner) *Renderer {
	r := New(git.NewResolver(runner), theme.Default())
	r.now = fixedClock
	r.uptime = func() (time.Duration, error) { return 26*time.Hour + 5*time.Minute, nil }
	r.username = func() (string, error) { return "alice", nil }
	r.platform = func() string { return "testos" }
	return r
}

func repoRunner() *git.FakeRunner {
	return &git.FakeRunner{Outputs: map[string]string{
		"status --porcelain":     " M main.go\n",
		"rev-list --all --count": "10",
		"remote":                 "origin\n",
		"branch --show-current":  "main\n",
		"branch -r":              "  origin/main\n",
		"rev-list --left-right --count main...origin/main": "1\t2\n",
	}}
}

func notARepoRunner() *git.FakeRunner {
	return &git.FakeRunner{Errors: map[string]error{
		"status --porcelain": &git.ExitError{Args: []string{"status", "--porcelain"}, Code: 128},
	}}
}

func freshRepoRunner() *git.FakeRunner {
	return &git.FakeRunner{
		Outputs: map[string]string{
			"status --porcelain":     "",
			"rev-list --all --count": "0",
			"remote":                 "",
		},
		Errors: map[string]error{
			"config --get init.defaultBranch": &git.ExitError{Args: []string{"config"}, Code: 1},
		},
	}
}

func TestRenderFullSetInRepository(t *testing.T) {
	r := testRenderer(repoRunner())

	lines, err := r.Render(context.Background(), options.All(), ".", Style{})
	require.NoError(t, err)
	assert.Len(t, lines, len(options.All()), "every option renders inside a repository")

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "main")
	assert.Contains(t, joined, "dirty")
	assert.Contains(t, joined, "↑1 ↓2")
	assert.Contains(t, joined, "alice")
	assert.Contains(t, joined, "testos")
	assert.Contains(t, joined, "1 day, 2 hours, 5 minutes")
	assert.Contains(t, joined, "14:30")
	assert.Contains(t, joined, "2:30 pm")
	assert.Contains(t, joined, "Tuesday, March 5, 2024")
}

func TestRenderFullSetOutsideRepository(t *testing.T) {
	r := testRenderer(notARepoRunner())

	lines, err := r.Render(context.Background(), options.All(), ".", Style{})
	require.NoError(t, err)

	var gitCount int
	for _, id := range options.All() {
		if options.IsGit(id) {
			gitCount++
		}
	}
	assert.Len(t, lines, len(options.All())-gitCount, "git lines are skipped, not errors")
	assert.NotEmpty(t, lines)
}

func TestRenderFullSetInFreshRepository(t *testing.T) {
	r := testRenderer(freshRepoRunner())

	lines, err := r.Render(context.Background(), options.All(), ".", Style{})
	require.NoError(t, err)
	assert.Len(t, lines, len(options.All()), "a fresh repository still reports git status")
	assert.Contains(t, strings.Join(lines, "\n"), "master")
}

func TestRenderPreservesRequestOrder(t *testing.T) {
	r := testRenderer(repoRunner())

	ids := []options.ID{options.User, options.GitBranch, options.Platform}
	lines, err := r.Render(context.Background(), ids, ".", Style{})
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "alice")
	assert.Contains(t, lines[1], "main")
	assert.Contains(t, lines[2], "testos")
}

func TestRenderMemoizesGitStatus(t *testing.T) {
	runner := repoRunner()
	r := testRenderer(runner)

	ids := []options.ID{options.GitBranch, options.GitDirty, options.GitAheadBehind}
	_, err := r.Render(context.Background(), ids, ".", Style{})
	require.NoError(t, err)

	var commitCountCalls int
	for _, call := range runner.Calls {
		if call == "rev-list --all --count" {
			commitCountCalls++
		}
	}
	assert.Equal(t, 1, commitCountCalls, "status resolved once per render call")
}

func TestRenderPropagatesGitFailure(t *testing.T) {
	runner := repoRunner()
	runner.Errors = map[string]error{
		"branch --show-current": &git.ExitError{Args: []string{"branch"}, Code: 129, Stderr: "boom"},
	}
	r := testRenderer(runner)

	_, err := r.Render(context.Background(), []options.ID{options.GitBranch}, ".", Style{})
	require.Error(t, err)
	assert.Equal(t, 129, git.ExitCode(err))
}

func TestGitValue(t *testing.T) {
	assert.Equal(t, "clean", gitValue(options.GitDirty, git.Status{}))
	assert.Equal(t, "dirty", gitValue(options.GitDirty, git.Status{Dirty: true}))
	assert.Equal(t, "up to date", gitValue(options.GitAheadBehind, git.Status{}))
	assert.Equal(t, "↑3 ↓0", gitValue(options.GitAheadBehind, git.Status{Ahead: 3}))
	assert.Equal(t, "feature", gitValue(options.GitBranch, git.Status{Branch: "feature"}))
}

func TestFormatLineStyleFlags(t *testing.T) {
	r := testRenderer(repoRunner())
	spec, ok := options.Lookup(options.User)
	require.True(t, ok)

	plain := r.formatLine(spec, "alice", ".", Style{})
	assert.Contains(t, plain, spec.Icon)
	assert.Contains(t, plain, "alice")

	nerd := r.formatLine(spec, "alice", ".", Style{NerdFonts: true})
	assert.Contains(t, nerd, spec.NerdIcon)
	assert.NotContains(t, nerd, spec.Icon)
}

func TestFormatLineStyleIsPresentationOnly(t *testing.T) {
	r := testRenderer(repoRunner())
	spec, _ := options.Lookup(options.Platform)

	for _, style := range []Style{{}, {Underline: true}, {IconsSecondary: true}} {
		line := r.formatLine(spec, "testos", ".", style)
		assert.Contains(t, line, "testos", "style flags never change the value")
	}
}
