// Package render turns resolved option values into styled status
// lines. Formatting is pure; the only I/O happens in the value sources
// (git queries, host lookups) injected into the Renderer.
package render

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/statline/internal/git"
	"github.com/chmouel/statline/internal/options"
	"github.com/chmouel/statline/internal/pathutil"
	"github.com/chmouel/statline/internal/sysinfo"
	"github.com/chmouel/statline/internal/theme"
)

// Style holds the presentation flags. They only affect how values are
// drawn, never the values themselves.
type Style struct {
	Underline      bool // underline the value text
	NerdFonts      bool // use the Nerd Font glyph set
	IconsSecondary bool // draw icons in the dim secondary color
}

// Renderer renders status lines for a working directory.
type Renderer struct {
	resolver *git.Resolver
	theme    *theme.Theme

	// Value sources, overridable in tests.
	now      func() time.Time
	uptime   func() (time.Duration, error)
	username func() (string, error)
	platform func() string
}

// New returns a Renderer backed by the given git resolver and theme.
func New(resolver *git.Resolver, th *theme.Theme) *Renderer {
	return &Renderer{
		resolver: resolver,
		theme:    th,
		now:      time.Now,
		uptime:   sysinfo.Uptime,
		username: sysinfo.Username,
		platform: sysinfo.Platform,
	}
}

// Render produces one line per requested option, in request order.
// Git-backed options are silently skipped when dir is not a
// repository; any other git failure aborts the render. The git status
// is computed at most once per call no matter how many options need
// it.
func (r *Renderer) Render(ctx context.Context, ids []options.ID, dir string, style Style) ([]string, error) {
	gitStatus := r.memoizedStatus(ctx, dir)

	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		spec, ok := options.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("unknown option %q", id)
		}

		if options.IsGit(id) {
			st, err := gitStatus()
			if err != nil {
				if errors.Is(err, git.ErrNotRepository) {
					continue
				}
				return nil, err
			}
			lines = append(lines, r.formatLine(spec, gitValue(id, st), dir, style))
			continue
		}

		value, err := r.value(id, dir)
		if err != nil {
			return nil, err
		}
		lines = append(lines, r.formatLine(spec, value, dir, style))
	}
	return lines, nil
}

// memoizedStatus wraps the resolver in an explicit compute-once
// closure scoped to a single Render call.
func (r *Renderer) memoizedStatus(ctx context.Context, dir string) func() (git.Status, error) {
	var (
		cached git.Status
		err    error
		done   bool
	)
	return func() (git.Status, error) {
		if !done {
			cached, err = r.resolver.Status(ctx, dir)
			done = true
		}
		return cached, err
	}
}

func (r *Renderer) value(id options.ID, dir string) (string, error) {
	switch id {
	case options.CwdPath:
		return pathutil.Display(dir), nil
	case options.CwdPathAbsolute:
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", dir, err)
		}
		return filepath.Clean(abs), nil
	case options.Platform:
		return r.platform(), nil
	case options.User:
		return r.username()
	case options.Time:
		return r.now().Format("3:04 pm"), nil
	case options.Time24:
		return r.now().Format("15:04"), nil
	case options.Date:
		return r.now().Format("Monday, January 2, 2006"), nil
	case options.DateTime:
		return r.now().Format("Monday, January 2, 2006 3:04 pm"), nil
	case options.DateTime24:
		return r.now().Format("Monday, January 2, 2006 15:04"), nil
	case options.NodeV:
		return sysinfo.RuntimeVersion(), nil
	case options.Uptime:
		d, err := r.uptime()
		if err != nil {
			return "", err
		}
		return sysinfo.FormatUptime(d), nil
	default:
		return "", fmt.Errorf("no value source for option %q", id)
	}
}

func gitValue(id options.ID, st git.Status) string {
	switch id {
	case options.GitBranch:
		return st.Branch
	case options.GitDirty:
		if st.Dirty {
			return "dirty"
		}
		return "clean"
	case options.GitAheadBehind:
		if st.Ahead == 0 && st.Behind == 0 {
			return "up to date"
		}
		return fmt.Sprintf("↑%d ↓%d", st.Ahead, st.Behind)
	default:
		return ""
	}
}

// formatLine draws one status line: icon, space, styled value.
func (r *Renderer) formatLine(spec options.Spec, value, dir string, style Style) string {
	color := r.categoryColor(spec.Category)

	icon := spec.Icon
	if style.NerdFonts {
		icon = spec.NerdIcon
		if spec.Category == options.CategoryPath {
			if di := dirIcon(dir); di != "" {
				icon = di
			}
		}
	}

	iconColor := color
	if style.IconsSecondary {
		iconColor = r.theme.Dim
	}

	iconStyle := lipgloss.NewStyle().Foreground(iconColor)
	valueStyle := lipgloss.NewStyle().Foreground(color).Underline(style.Underline)

	return iconStyle.Render(icon) + " " + valueStyle.Render(value)
}

func (r *Renderer) categoryColor(c options.Category) lipgloss.Color {
	switch c {
	case options.CategoryPath:
		return r.theme.Path
	case options.CategoryGit:
		return r.theme.Git
	case options.CategoryClock:
		return r.theme.Clock
	default:
		return r.theme.System
	}
}
