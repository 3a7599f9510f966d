package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/statline/internal/config"
	"github.com/chmouel/statline/internal/git"
	"github.com/chmouel/statline/internal/log"
	"github.com/chmouel/statline/internal/options"
	"github.com/chmouel/statline/internal/render"
	"github.com/chmouel/statline/internal/theme"
	"github.com/chmouel/statline/internal/watch"
	"github.com/muesli/reflow/wordwrap"
	urfavecli "github.com/urfave/cli/v3"
	"golang.org/x/term"
)

func run(ctx context.Context, cmd *urfavecli.Command) error {
	cfg, err := config.Load(cmd.String("config-file"))
	if err != nil {
		return err
	}

	debugLog := cmd.String("debug-log")
	if debugLog == "" {
		debugLog = cfg.DebugLog
	}
	if err := log.SetFile(debugLog); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", debugLog, err)
	}
	defer func() { _ = log.Close() }()

	if cmd.Bool("options") {
		fmt.Print(optionsListing(stdoutWidth()))
		return nil
	}

	// Validation happens before any rendering side effect.
	ids, err := options.Resolve(options.Request{
		Include:        splitList(cmd.StringSlice("include")),
		Exclude:        splitList(cmd.StringSlice("exclude")),
		All:            cmd.Bool("all"),
		Defaults:       cfg.Options,
		IgnoreDefaults: cmd.Bool("ignore-defaults"),
	})
	if err != nil {
		return err
	}

	style := styleFromFlags(cmd, cfg)

	themeName := cfg.Theme
	if cmd.IsSet("theme") {
		themeName = cmd.String("theme")
	}
	th := theme.ByName(themeName)

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determining working directory: %w", err)
	}

	runner := git.ExecRunner{}
	renderer := render.New(git.NewResolver(runner), th)

	if cmd.Bool("watch") {
		return runWatch(ctx, renderer, runner, th, ids, dir, style)
	}

	lines, err := renderer.Render(ctx, ids, dir, style)
	if err != nil {
		return err
	}
	if len(lines) > 0 {
		fmt.Println(strings.Join(lines, "\n"))
	}
	return nil
}

// styleFromFlags merges the style settings. cfg already carries the
// environment overrides on top of the file, so precedence is explicit
// flag over environment over file over default.
func styleFromFlags(cmd *urfavecli.Command, cfg *config.Config) render.Style {
	style := render.Style{
		Underline:      cfg.Underline,
		NerdFonts:      cfg.NerdFonts,
		IconsSecondary: cfg.IconsSecondary,
	}
	if cmd.IsSet("underline") {
		style.Underline = cmd.Bool("underline")
	}
	if cmd.IsSet("nerdfonts") {
		style.NerdFonts = cmd.Bool("nerdfonts")
	}
	if cmd.IsSet("icons-secondary") {
		style.IconsSecondary = cmd.Bool("icons-secondary")
	}
	return style
}

func runWatch(ctx context.Context, renderer *render.Renderer, runner git.Runner, th *theme.Theme, ids []options.ID, dir string, style render.Style) error {
	watcher := watch.NewWatcher()
	if commonDir := resolveGitCommonDir(ctx, runner, dir); commonDir != "" {
		if err := watcher.Start(commonDir); err != nil {
			log.Printf("starting git watcher: %v", err)
		}
	}
	defer watcher.Stop()

	model := watch.NewModel(func(ctx context.Context) ([]string, error) {
		return renderer.Render(ctx, ids, dir, style)
	}, watcher, th)

	p := tea.NewProgram(model, tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// resolveGitCommonDir returns the repository's common git directory, or
// "" outside a repository.
func resolveGitCommonDir(ctx context.Context, runner git.Runner, dir string) string {
	out, err := runner.Run(ctx, dir, "rev-parse", "--git-common-dir")
	if err != nil {
		return ""
	}
	commonDir := strings.TrimSpace(out)
	if commonDir == "" {
		return ""
	}
	if filepath.IsAbs(commonDir) {
		return commonDir
	}
	return filepath.Join(dir, commonDir)
}

// splitList flattens repeatable flag values, splitting each on commas
// and whitespace.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		parts := strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		out = append(out, parts...)
	}
	return out
}

const listingIndent = 20

// optionsListing renders the --options table, wrapping descriptions to
// the terminal width.
func optionsListing(width int) string {
	if width < listingIndent+20 {
		width = 80
	}

	var b strings.Builder
	pad := strings.Repeat(" ", listingIndent)
	for _, spec := range options.Registry() {
		wrapped := wordwrap.String(spec.Description, width-listingIndent)
		lines := strings.Split(wrapped, "\n")
		fmt.Fprintf(&b, "%-*s%s\n", listingIndent, string(spec.ID), lines[0])
		for _, line := range lines[1:] {
			b.WriteString(pad + line + "\n")
		}
	}
	return b.String()
}

func stdoutWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
