// Package main provides CLI flag definitions for statline.
package main

import (
	"github.com/chmouel/statline/internal/config"
	urfavecli "github.com/urfave/cli/v3"
)

// globalFlags returns all flags for the application.
// Note: --version/-v is provided automatically by urfave/cli.
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringSliceFlag{
			Name:    "include",
			Aliases: []string{"i"},
			Usage:   "Options to render (comma or space separated, repeatable)",
		},
		&urfavecli.StringSliceFlag{
			Name:    "exclude",
			Aliases: []string{"e"},
			Usage:   "Options to leave out of the selection",
		},
		&urfavecli.BoolFlag{
			Name:    "all",
			Aliases: []string{"a"},
			Usage:   "Render every known option, ignoring include/exclude/defaults",
		},
		&urfavecli.BoolFlag{
			Name:    "ignore-defaults",
			Aliases: []string{"I"},
			Usage:   "Skip the " + config.EnvOptions + " default option list",
		},
		// The style env vars are read in internal/config, not via flag
		// Sources, so word values like "yes" keep working.
		&urfavecli.BoolFlag{
			Name:    "underline",
			Aliases: []string{"u"},
			Usage:   "Underline the value of each line [$" + config.EnvUnderline + "]",
		},
		&urfavecli.BoolFlag{
			Name:    "nerdfonts",
			Aliases: []string{"nf"},
			Usage:   "Use Nerd Font glyphs for icons [$" + config.EnvNerdFonts + "]",
		},
		&urfavecli.BoolFlag{
			Name:    "icons-secondary",
			Aliases: []string{"dimsym"},
			Usage:   "Draw icons in the dim secondary color [$" + config.EnvIconsSecondary + "]",
		},
		&urfavecli.BoolFlag{
			Name:    "options",
			Aliases: []string{"ls"},
			Usage:   "List every option identifier with its description and exit",
		},
		&urfavecli.BoolFlag{
			Name:    "watch",
			Aliases: []string{"w"},
			Usage:   "Keep running and refresh the lines live",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Color theme name",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
	}
}
