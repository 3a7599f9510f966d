// Package main is the entry point for the statline binary.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/chmouel/statline/internal/buildinfo"
	urfavecli "github.com/urfave/cli/v3"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date)
	buildinfo.Enrich()

	app := newApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newApp() *urfavecli.Command {
	return &urfavecli.Command{
		Name:    "statline",
		Usage:   "Print a colorized status line for the current directory",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Action:  run,
	}
}
