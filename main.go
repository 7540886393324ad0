package main

import (
	"context"
	"os"

	"github.com/reconquest/pkg/log"
	"github.com/urfave/cli/v3"

	"github.com/kovetskiy/decker/util"
)

const (
	version     = "1.0.0"
	usage       = "A tool for rendering markdown slide decks to Beamer PDF via pandoc."
	description = `Decker takes markdown decks, resolves presentation options
(themes, table of contents, incremental bullets, syntax highlighting,
templates) into pandoc arguments, renders mermaid and d2 diagrams into
figures, and drives pandoc to produce a Beamer PDF.

Options can be given on the command line, through DECKER_* environment
variables, in a TOML configuration file, or per deck in YAML front matter:

  ---
  title: Quarterly Review
  theme: metropolis
  toc: true
  slide-level: 2
  ---

Documentation is available here: https://github.com/kovetskiy/decker`
)

func main() {
	cmd := &cli.Command{
		Name:                  "decker",
		Usage:                 usage,
		Description:           description,
		Version:               version,
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Flags:                 util.Flags,
		Action:                util.RunDecker,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
