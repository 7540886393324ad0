package util

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/kovetskiy/decker/beamer"
)

func optionsForArgs(t *testing.T, args []string) beamer.Options {
	t.Helper()

	var opts beamer.Options

	cmd := &cli.Command{
		Name:  "decker",
		Flags: Flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts = OptionsFromCommand(cmd)
			return nil
		},
	}

	err := cmd.Run(context.Background(), append([]string{"decker"}, args...))
	require.NoError(t, err)

	return opts
}

func TestOptionsFromCommand_Defaults(t *testing.T) {
	opts := optionsForArgs(t, nil)

	assert.Equal(t, beamer.DefaultOptions(), opts)
}

func TestOptionsFromCommand(t *testing.T) {
	opts := optionsForArgs(t, []string{
		"--toc",
		"--slide-level", "2",
		"--incremental",
		"--theme", "metropolis",
		"--highlight-style", "zenburn",
		"--template", "/my/template.tex",
		"--keep-tex",
		"--fig-width", "8",
		"--fig-caption",
		"--include-in-header", "preamble.tex",
		"--pandoc-arg", "--pdf-engine",
		"--pandoc-arg", "xelatex",
	})

	assert.True(t, opts.TOC)
	assert.Equal(t, 2, opts.SlideLevel)
	assert.True(t, opts.Incremental)

	theme, custom := opts.Theme.Custom()
	assert.True(t, custom)
	assert.Equal(t, "metropolis", theme)

	_, custom = opts.ColorTheme.Custom()
	assert.False(t, custom)

	assert.Equal(t, "zenburn", opts.Highlight)

	path, ok := opts.Template.File()
	assert.True(t, ok)
	assert.Equal(t, "/my/template.tex", path)

	assert.True(t, opts.KeepTex)
	assert.Equal(t, 8.0, opts.Figure.Width)
	assert.Equal(t, 7.0, opts.Figure.Height)
	assert.True(t, opts.Figure.Caption)
	assert.Equal(t, []string{"preamble.tex"}, opts.Includes.InHeader)
	assert.Equal(t, []string{"--pdf-engine", "xelatex"}, opts.ExtraArgs)
}

func TestOptionsFromCommand_TemplateNone(t *testing.T) {
	opts := optionsForArgs(t, []string{"--template", "none"})

	_, isFile := opts.Template.File()
	assert.False(t, isFile)
	assert.False(t, opts.Template.Bundled())
}
