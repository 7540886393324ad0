package beamer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovetskiy/decker/figure"
	"github.com/kovetskiy/decker/highlight"
	"github.com/kovetskiy/decker/includes"
)

type fakeLocator struct {
	path string
}

func (locator fakeLocator) Path(name string) (string, error) {
	return locator.path, nil
}

func newTestResolver() *Resolver {
	return NewResolver(
		highlight.DefaultRegistry(),
		fakeLocator{path: "/usr/share/decker/rmd/beamer/default.tex"},
	)
}

func TestResolve_Defaults(t *testing.T) {
	resolver := newTestResolver()

	format, err := resolver.Resolve(DefaultOptions())
	require.NoError(t, err)

	assert.Equal(
		t,
		[]string{"--template", "/usr/share/decker/rmd/beamer/default.tex"},
		format.PandocArgs,
	)
	assert.Equal(t, figure.DefaultOptions(), format.Figure)
	assert.Equal(
		t,
		figure.Options{Width: 10, Height: 7, Crop: true, Device: "pdf"},
		format.Figure,
	)
	assert.True(t, format.CleanSupporting)
}

func TestResolve_Pure(t *testing.T) {
	resolver := newTestResolver()

	opts := DefaultOptions()
	opts.TOC = true
	opts.SlideLevel = 3
	opts.Theme = Theme("metropolis")
	opts.Highlight = "zenburn"
	opts.ExtraArgs = []string{"--pdf-engine", "xelatex"}

	first, err := resolver.Resolve(opts)
	require.NoError(t, err)

	second, err := resolver.Resolve(opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolve_TOC(t *testing.T) {
	resolver := newTestResolver()

	opts := DefaultOptions()

	without, err := resolver.Resolve(opts)
	require.NoError(t, err)

	opts.TOC = true

	with, err := resolver.Resolve(opts)
	require.NoError(t, err)

	assert.Equal(t, len(without.PandocArgs)+1, len(with.PandocArgs))
	assert.Contains(t, with.PandocArgs, "--table-of-contents")
	assert.NotContains(t, without.PandocArgs, "--table-of-contents")

	// other tokens keep their relative order
	assert.Equal(t, without.PandocArgs[:2], with.PandocArgs[:2])
}

func TestResolve_SlideLevel(t *testing.T) {
	resolver := newTestResolver()

	opts := DefaultOptions()
	opts.SlideLevel = 2

	format, err := resolver.Resolve(opts)
	require.NoError(t, err)

	index := indexOf(format.PandocArgs, "--slide-level")
	require.GreaterOrEqual(t, index, 0)
	assert.Equal(t, "2", format.PandocArgs[index+1])

	opts.SlideLevel = 0

	format, err = resolver.Resolve(opts)
	require.NoError(t, err)

	assert.NotContains(t, format.PandocArgs, "--slide-level")
}

func TestResolve_Incremental(t *testing.T) {
	resolver := newTestResolver()

	opts := DefaultOptions()
	opts.Incremental = true

	format, err := resolver.Resolve(opts)
	require.NoError(t, err)

	assert.Contains(t, format.PandocArgs, "--incremental")
}

func TestResolve_ThemeSentinel(t *testing.T) {
	resolver := newTestResolver()

	tests := map[string]struct {
		opts     func() Options
		expected []string
	}{
		"default themes emit nothing": {
			opts: func() Options {
				return DefaultOptions()
			},
			expected: nil,
		},
		"custom theme emits one binding": {
			opts: func() Options {
				opts := DefaultOptions()
				opts.Theme = Theme("dolphin")
				return opts
			},
			expected: []string{"--variable", "theme=dolphin"},
		},
		"theme literally named default still emits": {
			opts: func() Options {
				opts := DefaultOptions()
				opts.Theme = Theme("default")
				return opts
			},
			expected: []string{"--variable", "theme=default"},
		},
		"all three bind in order": {
			opts: func() Options {
				opts := DefaultOptions()
				opts.Theme = Theme("Berlin")
				opts.ColorTheme = Theme("crane")
				opts.FontTheme = Theme("structurebold")
				return opts
			},
			expected: []string{
				"--variable", "theme=Berlin",
				"--variable", "colortheme=crane",
				"--variable", "fonttheme=structurebold",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			format, err := resolver.Resolve(tt.opts())
			require.NoError(t, err)

			// strip the leading template pair
			assert.Equal(t, tt.expected, trimPrefixArgs(format.PandocArgs))
		})
	}
}

func TestResolve_Highlight(t *testing.T) {
	resolver := newTestResolver()

	t.Run("default emits nothing", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Highlight = highlight.StyleDefault

		format, err := resolver.Resolve(opts)
		require.NoError(t, err)

		assert.NotContains(t, format.PandocArgs, "--highlight-style")
		assert.NotContains(t, format.PandocArgs, "--no-highlight")
	})

	t.Run("none disables highlighting", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Highlight = highlight.StyleNone

		format, err := resolver.Resolve(opts)
		require.NoError(t, err)

		assert.Contains(t, format.PandocArgs, "--no-highlight")
	})

	t.Run("supported style is selected", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Highlight = "tango"

		format, err := resolver.Resolve(opts)
		require.NoError(t, err)

		index := indexOf(format.PandocArgs, "--highlight-style")
		require.GreaterOrEqual(t, index, 0)
		assert.Equal(t, "tango", format.PandocArgs[index+1])
	})

	t.Run("unsupported style fails", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Highlight = "not-a-real-style"

		_, err := resolver.Resolve(opts)
		require.Error(t, err)

		var styleErr highlight.UnsupportedStyleError
		require.ErrorAs(t, err, &styleErr)
		assert.Equal(t, "not-a-real-style", styleErr.Style)
		assert.Contains(t, styleErr.Supported, "tango")
	})
}

func TestResolve_Template(t *testing.T) {
	resolver := newTestResolver()

	t.Run("custom template never references the bundled path", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Template = TemplateFile("/my/template.tex")

		format, err := resolver.Resolve(opts)
		require.NoError(t, err)

		assert.Equal(
			t,
			[]string{"--template", "/my/template.tex"},
			format.PandocArgs,
		)
	})

	t.Run("no template suppresses the argument", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Template = NoTemplate()

		format, err := resolver.Resolve(opts)
		require.NoError(t, err)

		assert.NotContains(t, format.PandocArgs, "--template")
	})
}

func TestResolve_KeepTexInversion(t *testing.T) {
	resolver := newTestResolver()

	opts := DefaultOptions()
	opts.KeepTex = true

	format, err := resolver.Resolve(opts)
	require.NoError(t, err)
	assert.False(t, format.CleanSupporting)

	opts.KeepTex = false

	format, err = resolver.Resolve(opts)
	require.NoError(t, err)
	assert.True(t, format.CleanSupporting)
}

func TestResolve_IncludesAndExtraArgs(t *testing.T) {
	resolver := newTestResolver()

	opts := DefaultOptions()
	opts.Includes = includes.ContentIncludes{
		BeforeBody: []string{"intro.tex"},
		InHeader:   []string{"header.tex"},
		AfterBody:  []string{"outro.tex"},
	}
	opts.ExtraArgs = []string{"--pdf-engine", "xelatex", "--listings"}

	format, err := resolver.Resolve(opts)
	require.NoError(t, err)

	assert.Equal(
		t,
		[]string{
			"--include-before-body", "intro.tex",
			"--include-in-header", "header.tex",
			"--include-after-body", "outro.tex",
			"--pdf-engine", "xelatex", "--listings",
		},
		trimPrefixArgs(format.PandocArgs),
	)
}

func TestResolve_FigureForwarding(t *testing.T) {
	resolver := newTestResolver()

	opts := DefaultOptions()
	opts.Figure = figure.Options{
		Width:   4.5,
		Height:  3,
		Crop:    false,
		Device:  "png",
		Caption: true,
	}

	format, err := resolver.Resolve(opts)
	require.NoError(t, err)

	assert.Equal(t, opts.Figure, format.Figure)
}

func indexOf(args []string, token string) int {
	for i, arg := range args {
		if arg == token {
			return i
		}
	}

	return -1
}

// trimPrefixArgs drops the leading --template pair shared by every
// resolution with the bundled template.
func trimPrefixArgs(args []string) []string {
	if len(args) <= 2 {
		return nil
	}

	return args[2:]
}
