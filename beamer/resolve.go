package beamer

import (
	"fmt"
	"strconv"

	"github.com/reconquest/karma-go"

	"github.com/kovetskiy/decker/figure"
	"github.com/kovetskiy/decker/highlight"
	"github.com/kovetskiy/decker/includes"
	"github.com/kovetskiy/decker/resources"
)

// Format is the resolved conversion configuration for one deck.
type Format struct {
	// PandocArgs is ordered; the order is fixed for reproducibility.
	PandocArgs []string

	// Figure is forwarded to the figure stage unchanged.
	Figure figure.Options

	// CleanSupporting reports whether intermediate conversion
	// artifacts should be removed afterwards.
	CleanSupporting bool
}

// Resolver translates presentation options into conversion backend
// arguments. Both collaborators are injected so tests don't touch the
// real style set or the filesystem.
type Resolver struct {
	Styles    *highlight.Registry
	Resources resources.Locator
}

func NewResolver(styles *highlight.Registry, locator resources.Locator) *Resolver {
	return &Resolver{
		Styles:    styles,
		Resources: locator,
	}
}

// Resolve is pure apart from the read-only bundled-template lookup:
// identical options always produce an identical Format. The only
// failure is an unsupported highlight style.
func (resolver *Resolver) Resolve(opts Options) (*Format, error) {
	var args []string

	if path, ok := opts.Template.File(); ok {
		args = append(args, "--template", path)
	} else if opts.Template.Bundled() {
		path, err := resolver.Resources.Path(resources.BeamerTemplate)
		if err != nil {
			return nil, karma.Format(
				err,
				"unable to locate bundled beamer template",
			)
		}

		args = append(args, "--template", path)
	}

	if opts.TOC {
		args = append(args, "--table-of-contents")
	}

	if opts.SlideLevel != 0 {
		args = append(args, "--slide-level", strconv.Itoa(opts.SlideLevel))
	}

	if opts.Incremental {
		args = append(args, "--incremental")
	}

	args = append(args, variableArgs("theme", opts.Theme)...)
	args = append(args, variableArgs("colortheme", opts.ColorTheme)...)
	args = append(args, variableArgs("fonttheme", opts.FontTheme)...)

	highlightArgs, err := resolver.highlightArgs(opts.Highlight)
	if err != nil {
		return nil, err
	}

	args = append(args, highlightArgs...)
	args = append(args, includes.Translate(opts.Includes)...)
	args = append(args, opts.ExtraArgs...)

	return &Format{
		PandocArgs:      args,
		Figure:          opts.Figure,
		CleanSupporting: !opts.KeepTex,
	}, nil
}

func variableArgs(name string, choice ThemeChoice) []string {
	value, ok := choice.Custom()
	if !ok {
		return nil
	}

	return []string{"--variable", fmt.Sprintf("%s=%s", name, value)}
}

func (resolver *Resolver) highlightArgs(style string) ([]string, error) {
	switch style {
	case "", highlight.StyleDefault:
		return nil, nil

	case highlight.StyleNone:
		return []string{"--no-highlight"}, nil

	default:
		if err := resolver.Styles.Validate(style); err != nil {
			return nil, err
		}

		return []string{"--highlight-style", style}, nil
	}
}
