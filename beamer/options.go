package beamer

import (
	"github.com/kovetskiy/decker/figure"
	"github.com/kovetskiy/decker/highlight"
	"github.com/kovetskiy/decker/includes"
)

// ThemeChoice selects a beamer theme variable. The zero value keeps the
// backend default and emits nothing; Custom always emits, even for a
// theme literally named "default".
type ThemeChoice struct {
	name   string
	custom bool
}

func DefaultTheme() ThemeChoice {
	return ThemeChoice{}
}

func Theme(name string) ThemeChoice {
	return ThemeChoice{name: name, custom: true}
}

func (choice ThemeChoice) Custom() (string, bool) {
	return choice.name, choice.custom
}

type templateKind int

const (
	templateBundled templateKind = iota
	templateFile
	templateNone
)

// TemplateChoice selects the conversion template. The zero value is the
// bundled default template; NoTemplate suppresses the --template
// argument entirely.
type TemplateChoice struct {
	kind templateKind
	path string
}

func BundledTemplate() TemplateChoice {
	return TemplateChoice{}
}

func TemplateFile(path string) TemplateChoice {
	return TemplateChoice{kind: templateFile, path: path}
}

func NoTemplate() TemplateChoice {
	return TemplateChoice{kind: templateNone}
}

func (choice TemplateChoice) File() (string, bool) {
	return choice.path, choice.kind == templateFile
}

func (choice TemplateChoice) Bundled() bool {
	return choice.kind == templateBundled
}

// Options is the full bag of presentation options for one deck. The
// zero value plus DefaultOptions' figure settings is a valid deck.
type Options struct {
	TOC         bool
	SlideLevel  int // 0 means the backend infers it
	Incremental bool
	Figure      figure.Options
	Theme       ThemeChoice
	ColorTheme  ThemeChoice
	FontTheme   ThemeChoice

	// Highlight is a style name, highlight.StyleDefault (or empty) for
	// the backend default, or highlight.StyleNone to disable.
	Highlight string

	Template  TemplateChoice
	KeepTex   bool
	Includes  includes.ContentIncludes
	ExtraArgs []string
}

func DefaultOptions() Options {
	return Options{
		Figure:    figure.DefaultOptions(),
		Highlight: highlight.StyleDefault,
	}
}

// ThemeFromConfig maps the string configuration surface (flags, front
// matter) onto a ThemeChoice; "default" is the backend-default
// sentinel there.
func ThemeFromConfig(name string) ThemeChoice {
	if name == "" || name == "default" {
		return DefaultTheme()
	}

	return Theme(name)
}

// TemplateFromConfig maps the string configuration surface onto a
// TemplateChoice: "default" selects the bundled template, "none"
// suppresses --template, anything else is a template path.
func TemplateFromConfig(value string) TemplateChoice {
	switch value {
	case "", "default":
		return BundledTemplate()
	case "none":
		return NoTemplate()
	default:
		return TemplateFile(value)
	}
}
