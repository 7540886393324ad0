package metadata

import (
	"regexp"

	"github.com/reconquest/karma-go"
	"github.com/reconquest/regexputil-go"
	"gopkg.in/yaml.v3"

	"github.com/kovetskiy/decker/beamer"
	"github.com/kovetskiy/decker/includes"
)

var reFrontMatter = regexp.MustCompile(
	`(?s)\A---[ \t]*\n(?P<matter>.*?)\n(?:---|\.\.\.)[ \t]*(?:\n(?P<body>.*))?\z`,
)

// StringList unmarshals either a YAML scalar or a sequence, so
// front matter can say `author: X` as well as `author: [X, Y]`.
type StringList []string

func (list *StringList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var value string
		if err := node.Decode(&value); err != nil {
			return err
		}

		*list = StringList{value}

		return nil
	}

	var values []string
	if err := node.Decode(&values); err != nil {
		return err
	}

	*list = StringList(values)

	return nil
}

// FigMeta overrides figure parameters per deck. Pointer fields
// distinguish "absent" from explicit zero values.
type FigMeta struct {
	Width   *float64 `yaml:"width"`
	Height  *float64 `yaml:"height"`
	Crop    *bool    `yaml:"crop"`
	Format  string   `yaml:"format"`
	Caption *bool    `yaml:"caption"`
}

// Meta is the deck-level YAML front matter. Every field is optional;
// absent fields leave the command-line options untouched.
type Meta struct {
	Title  string     `yaml:"title"`
	Author StringList `yaml:"author"`
	Date   string     `yaml:"date"`

	Theme      string `yaml:"theme"`
	ColorTheme string `yaml:"colortheme"`
	FontTheme  string `yaml:"fonttheme"`

	TOC         *bool  `yaml:"toc"`
	SlideLevel  *int   `yaml:"slide-level"`
	Incremental *bool  `yaml:"incremental"`
	Highlight   string `yaml:"highlight"`
	Template    string `yaml:"template"`
	KeepTex     *bool  `yaml:"keep-tex"`

	Fig *FigMeta `yaml:"fig"`

	IncludeInHeader   StringList `yaml:"include-in-header"`
	IncludeBeforeBody StringList `yaml:"include-before-body"`
	IncludeAfterBody  StringList `yaml:"include-after-body"`

	Vars       map[string]interface{} `yaml:"vars"`
	PandocArgs []string               `yaml:"pandoc-args"`
}

// ExtractMeta splits the deck into front matter and body. Decks
// without front matter yield a nil Meta and the input unchanged.
func ExtractMeta(data []byte) (*Meta, []byte, error) {
	groups := reFrontMatter.FindStringSubmatch(string(data))
	if groups == nil {
		return nil, data, nil
	}

	var (
		matter = regexputil.Subexp(reFrontMatter, groups, "matter")
		body   = regexputil.Subexp(reFrontMatter, groups, "body")
	)

	var meta Meta

	err := yaml.Unmarshal([]byte(matter), &meta)
	if err != nil {
		return nil, nil, karma.Format(
			err,
			"unable to unmarshal deck front matter",
		)
	}

	return &meta, []byte(body), nil
}

// MergeInto lays the deck's front matter over options derived from the
// command line. Includes and pandoc args append rather than replace.
func (meta *Meta) MergeInto(opts *beamer.Options) {
	if meta == nil {
		return
	}

	if meta.TOC != nil {
		opts.TOC = *meta.TOC
	}

	if meta.SlideLevel != nil {
		opts.SlideLevel = *meta.SlideLevel
	}

	if meta.Incremental != nil {
		opts.Incremental = *meta.Incremental
	}

	if meta.Theme != "" {
		opts.Theme = beamer.ThemeFromConfig(meta.Theme)
	}

	if meta.ColorTheme != "" {
		opts.ColorTheme = beamer.ThemeFromConfig(meta.ColorTheme)
	}

	if meta.FontTheme != "" {
		opts.FontTheme = beamer.ThemeFromConfig(meta.FontTheme)
	}

	if meta.Highlight != "" {
		opts.Highlight = meta.Highlight
	}

	if meta.Template != "" {
		opts.Template = beamer.TemplateFromConfig(meta.Template)
	}

	if meta.KeepTex != nil {
		opts.KeepTex = *meta.KeepTex
	}

	if meta.Fig != nil {
		if meta.Fig.Width != nil {
			opts.Figure.Width = *meta.Fig.Width
		}

		if meta.Fig.Height != nil {
			opts.Figure.Height = *meta.Fig.Height
		}

		if meta.Fig.Crop != nil {
			opts.Figure.Crop = *meta.Fig.Crop
		}

		if meta.Fig.Format != "" {
			opts.Figure.Device = meta.Fig.Format
		}

		if meta.Fig.Caption != nil {
			opts.Figure.Caption = *meta.Fig.Caption
		}
	}

	opts.Includes = includes.ContentIncludes{
		BeforeBody: append(opts.Includes.BeforeBody, meta.IncludeBeforeBody...),
		InHeader:   append(opts.Includes.InHeader, meta.IncludeInHeader...),
		AfterBody:  append(opts.Includes.AfterBody, meta.IncludeAfterBody...),
	}

	opts.ExtraArgs = append(opts.ExtraArgs, meta.PandocArgs...)
}

// TemplateData exposes front matter to templated includes.
func (meta *Meta) TemplateData() map[string]interface{} {
	data := map[string]interface{}{}

	if meta == nil {
		return data
	}

	for key, value := range meta.Vars {
		data[key] = value
	}

	if meta.Title != "" {
		data["Title"] = meta.Title
	}

	if len(meta.Author) > 0 {
		data["Author"] = []string(meta.Author)
	}

	if meta.Date != "" {
		data["Date"] = meta.Date
	}

	return data
}
