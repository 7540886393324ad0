package document

import (
	"github.com/reconquest/karma-go"
	admonitions "github.com/stefanfritsch/goldmark-admonitions"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Heading is one entry of the deck outline.
type Heading struct {
	Level   int
	Title   string
	HasBody bool
}

// Outline is the heading structure of a deck, used to report what the
// conversion backend will do when no explicit slide level is given.
type Outline struct {
	Headings []Heading
}

func newParser() parser.Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Footnote,
			extension.DefinitionList,
			extension.GFM,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithBlockParsers(
				util.Prioritized(admonitions.NewAdmonitionParser(), 100),
			),
		),
	)

	return md.Parser()
}

// Parse builds the outline of a deck body (front matter already
// stripped).
func Parse(data []byte) (*Outline, error) {
	root := newParser().Parse(text.NewReader(data))

	var outline Outline

	err := ast.Walk(
		root,
		func(node ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}

			switch typed := node.(type) {
			case *ast.Heading:
				outline.Headings = append(outline.Headings, Heading{
					Level: typed.Level,
					Title: string(typed.Text(data)),
				})

			default:
				if node.Parent() != nil && node.Parent() == root &&
					len(outline.Headings) > 0 {
					outline.Headings[len(outline.Headings)-1].HasBody = true
				}
			}

			return ast.WalkContinue, nil
		},
	)
	if err != nil {
		return nil, karma.Format(err, "unable to walk deck syntax tree")
	}

	return &outline, nil
}

// InferSlideLevel mirrors the backend's inference: the shallowest
// heading level that is directly followed by body content. Decks
// without such a heading report zero.
func (outline *Outline) InferSlideLevel() int {
	level := 0

	for _, heading := range outline.Headings {
		if !heading.HasBody {
			continue
		}

		if level == 0 || heading.Level < level {
			level = heading.Level
		}
	}

	return level
}

// SlideCount reports how many frames the deck produces at the given
// slide level.
func (outline *Outline) SlideCount(level int) int {
	if level == 0 {
		level = outline.InferSlideLevel()
	}

	if level == 0 {
		return 0
	}

	count := 0

	for _, heading := range outline.Headings {
		if heading.Level == level {
			count++
		}
	}

	return count
}
