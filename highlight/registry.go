package highlight

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// StyleDefault leaves style selection to the conversion backend.
	StyleDefault = "default"
	// StyleNone disables syntax highlighting entirely.
	StyleNone = "none"
)

// Registry is the closed set of syntax-highlighting styles the conversion
// backend understands. The set is plain data so it can be swapped in tests
// or extended without touching the resolver.
type Registry struct {
	styles map[string]struct{}
}

func NewRegistry(styles []string) *Registry {
	set := make(map[string]struct{}, len(styles))
	for _, style := range styles {
		set[style] = struct{}{}
	}

	return &Registry{styles: set}
}

// DefaultRegistry returns the styles shipped with pandoc.
func DefaultRegistry() *Registry {
	return NewRegistry([]string{
		"pygments",
		"tango",
		"espresso",
		"zenburn",
		"kate",
		"monochrome",
		"breezedark",
		"haddock",
	})
}

func (registry *Registry) Supported() []string {
	styles := make([]string, 0, len(registry.styles))
	for style := range registry.styles {
		styles = append(styles, style)
	}

	sort.Strings(styles)

	return styles
}

// Validate checks membership only; the sentinels StyleDefault and
// StyleNone are resolved by the caller before validation.
func (registry *Registry) Validate(style string) error {
	if _, ok := registry.styles[style]; !ok {
		return UnsupportedStyleError{
			Style:     style,
			Supported: registry.Supported(),
		}
	}

	return nil
}

type UnsupportedStyleError struct {
	Style     string
	Supported []string
}

func (err UnsupportedStyleError) Error() string {
	return fmt.Sprintf(
		"unsupported highlight style %q, supported styles are: %s",
		err.Style,
		strings.Join(err.Supported, ", "),
	)
}
