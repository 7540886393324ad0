package includes

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
)

// LoadTemplate reads an include template from base, falling back to
// includePath when it doesn't exist next to the deck.
func LoadTemplate(
	base string,
	includePath string,
	path string,
	templates *template.Template,
) (*template.Template, error) {
	var (
		name  = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		facts = karma.Describe("name", name)
	)

	if template := templates.Lookup(name); template != nil {
		return template, nil
	}

	body, err := os.ReadFile(filepath.Join(base, path))
	if err != nil {
		if includePath != "" {
			body, err = os.ReadFile(filepath.Join(includePath, path))
		}
		if err != nil {
			return nil, facts.Format(
				err,
				"unable to read include template file",
			)
		}
	}

	body = bytes.ReplaceAll(body, []byte("\r\n"), []byte("\n"))

	templates, err = templates.New(name).Parse(string(body))
	if err != nil {
		return nil, facts.Format(
			err,
			"unable to parse include template",
		)
	}

	return templates, nil
}

// RenderTemplated executes every include path ending in .tmpl with the
// given data and materializes the result in workdir, returning a set
// whose templated entries point at the rendered files. Plain include
// paths pass through untouched.
func RenderTemplated(
	base string,
	includePath string,
	workdir string,
	set ContentIncludes,
	data map[string]interface{},
) (ContentIncludes, error) {
	render := func(paths []string) ([]string, error) {
		var rendered []string

		for _, path := range paths {
			if filepath.Ext(path) != ".tmpl" {
				rendered = append(rendered, path)
				continue
			}

			facts := karma.Describe("path", path)

			templates, err := LoadTemplate(
				base,
				includePath,
				path,
				template.New("includes"),
			)
			if err != nil {
				return nil, err
			}

			var buffer bytes.Buffer

			err = templates.Execute(&buffer, data)
			if err != nil {
				return nil, facts.Format(
					err,
					"unable to execute include template",
				)
			}

			target := filepath.Join(
				workdir,
				strings.TrimSuffix(filepath.Base(path), ".tmpl"),
			)

			err = os.WriteFile(target, buffer.Bytes(), 0o644)
			if err != nil {
				return nil, facts.Format(
					err,
					"unable to write rendered include",
				)
			}

			log.Tracef(facts, "rendered templated include into %q", target)

			rendered = append(rendered, target)
		}

		return rendered, nil
	}

	var (
		result ContentIncludes
		err    error
	)

	result.BeforeBody, err = render(set.BeforeBody)
	if err != nil {
		return set, err
	}

	result.InHeader, err = render(set.InHeader)
	if err != nil {
		return set, err
	}

	result.AfterBody, err = render(set.AfterBody)
	if err != nil {
		return set, err
	}

	return result, nil
}
