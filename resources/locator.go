package resources

import (
	"os"
	"path/filepath"

	"github.com/reconquest/karma-go"
)

// BeamerTemplate is the bundled default template handed to the
// conversion backend when no user template is given.
const BeamerTemplate = "rmd/beamer/default.tex"

// EnvRoot overrides the resource root, mainly for packaging layouts
// that don't place resources next to the binary.
const EnvRoot = "DECKER_RESOURCES"

// Locator resolves names of bundled resources to absolute filesystem
// paths. Lookups are read-only and idempotent.
type Locator interface {
	Path(name string) (string, error)
}

// InstallLocator resolves resources against the installation layout:
// $DECKER_RESOURCES, then <exedir>/resources, then
// <exedir>/../share/decker.
type InstallLocator struct{}

func (InstallLocator) Path(name string) (string, error) {
	var roots []string

	if root := os.Getenv(EnvRoot); root != "" {
		roots = append(roots, root)
	}

	executable, err := os.Executable()
	if err == nil {
		dir := filepath.Dir(executable)
		roots = append(
			roots,
			filepath.Join(dir, "resources"),
			filepath.Join(dir, "..", "share", "decker"),
		)
	}

	facts := karma.Describe("resource", name)

	for _, root := range roots {
		path := filepath.Join(root, filepath.FromSlash(name))

		if _, err := os.Stat(path); err == nil {
			abs, err := filepath.Abs(path)
			if err != nil {
				return "", facts.Format(err, "unable to resolve resource path")
			}

			return abs, nil
		}
	}

	return "", facts.
		Describe("roots", roots).
		Format(nil, "bundled resource not found")
}

// DirLocator resolves resources under a fixed directory; used in tests
// and by --resource-path.
type DirLocator struct {
	Root string
}

func (locator DirLocator) Path(name string) (string, error) {
	path := filepath.Join(locator.Root, filepath.FromSlash(name))

	if _, err := os.Stat(path); err != nil {
		return "", karma.
			Describe("resource", name).
			Format(err, "bundled resource not found")
	}

	return filepath.Abs(path)
}
