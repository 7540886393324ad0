package pandoc

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
)

var convertTimeout = 10 * time.Minute

// Engine drives the external pandoc binary, the conversion backend
// consuming the argument tokens produced by the resolver.
type Engine struct {
	Binary string
}

func New(binary string) *Engine {
	if binary == "" {
		binary = "pandoc"
	}

	return &Engine{Binary: binary}
}

// Convert runs one conversion. The resolved arguments are passed
// through verbatim, after the fixed input/format/output tokens.
func (engine *Engine) Convert(
	ctx context.Context,
	input string,
	output string,
	args []string,
) error {
	ctx, cancel := context.WithTimeout(ctx, convertTimeout)
	defer cancel()

	argv := append(
		[]string{input, "--from", "markdown", "--to", "beamer", "--output", output},
		args...,
	)

	facts := karma.
		Describe("binary", engine.Binary).
		Describe("args", strings.Join(argv, " "))

	log.Debugf(nil, "executing %s %s", engine.Binary, strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, engine.Binary, argv...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return facts.
			Describe("stderr", strings.TrimSpace(stderr.String())).
			Format(err, "pandoc conversion failed")
	}

	return nil
}

// Version probes the backend, mostly to fail early with a readable
// error when pandoc is not installed.
func (engine *Engine) Version(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, engine.Binary, "--version")

	stdout, err := cmd.Output()
	if err != nil {
		return "", karma.
			Describe("binary", engine.Binary).
			Format(err, "unable to execute pandoc")
	}

	line, _, _ := strings.Cut(string(stdout), "\n")

	return strings.TrimSpace(line), nil
}
