package diagram

import (
	"bytes"
	"context"
	"strconv"
	"time"

	mermaid "github.com/dreampuf/mermaid.go"
	"github.com/reconquest/pkg/log"
)

var mermaidRenderTimeout = 90 * time.Second

// RenderMermaid renders a mermaid diagram into a PNG artifact using a
// headless browser.
func RenderMermaid(title string, diagram []byte, scale float64) (Artifact, error) {
	ctx, cancel := context.WithTimeout(context.TODO(), mermaidRenderTimeout)
	defer cancel()

	log.Debugf(nil, "setting up mermaid renderer: %q", title)
	renderer, err := mermaid.NewRenderEngine(ctx)
	if err != nil {
		return Artifact{}, err
	}

	log.Debugf(nil, "rendering mermaid diagram: %q", title)
	pngBytes, boxModel, err := renderer.RenderAsScaledPng(string(diagram), scale)
	if err != nil {
		return Artifact{}, err
	}

	checksum, err := GetChecksum(bytes.NewReader(diagram))
	if err != nil {
		return Artifact{}, err
	}

	if title == "" {
		title = checksum
	}

	return Artifact{
		Name:      title,
		Filename:  title + ".png",
		FileBytes: pngBytes,
		Checksum:  checksum,
		Width:     strconv.FormatInt(boxModel.Width, 10),
		Height:    strconv.FormatInt(boxModel.Height, 10),
	}, nil
}
