package diagram

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/chromedp"
	"github.com/reconquest/pkg/log"

	"oss.terrastruct.com/d2/d2graph"
	"oss.terrastruct.com/d2/d2layouts/d2dagrelayout"
	"oss.terrastruct.com/d2/d2lib"
	"oss.terrastruct.com/d2/d2renderers/d2svg"
	"oss.terrastruct.com/d2/d2themes/d2themescatalog"
	d2log "oss.terrastruct.com/d2/lib/log"
	"oss.terrastruct.com/d2/lib/textmeasure"
	"oss.terrastruct.com/util-go/go2"
)

var d2RenderTimeout = 120 * time.Second

// RenderD2 compiles a d2 diagram to SVG and rasterizes it into a PNG
// artifact.
func RenderD2(title string, diagram []byte, scale float64) (Artifact, error) {
	ctx, cancel := context.WithTimeout(context.TODO(), d2RenderTimeout)
	ctx = d2log.WithDefault(ctx)
	defer cancel()

	ruler, err := textmeasure.NewRuler()
	if err != nil {
		return Artifact{}, err
	}

	layoutResolver := func(engine string) (d2graph.LayoutGraph, error) {
		return d2dagrelayout.DefaultLayout, nil
	}

	renderOpts := &d2svg.RenderOpts{
		Pad:     go2.Pointer(int64(5)),
		ThemeID: &d2themescatalog.NeutralDefault.ID,
	}

	compileOpts := &d2lib.CompileOptions{
		LayoutResolver: layoutResolver,
		Ruler:          ruler,
	}

	compiled, _, err := d2lib.Compile(ctx, string(diagram), compileOpts, renderOpts)
	if err != nil {
		return Artifact{}, err
	}

	svg, err := d2svg.Render(compiled, renderOpts)
	if err != nil {
		return Artifact{}, err
	}

	log.Debugf(nil, "rendering d2 diagram: %q", title)
	pngBytes, boxModel, err := convertSVGtoPNG(ctx, svg, scale)
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

func convertSVGtoPNG(ctx context.Context, svg []byte, scale float64) ([]byte, *dom.BoxModel, error) {
	var (
		result []byte
		model  *dom.BoxModel
	)

	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	err := chromedp.Run(ctx,
		chromedp.Navigate(fmt.Sprintf("data:image/svg+xml;base64,%s", base64.StdEncoding.EncodeToString(svg))),
		chromedp.ScreenshotScale(`document.querySelector("svg > svg")`, scale, &result, chromedp.ByJSPath),
		chromedp.Dimensions(`document.querySelector("svg > svg")`, &model, chromedp.ByJSPath),
	)
	if err != nil {
		return nil, nil, err
	}

	return result, model, nil
}
