package diagram

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"

	"github.com/kovetskiy/decker/figure"
)

var reFence = regexp.MustCompile("(?m)^(```+|~~~+)")

// (<lang>) (title <title>)?
var reBlockInfo = regexp.MustCompile(
	`^(\w+)\s*(?:\btitle\s+(\S.*\S?))?\s*$`,
)

type fencedBlock struct {
	lang  string
	title string
	body  []byte

	// byte range of the whole block, fences included
	start int
	end   int
}

func findFencedBlocks(contents []byte) []fencedBlock {
	var blocks []fencedBlock

	matches := reFence.FindAllIndex(contents, -1)

	i := 0
	for i < len(matches) {
		var (
			openStart = matches[i][0]
			openEnd   = matches[i][1]
			fence     = string(contents[openStart:openEnd])
		)

		infoEnd := openEnd
		for infoEnd < len(contents) && contents[infoEnd] != '\n' {
			infoEnd++
		}

		info := strings.TrimSpace(string(contents[openEnd:infoEnd]))

		bodyStart := infoEnd
		if bodyStart < len(contents) {
			bodyStart++
		}

		closed := false
		for j := i + 1; j < len(matches); j++ {
			closeFence := string(contents[matches[j][0]:matches[j][1]])

			// closing fence must use the same character and be at
			// least as long
			if closeFence[0] != fence[0] || len(closeFence) < len(fence) {
				continue
			}

			closeLineEnd := matches[j][1]
			for closeLineEnd < len(contents) && contents[closeLineEnd] != '\n' {
				closeLineEnd++
			}
			if closeLineEnd < len(contents) {
				closeLineEnd++
			}

			block := fencedBlock{
				body:  contents[bodyStart:matches[j][0]],
				start: openStart,
				end:   closeLineEnd,
			}

			if groups := reBlockInfo.FindStringSubmatch(info); groups != nil {
				block.lang = groups[1]
				block.title = groups[2]
			}

			blocks = append(blocks, block)

			i = j + 1
			closed = true

			break
		}

		if !closed {
			break
		}
	}

	return blocks
}

// Process renders mermaid and d2 fenced code blocks into PNG artifacts
// under dir and replaces the blocks with image references. Languages
// not listed in features pass through untouched.
func Process(
	contents []byte,
	dir string,
	opts figure.Options,
	features []string,
) ([]byte, []Artifact, error) {
	var (
		artifacts []Artifact
		result    []byte
		lastEnd   int
	)

	for _, block := range findFencedBlocks(contents) {
		var (
			artifact Artifact
			err      error
		)

		switch {
		case block.lang == "mermaid" && slices.Contains(features, "mermaid"):
			artifact, err = RenderMermaid(block.title, block.body, opts.Scale())

		case block.lang == "d2" && slices.Contains(features, "d2"):
			artifact, err = RenderD2(block.title, block.body, opts.Scale())

		default:
			continue
		}

		if err != nil {
			return nil, nil, karma.
				Describe("language", block.lang).
				Format(err, "unable to render diagram")
		}

		path, err := artifact.Write(dir)
		if err != nil {
			return nil, nil, err
		}

		log.Debugf(
			nil,
			"rendered %s diagram %q (%sx%s) into %q",
			block.lang,
			artifact.Name,
			artifact.Width,
			artifact.Height,
			path,
		)

		artifacts = append(artifacts, artifact)

		result = append(result, contents[lastEnd:block.start]...)
		result = append(result, []byte(imageReference(block.title, path, opts))...)
		lastEnd = block.end
	}

	if len(artifacts) == 0 {
		return contents, nil, nil
	}

	result = append(result, contents[lastEnd:]...)

	return result, artifacts, nil
}

func imageReference(title string, path string, opts figure.Options) string {
	if opts.Caption && title != "" {
		return fmt.Sprintf("![%s](%s)\n", title, path)
	}

	return fmt.Sprintf("![](%s)\n", path)
}
