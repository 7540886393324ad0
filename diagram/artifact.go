package diagram

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"

	"github.com/reconquest/karma-go"
)

// Artifact is a rendered diagram image, ready to be written into the
// deck's work directory and referenced from the preprocessed markdown.
type Artifact struct {
	Name      string
	Filename  string
	FileBytes []byte
	Checksum  string
	Width     string
	Height    string
}

// Write materializes the artifact under dir and returns its path.
func (artifact Artifact) Write(dir string) (string, error) {
	path := filepath.Join(dir, artifact.Filename)

	err := os.WriteFile(path, artifact.FileBytes, 0o644)
	if err != nil {
		return "", karma.
			Describe("filename", artifact.Filename).
			Format(err, "unable to write diagram artifact")
	}

	return path, nil
}

func GetChecksum(reader io.Reader) (string, error) {
	hash := sha256.New()
	if _, err := io.Copy(hash, reader); err != nil {
		return "", err
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
