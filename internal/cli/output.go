package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bomviz/bomviz/pkg/errors"
)

// nopCloser wraps a writer whose lifetime the command does not own (stdout).
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// openOutput opens the destination for command output. An empty path or "-"
// means standard output.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	return f, nil
}

// basePath strips the extension from an input path, used to derive default
// output names ("sbom.spdx.json" -> "sbom.spdx").
func basePath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input))
}
