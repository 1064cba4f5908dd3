package sbom

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	spdxjson "github.com/spdx/tools-golang/json"
	spdxrdf "github.com/spdx/tools-golang/rdf"
	"github.com/spdx/tools-golang/spdx"
	spdxtagvalue "github.com/spdx/tools-golang/tagvalue"
	spdxyaml "github.com/spdx/tools-golang/yaml"

	"github.com/bomviz/bomviz/pkg/errors"
)

// Load parses the SPDX document at path, choosing the reader by file suffix.
// Callers that want the JSON timestamp fix should run Preprocess first and
// hand the returned path to Load.
func Load(path string) (*spdx.Document, error) {
	read, err := readerFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	doc, err := read(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parse %s", path)
	}
	return doc, nil
}

// readerFor maps a file suffix to the matching tools-golang reader.
func readerFor(path string) (func(io.Reader) (*spdx.Document, error), error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return spdxjson.Read, nil
	case ".yaml", ".yml":
		return spdxyaml.Read, nil
	case ".rdf", ".xml":
		return spdxrdf.Read, nil
	case ".spdx", ".tag", "":
		return spdxtagvalue.Read, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported,
			"unsupported file suffix %q (expected .json, .yaml, .rdf, .xml or .spdx)", ext)
	}
}
