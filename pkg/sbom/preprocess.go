package sbom

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// bareTimestampRe matches quoted ISO 8601 timestamps that end right at the
// seconds field, i.e. "2025-11-27T15:17:19". Timestamps that already carry a
// timezone designator ("...:19Z") do not match because the closing quote is
// anchored directly after the seconds.
var bareTimestampRe = regexp.MustCompile(`"(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2})"`)

// Preprocess fixes common compatibility defects in an SPDX JSON file before
// it is handed to the parser. The only fix today is appending the missing
// "Z" timezone suffix to creation timestamps.
//
// The original file is never modified. When a fix is needed, the patched
// content is written to a temporary file and its path is returned; the
// returned cleanup func removes that temporary and must be called after
// parsing, success or failure. When no fix is needed (or the input is not
// JSON), the original path and a no-op cleanup are returned.
//
// Any fault during patching is returned alongside the original path so the
// caller can warn and continue with the unmodified input.
func Preprocess(path string) (string, func(), error) {
	noop := func() {}

	if strings.ToLower(filepath.Ext(path)) != ".json" {
		return path, noop, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return path, noop, err
	}
	if !bareTimestampRe.Match(content) {
		return path, noop, nil
	}

	fixed := bareTimestampRe.ReplaceAll(content, []byte(`"${1}Z"`))

	tmp, err := os.CreateTemp("", "bomviz-preprocessed-*.json")
	if err != nil {
		return path, noop, err
	}
	if _, err := tmp.Write(fixed); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return path, noop, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return path, noop, err
	}

	return tmp.Name(), func() { os.Remove(tmp.Name()) }, nil
}
