package errors

import (
	"os"
	"strings"
	"unicode"
)

// ValidateInputPath checks that path names an existing, readable regular file.
// It is the gate for the "missing input file" failure mode: commands call it
// before any parsing or output happens so nothing is partially written.
func ValidateInputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "input path cannot be empty")
	}
	if err := validatePathChars(path); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return New(ErrCodeFileNotFound, "file not found: %s", path)
	}
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "stat %s", path)
	}
	if info.IsDir() {
		return New(ErrCodeInvalidPath, "%s is a directory, not a file", path)
	}
	return nil
}

// ValidateOutputPath checks that path is usable as an output file location.
// An empty path is valid and means standard output.
func ValidateOutputPath(path string) error {
	if path == "" {
		return nil
	}
	if err := validatePathChars(path); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return New(ErrCodeInvalidPath, "output %s is a directory", path)
	}
	return nil
}

// validatePathChars rejects paths containing null bytes or control characters.
func validatePathChars(path string) error {
	if strings.ContainsRune(path, 0) {
		return New(ErrCodeInvalidPath, "path contains a null byte")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains control characters")
		}
	}
	return nil
}
