package diagram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// MarshalModel converts a model to indented JSON bytes.
func MarshalModel(m *Model) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteModel(m, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteModel writes a model as indented JSON to w. Element and relationship
// order is preserved, so output is deterministic for a given document.
func WriteModel(m *Model, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	return nil
}
