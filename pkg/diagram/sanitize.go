package diagram

import "strings"

// SanitizeID converts an SPDX identifier into a node identifier valid in the
// mermaid and DOT grammars: every "SPDXRef-" occurrence is stripped and the
// remaining "-" and "." characters become underscores. The function is total
// and idempotent on its own output; distinct inputs are expected to stay
// distinct (a collision is a defect in the input document).
func SanitizeID(id string) string {
	s := strings.ReplaceAll(id, "SPDXRef-", "")
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, ".", "_")
}

// EscapeQuotes replaces every double quote with a single quote so the value
// can be embedded inside a quoted node literal. Nothing else is touched.
func EscapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}
