package diagram

import (
	"fmt"
	"strings"
)

// Per-field truncation limits, in characters including the ellipsis.
const (
	limitSummary     = 60
	limitLicenseNote = 60
	limitDownload    = 50
	limitCopyright   = 40
	limitComment     = 50
	limitCreators    = 50
	limitNamespace   = 50
	limitPackageFile = 50
	limitRefLocator  = 40

	// checksumPrefix is how many characters of a checksum value are shown.
	checksumPrefix = 12

	// maxChecksums caps the checksum lines per node.
	maxChecksums = 2
)

// LabelOptions controls optional-field suppression in labels.
type LabelOptions struct {
	// Compact skips the whole optional-field block.
	Compact bool

	// ExcludeExternalRefs skips external reference lines (CPE, PURL).
	ExcludeExternalRefs bool
}

// Truncate shortens s to at most limit characters. Strings over the limit
// keep their first limit-3 characters and gain a three-dot ellipsis, so the
// result is exactly limit characters long.
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}

// FormatLabel renders the multi-line text label for one element. Lines
// appear in a fixed order; fields that were not extracted produce no line.
// All embedded values are quote-escaped since the label itself is emitted
// inside a quoted node literal.
func FormatLabel(e Element, opts LabelOptions) string {
	lines := make([]string, 0, 16)

	if purpose, ok := stringAttr(e.Attrs, "primaryPackagePurpose"); ok {
		lines = append(lines, fmt.Sprintf("[%s - %s]", e.Type, purpose))
	} else {
		lines = append(lines, fmt.Sprintf("[%s]", e.Type))
	}

	if name, ok := stringAttr(e.Attrs, "name"); ok {
		lines = append(lines, "Name: "+EscapeQuotes(name))
	} else {
		lines = append(lines, "ID: "+EscapeQuotes(e.ID))
	}

	addTruncated(&lines, e.Attrs, "summary", "Summary", limitSummary)
	addPlain(&lines, e.Attrs, "version", "Version")
	addPlain(&lines, e.Attrs, "licenseConcluded", "License")
	addTruncated(&lines, e.Attrs, "licenseComments", "License Note", limitLicenseNote)

	if !opts.Compact {
		addTruncated(&lines, e.Attrs, "downloadLocation", "Download", limitDownload)
		addPlain(&lines, e.Attrs, "supplier", "Supplier")
		addPlain(&lines, e.Attrs, "originator", "Originator")
		if analyzed, ok := e.Attrs["filesAnalyzed"]; ok {
			lines = append(lines, fmt.Sprintf("Files Analyzed: %v", analyzed))
		}
		if code, ok := stringAttr(e.Attrs, "verificationCode"); ok {
			lines = append(lines, "Verification: "+code)
		}
		if sums, ok := e.Attrs["checksums"].([]Checksum); ok {
			for _, c := range sums[:min(len(sums), maxChecksums)] {
				value := c.Value
				if len(value) > checksumPrefix {
					value = value[:checksumPrefix]
				}
				lines = append(lines, fmt.Sprintf("%s: %s...", c.Algorithm, value))
			}
		}
		addTruncated(&lines, e.Attrs, "copyrightText", "Copyright", limitCopyright)
		addTruncated(&lines, e.Attrs, "comment", "Comment", limitComment)
		addPlain(&lines, e.Attrs, "homepage", "Homepage")
	}

	if e.Type == TypeDocument && !opts.Compact {
		addPlain(&lines, e.Attrs, "created", "Created")
		if creators, ok := e.Attrs["creators"].([]string); ok && len(creators) > 0 {
			joined := Truncate(strings.Join(creators, ", "), limitCreators)
			lines = append(lines, "Creators: "+EscapeQuotes(joined))
		}
		addTruncated(&lines, e.Attrs, "namespace", "Namespace", limitNamespace)
		addPlain(&lines, e.Attrs, "dataLicense", "Data License")
	}

	if e.Type == TypePackage {
		if !opts.Compact {
			addPlain(&lines, e.Attrs, "licenseDeclared", "License Declared")
			addTruncated(&lines, e.Attrs, "packageFileName", "Package File", limitPackageFile)
		}
		if !opts.ExcludeExternalRefs {
			if refs, ok := e.Attrs["externalRefs"].([]ExternalRef); ok {
				limit := 2
				if opts.Compact {
					limit = 1
				}
				for _, ref := range refs[:min(len(refs), limit)] {
					locator := EscapeQuotes(Truncate(ref.Locator, limitRefLocator))
					lines = append(lines, fmt.Sprintf("%s: %s", ref.Type, locator))
				}
			}
		}
	}

	return strings.Join(lines, "\n")
}

// stringAttr fetches a non-empty string attribute.
func stringAttr(attrs Attrs, key string) (string, bool) {
	s, ok := attrs[key].(string)
	return s, ok && s != ""
}

// addPlain appends "Label: value" when the attribute is present.
func addPlain(lines *[]string, attrs Attrs, key, label string) {
	if v, ok := stringAttr(attrs, key); ok {
		*lines = append(*lines, label+": "+EscapeQuotes(v))
	}
}

// addTruncated appends "Label: value" with the value escaped then truncated.
func addTruncated(lines *[]string, attrs Attrs, key, label string, limit int) {
	if v, ok := stringAttr(attrs, key); ok {
		*lines = append(*lines, label+": "+Truncate(EscapeQuotes(v), limit))
	}
}
