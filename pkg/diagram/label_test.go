package diagram

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"under limit", "short", 10, "short"},
		{"at limit", "exactly-10", 10, "exactly-10"},
		{"over limit", "this is far too long", 10, "this is..."},
		{"one over", "12345678901", 10, "1234567..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.limit)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
			if len(tt.in) > tt.limit {
				if len(got) != tt.limit {
					t.Errorf("truncated length = %d, want exactly %d", len(got), tt.limit)
				}
				if !strings.HasSuffix(got, "...") {
					t.Errorf("truncated value %q should end in ...", got)
				}
			}
		})
	}
}

func TestFormatLabelHeader(t *testing.T) {
	tests := []struct {
		name string
		e    Element
		want string
	}{
		{
			name: "plain type header",
			e:    Element{ID: "SPDXRef-x", Type: TypeFile, Attrs: Attrs{}},
			want: "[File]",
		},
		{
			name: "purpose in header",
			e: Element{ID: "SPDXRef-x", Type: TypePackage, Attrs: Attrs{
				"primaryPackagePurpose": "SOURCE",
			}},
			want: "[Package - SOURCE]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label := FormatLabel(tt.e, LabelOptions{})
			lines := strings.Split(label, "\n")
			if lines[0] != tt.want {
				t.Errorf("header = %q, want %q", lines[0], tt.want)
			}

			headers := 0
			for _, l := range lines {
				if strings.HasPrefix(l, "[") {
					headers++
				}
			}
			if headers != 1 {
				t.Errorf("label has %d type-header lines, want exactly 1", headers)
			}
		})
	}
}

func TestFormatLabelNameFallsBackToID(t *testing.T) {
	e := Element{ID: `SPDXRef-has-"quotes"`, Type: TypeSnippet, Attrs: Attrs{}}

	label := FormatLabel(e, LabelOptions{})
	if !strings.Contains(label, "ID: SPDXRef-has-'quotes'") {
		t.Errorf("label should carry the escaped raw id, got:\n%s", label)
	}
	if strings.Contains(label, `"`) {
		t.Errorf("label must not contain double quotes:\n%s", label)
	}
}

func TestFormatLabelFieldOrderAndTruncation(t *testing.T) {
	e := Element{
		ID:   "SPDXRef-pkg",
		Type: TypePackage,
		Attrs: Attrs{
			"name":             "mypkg",
			"version":          "2.0.1",
			"summary":          strings.Repeat("s", 80),
			"licenseConcluded": "Apache-2.0",
			"licenseComments":  strings.Repeat("n", 80),
			"downloadLocation": "https://example.com/" + strings.Repeat("d", 60),
			"supplier":         "Organization: Acme",
			"filesAnalyzed":    true,
			"copyrightText":    strings.Repeat("c", 60),
			"comment":          strings.Repeat("m", 60),
			"homepage":         "https://example.com",
			"checksums": []Checksum{
				{Algorithm: "SHA256", Value: strings.Repeat("a", 64)},
				{Algorithm: "SHA1", Value: "ff"},
				{Algorithm: "MD5", Value: strings.Repeat("b", 32)},
			},
		},
	}

	label := FormatLabel(e, LabelOptions{})
	lines := strings.Split(label, "\n")

	wantPrefixes := []string{
		"[Package]",
		"Name: mypkg",
		"Summary: " + strings.Repeat("s", 57) + "...",
		"Version: 2.0.1",
		"License: Apache-2.0",
		"License Note: " + strings.Repeat("n", 57) + "...",
		"Download: https://example.com/" + strings.Repeat("d", 27) + "...",
		"Supplier: Organization: Acme",
		"Files Analyzed: true",
		"SHA256: " + strings.Repeat("a", 12) + "...",
		"SHA1: ff...",
		"Copyright: " + strings.Repeat("c", 37) + "...",
		"Comment: " + strings.Repeat("m", 47) + "...",
		"Homepage: https://example.com",
	}
	if len(lines) != len(wantPrefixes) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(wantPrefixes), label)
	}
	for i, want := range wantPrefixes {
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestFormatLabelCompactSkipsOptionalBlock(t *testing.T) {
	e := Element{
		ID:   "SPDXRef-pkg",
		Type: TypePackage,
		Attrs: Attrs{
			"name":             "mypkg",
			"version":          "1.0",
			"licenseConcluded": "MIT",
			"licenseDeclared":  "MIT",
			"downloadLocation": "https://example.com/pkg",
			"supplier":         "Acme",
			"homepage":         "https://example.com",
			"filesAnalyzed":    false,
			"packageFileName":  "pkg.tar.gz",
		},
	}

	label := FormatLabel(e, LabelOptions{Compact: true})
	for _, banned := range []string{"Download:", "Supplier:", "Homepage:", "Files Analyzed:", "License Declared:", "Package File:"} {
		if strings.Contains(label, banned) {
			t.Errorf("compact label should not contain %q:\n%s", banned, label)
		}
	}
	for _, required := range []string{"Name: mypkg", "Version: 1.0", "License: MIT"} {
		if !strings.Contains(label, required) {
			t.Errorf("compact label missing %q:\n%s", required, label)
		}
	}
}

func TestFormatLabelExternalRefs(t *testing.T) {
	refs := []ExternalRef{
		{Type: "purl", Locator: "pkg:pypi/requests@2.31.0", Category: "PACKAGE-MANAGER"},
		{Type: "cpe23Type", Locator: "cpe:2.3:a:requests:requests:2.31.0:*:*:*:*:*:*:*", Category: "SECURITY"},
		{Type: "purl", Locator: "pkg:github/psf/requests@v2.31.0", Category: "PACKAGE-MANAGER"},
	}
	e := Element{ID: "SPDXRef-pkg", Type: TypePackage, Attrs: Attrs{"name": "requests", "externalRefs": refs}}

	t.Run("default shows two", func(t *testing.T) {
		label := FormatLabel(e, LabelOptions{})
		if !strings.Contains(label, "purl: pkg:pypi/requests@2.31.0") {
			t.Errorf("missing first ref:\n%s", label)
		}
		if !strings.Contains(label, "cpe23Type: cpe:2.3:a:requests:requests:2.31.0:*:...") {
			t.Errorf("second ref should be truncated to 40 chars:\n%s", label)
		}
		if strings.Contains(label, "pkg:github") {
			t.Errorf("third ref should be dropped:\n%s", label)
		}
	})

	t.Run("compact shows one", func(t *testing.T) {
		label := FormatLabel(e, LabelOptions{Compact: true})
		if !strings.Contains(label, "purl: pkg:pypi/requests@2.31.0") {
			t.Errorf("missing first ref:\n%s", label)
		}
		if strings.Contains(label, "cpe23Type") {
			t.Errorf("compact label should show only one ref:\n%s", label)
		}
	})

	t.Run("exclusion drops all", func(t *testing.T) {
		label := FormatLabel(e, LabelOptions{ExcludeExternalRefs: true})
		if strings.Contains(label, "purl") || strings.Contains(label, "cpe23Type") {
			t.Errorf("excluded refs still present:\n%s", label)
		}
	})
}

func TestFormatLabelDocumentFields(t *testing.T) {
	e := Element{
		ID:   "SPDXRef-DOCUMENT",
		Type: TypeDocument,
		Attrs: Attrs{
			"name":        "my-sbom",
			"version":     "SPDX-2.3",
			"created":     "2025-11-27T15:17:19Z",
			"creators":    []string{"Tool: syft", "Person: Jane Doe"},
			"namespace":   "https://example.com/" + strings.Repeat("n", 60),
			"dataLicense": "CC0-1.0",
		},
	}

	label := FormatLabel(e, LabelOptions{})
	for _, want := range []string{
		"[Document]",
		"Name: my-sbom",
		"Created: 2025-11-27T15:17:19Z",
		"Creators: Tool: syft, Person: Jane Doe",
		"Data License: CC0-1.0",
	} {
		if !strings.Contains(label, want) {
			t.Errorf("document label missing %q:\n%s", want, label)
		}
	}

	for _, line := range strings.Split(label, "\n") {
		if strings.HasPrefix(line, "Namespace: ") {
			if got := len(strings.TrimPrefix(line, "Namespace: ")); got != limitNamespace {
				t.Errorf("namespace length = %d, want %d", got, limitNamespace)
			}
		}
	}

	compact := FormatLabel(e, LabelOptions{Compact: true})
	if strings.Contains(compact, "Creators:") || strings.Contains(compact, "Namespace:") {
		t.Errorf("compact document label should skip document block:\n%s", compact)
	}
}

func TestFormatLabelNeverEmpty(t *testing.T) {
	for _, typ := range []ElementType{TypeDocument, TypePackage, TypeFile, TypeSnippet} {
		label := FormatLabel(Element{ID: "SPDXRef-x", Type: typ, Attrs: Attrs{}}, LabelOptions{Compact: true})
		if label == "" {
			t.Errorf("label for bare %s element is empty", typ)
		}
	}
}
