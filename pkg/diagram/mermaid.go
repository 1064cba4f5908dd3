package diagram

import (
	"fmt"
	"strings"
)

// Node style attributes per element type. Packages default to the purple
// APPLICATION style; packages whose purpose mentions SOURCE share the orange
// style with snippets.
const (
	styleDocument      = "fill:#e1f5ff,stroke:#01579b,stroke-width:3px"
	stylePackage       = "fill:#f3e5f5,stroke:#4a148c,stroke-width:2px"
	stylePackageSource = "fill:#fff3e0,stroke:#e65100,stroke-width:2px"
	styleFile          = "fill:#e8f5e9,stroke:#1b5e20,stroke-width:2px"
	styleSnippet       = "fill:#fff3e0,stroke:#e65100,stroke-width:2px"
	styleLegend        = "fill:#fafafa,stroke:#666,stroke-width:1px,stroke-dasharray: 5 5"
)

// legendLabel documents the color key; the legend node is always emitted.
const legendLabel = "Legend:<br/>Blue = Document<br/>Purple = Package (APPLICATION)<br/>" +
	"Orange = Package (SOURCE)<br/>Green = File<br/>Orange = Snippet"

// Options configures diagram generation for both the mermaid and DOT
// emitters.
type Options struct {
	// Compact trims labels down to the essential fields.
	Compact bool

	// MaxPackages caps the number of package nodes (0 means no cap).
	// Non-package elements are always kept.
	MaxPackages int

	// ExcludeExternalRefs drops external reference lines from labels.
	ExcludeExternalRefs bool
}

// labelOptions narrows Options to what the formatter needs.
func (o Options) labelOptions() LabelOptions {
	return LabelOptions{Compact: o.Compact, ExcludeExternalRefs: o.ExcludeExternalRefs}
}

// Mermaid renders the model as a mermaid flowchart with left-right
// orientation. Each element becomes a node plus a style statement colored by
// its type (and, for packages, its purpose); each relationship becomes one
// labeled edge, endpoints unchecked. A static dashed legend node closes the
// diagram.
func Mermaid(m *Model, opts Options) string {
	m = m.Cap(opts.MaxPackages)
	lines := []string{"graph LR"}

	for _, e := range m.Elements {
		id := SanitizeID(e.ID)
		label := strings.ReplaceAll(FormatLabel(e, opts.labelOptions()), "\n", "<br/>")
		lines = append(lines,
			fmt.Sprintf("    %s[\"%s\"]", id, label),
			fmt.Sprintf("    style %s %s", id, nodeStyle(e)),
		)
	}

	for _, r := range m.Relationships {
		label := r.Kind
		if r.Comment != "" {
			label += "<br/>" + EscapeQuotes(r.Comment)
		}
		lines = append(lines,
			fmt.Sprintf("    %s -->|\"%s\"| %s", SanitizeID(r.Source), label, SanitizeID(r.Target)))
	}

	lines = append(lines,
		"",
		"    %% Legend",
		fmt.Sprintf("    legend[\"%s\"]", legendLabel),
		"    style legend "+styleLegend,
	)

	return strings.Join(lines, "\n")
}

// nodeStyle picks the style attributes for an element.
func nodeStyle(e Element) string {
	switch e.Type {
	case TypeDocument:
		return styleDocument
	case TypeFile:
		return styleFile
	case TypeSnippet:
		return styleSnippet
	default:
		if purpose, ok := stringAttr(e.Attrs, "primaryPackagePurpose"); ok && strings.Contains(purpose, "SOURCE") {
			return stylePackageSource
		}
		return stylePackage
	}
}
