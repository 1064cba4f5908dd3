package diagram

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/bomviz/bomviz/pkg/errors"
)

// Node fill colors for the DOT rendering, matching the mermaid style table.
const (
	fillDocument      = "#e1f5ff"
	fillPackage       = "#f3e5f5"
	fillPackageSource = "#fff3e0"
	fillFile          = "#e8f5e9"
	fillSnippet       = "#fff3e0"
)

// DOT renders the model in Graphviz DOT format. The resulting string can be
// rendered with [RenderSVG] or [RenderPNG], or fed to any dot-compatible tool.
func DOT(m *Model, opts Options) string {
	m = m.Cap(opts.MaxPackages)

	var buf bytes.Buffer
	buf.WriteString("digraph sbom {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, e := range m.Elements {
		label := FormatLabel(e, opts.labelOptions())
		fmt.Fprintf(&buf, "  %s [label=%q, fillcolor=%q];\n", SanitizeID(e.ID), label, fillColor(e))
	}

	buf.WriteString("\n")
	for _, r := range m.Relationships {
		label := r.Kind
		if r.Comment != "" {
			label += "\n" + EscapeQuotes(r.Comment)
		}
		fmt.Fprintf(&buf, "  %s -> %s [label=%q];\n", SanitizeID(r.Source), SanitizeID(r.Target), label)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// fillColor picks the node fill for an element, mirroring nodeStyle.
func fillColor(e Element) string {
	switch e.Type {
	case TypeDocument:
		return fillDocument
	case TypeFile:
		return fillFile
	case TypeSnippet:
		return fillSnippet
	default:
		if purpose, ok := stringAttr(e.Attrs, "primaryPackagePurpose"); ok && strings.Contains(purpose, "SOURCE") {
			return fillPackageSource
		}
		return fillPackage
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	data, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(data), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz SVG root tag so the viewBox starts
// at the origin and width/height match it, which makes the output embed
// cleanly in HTML viewers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
