// Package diagram turns a parsed SPDX document into diagram text.
//
// The pipeline is three pure stages:
//
//   - Extract walks the document's collections (document metadata, packages,
//     files, snippets) and produces a flat attribute map per element, driven
//     by static per-category field tables.
//   - FormatLabel renders one element's attributes as an ordered multi-line
//     label with truncation and optional-field suppression.
//   - Mermaid / DOT iterate the extracted elements and the relationship list,
//     emitting one styled node per element and one labeled edge per
//     relationship.
//
// Every stage is deterministic and side-effect free; a conversion run holds
// no shared state and is safe to repeat.
package diagram
