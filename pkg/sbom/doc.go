// Package sbom is the input boundary for SPDX documents.
//
// Parsing is delegated entirely to github.com/spdx/tools-golang; this package
// only picks the right reader for a file (by extension) and applies a small
// pre-parse compatibility patch to JSON inputs whose creation timestamps are
// missing the trailing timezone designator.
//
// # Supported formats
//
//   - .json                  SPDX JSON
//   - .yaml / .yml           SPDX YAML
//   - .rdf / .rdf.xml / .xml SPDX RDF
//   - .spdx (and no suffix)  SPDX tag-value
package sbom
