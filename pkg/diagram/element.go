package diagram

import (
	"fmt"

	"github.com/spdx/tools-golang/spdx"
	"github.com/spdx/tools-golang/spdx/v2/common"
	spdx23 "github.com/spdx/tools-golang/spdx/v2/v2_3"
)

// ElementType classifies a diagram element.
type ElementType string

// Element types, in emission order.
const (
	TypeDocument ElementType = "Document"
	TypePackage  ElementType = "Package"
	TypeFile     ElementType = "File"
	TypeSnippet  ElementType = "Snippet"
)

// documentID is the fixed identifier of the document element.
const documentID = "SPDXRef-DOCUMENT"

// Checksum is one algorithm/value pair attached to a package or file.
type Checksum struct {
	Algorithm string `json:"algorithm"`
	Value     string `json:"value"`
}

// ExternalRef is one external package reference (CPE, PURL, ...).
type ExternalRef struct {
	Type     string `json:"type"`
	Locator  string `json:"locator"`
	Category string `json:"category"`
}

// Attrs is the flat attribute map extracted for one element. Absent source
// fields are absent keys, never nil placeholders. Values are strings, bools,
// []string, []Checksum or []ExternalRef.
type Attrs map[string]any

// Element is one node of the diagram: an SPDX identifier, its category and
// the extracted attributes.
type Element struct {
	ID    string      `json:"id"`
	Type  ElementType `json:"type"`
	Attrs Attrs       `json:"attrs"`
}

// Relationship is one directed edge between two element identifiers.
type Relationship struct {
	Source  string `json:"source"`
	Target  string `json:"target"`
	Kind    string `json:"kind"`
	Comment string `json:"comment,omitempty"`
}

// Model is the extracted form of a document: elements in emission order
// (document first, then packages, files and snippets in source order) and
// relationships in source order.
type Model struct {
	Elements      []Element      `json:"elements"`
	Relationships []Relationship `json:"relationships"`
}

// field maps one source attribute of E into the flat map under a fixed key.
// The getter reports false when the attribute is absent.
type field[E any] struct {
	key string
	get func(E) (any, bool)
}

// collect applies a field table to one source element.
func collect[E any](e E, fields []field[E]) Attrs {
	attrs := make(Attrs, len(fields))
	for _, f := range fields {
		if v, ok := f.get(e); ok {
			attrs[f.key] = v
		}
	}
	return attrs
}

// str wraps a plain string attribute: present iff non-empty.
func str(s string) (any, bool) { return s, s != "" }

// documentFields is the extraction table for the document element.
var documentFields = []field[*spdx.Document]{
	{"name", func(d *spdx.Document) (any, bool) { return str(d.DocumentName) }},
	{"version", func(d *spdx.Document) (any, bool) { return str(d.SPDXVersion) }},
	{"namespace", func(d *spdx.Document) (any, bool) { return str(d.DocumentNamespace) }},
	{"created", func(d *spdx.Document) (any, bool) {
		if d.CreationInfo == nil {
			return nil, false
		}
		return str(d.CreationInfo.Created)
	}},
	{"creators", func(d *spdx.Document) (any, bool) {
		if d.CreationInfo == nil || len(d.CreationInfo.Creators) == 0 {
			return nil, false
		}
		creators := make([]string, 0, len(d.CreationInfo.Creators))
		for _, c := range d.CreationInfo.Creators {
			creators = append(creators, renderCreator(c))
		}
		return creators, true
	}},
	{"dataLicense", func(d *spdx.Document) (any, bool) { return str(d.DataLicense) }},
}

// packageFields is the extraction table for package elements.
var packageFields = []field[*spdx23.Package]{
	{"name", func(p *spdx23.Package) (any, bool) { return str(p.PackageName) }},
	{"version", func(p *spdx23.Package) (any, bool) { return str(p.PackageVersion) }},
	{"downloadLocation", func(p *spdx23.Package) (any, bool) { return str(p.PackageDownloadLocation) }},
	{"filesAnalyzed", func(p *spdx23.Package) (any, bool) { return p.FilesAnalyzed, true }},
	{"supplier", func(p *spdx23.Package) (any, bool) {
		if p.PackageSupplier == nil || p.PackageSupplier.Supplier == "" {
			return nil, false
		}
		return renderActor(p.PackageSupplier.SupplierType, p.PackageSupplier.Supplier), true
	}},
	{"originator", func(p *spdx23.Package) (any, bool) {
		if p.PackageOriginator == nil || p.PackageOriginator.Originator == "" {
			return nil, false
		}
		return renderActor(p.PackageOriginator.OriginatorType, p.PackageOriginator.Originator), true
	}},
	{"homepage", func(p *spdx23.Package) (any, bool) { return str(p.PackageHomePage) }},
	{"licenseConcluded", func(p *spdx23.Package) (any, bool) { return str(p.PackageLicenseConcluded) }},
	{"licenseDeclared", func(p *spdx23.Package) (any, bool) { return str(p.PackageLicenseDeclared) }},
	{"licenseComments", func(p *spdx23.Package) (any, bool) { return str(p.PackageLicenseComments) }},
	{"copyrightText", func(p *spdx23.Package) (any, bool) { return str(p.PackageCopyrightText) }},
	{"comment", func(p *spdx23.Package) (any, bool) { return str(p.PackageComment) }},
	{"summary", func(p *spdx23.Package) (any, bool) { return str(p.PackageSummary) }},
	{"primaryPackagePurpose", func(p *spdx23.Package) (any, bool) { return str(p.PrimaryPackagePurpose) }},
	{"checksums", func(p *spdx23.Package) (any, bool) { return checksumList(p.PackageChecksums) }},
	{"verificationCode", func(p *spdx23.Package) (any, bool) {
		if p.PackageVerificationCode == nil {
			return nil, false
		}
		return str(p.PackageVerificationCode.Value)
	}},
	{"packageFileName", func(p *spdx23.Package) (any, bool) { return str(p.PackageFileName) }},
	{"externalRefs", func(p *spdx23.Package) (any, bool) {
		if len(p.PackageExternalReferences) == 0 {
			return nil, false
		}
		refs := make([]ExternalRef, 0, len(p.PackageExternalReferences))
		for _, r := range p.PackageExternalReferences {
			refs = append(refs, ExternalRef{Type: r.RefType, Locator: r.Locator, Category: r.Category})
		}
		return refs, true
	}},
}

// fileFields is the extraction table for file elements.
var fileFields = []field[*spdx23.File]{
	{"name", func(f *spdx23.File) (any, bool) { return str(f.FileName) }},
	{"licenseConcluded", func(f *spdx23.File) (any, bool) { return str(f.LicenseConcluded) }},
	{"copyrightText", func(f *spdx23.File) (any, bool) { return str(f.FileCopyrightText) }},
	{"comment", func(f *spdx23.File) (any, bool) { return str(f.FileComment) }},
	{"checksums", func(f *spdx23.File) (any, bool) { return checksumList(f.Checksums) }},
}

// snippetFields is the extraction table for snippet elements. The name falls
// back to the snippet's own identifier when unset.
var snippetFields = []field[*spdx23.Snippet]{
	{"name", func(s *spdx23.Snippet) (any, bool) {
		if s.SnippetName != "" {
			return s.SnippetName, true
		}
		return elementID(s.SnippetSPDXIdentifier), true
	}},
	{"comment", func(s *spdx23.Snippet) (any, bool) { return str(s.SnippetComment) }},
	{"licenseConcluded", func(s *spdx23.Snippet) (any, bool) { return str(s.SnippetLicenseConcluded) }},
	{"copyrightText", func(s *spdx23.Snippet) (any, bool) { return str(s.SnippetCopyrightText) }},
}

// Extract builds the diagram model from a parsed SPDX document. The document
// element comes first, then packages, files and snippets in source order.
// Relationships keep their source order and direction; endpoints are not
// checked against the element list (dangling edges are allowed downstream).
func Extract(doc *spdx.Document) *Model {
	m := &Model{
		Elements: make([]Element, 0, 1+len(doc.Packages)+len(doc.Files)+len(doc.Snippets)),
	}

	m.Elements = append(m.Elements, Element{
		ID:    documentID,
		Type:  TypeDocument,
		Attrs: collect(doc, documentFields),
	})

	for _, p := range doc.Packages {
		m.Elements = append(m.Elements, Element{
			ID:    elementID(p.PackageSPDXIdentifier),
			Type:  TypePackage,
			Attrs: collect(p, packageFields),
		})
	}
	for _, f := range doc.Files {
		m.Elements = append(m.Elements, Element{
			ID:    elementID(f.FileSPDXIdentifier),
			Type:  TypeFile,
			Attrs: collect(f, fileFields),
		})
	}
	for i := range doc.Snippets {
		s := &doc.Snippets[i]
		m.Elements = append(m.Elements, Element{
			ID:    elementID(s.SnippetSPDXIdentifier),
			Type:  TypeSnippet,
			Attrs: collect(s, snippetFields),
		})
	}

	for _, r := range doc.Relationships {
		m.Relationships = append(m.Relationships, Relationship{
			Source:  docElementID(r.RefA),
			Target:  docElementID(r.RefB),
			Kind:    r.Relationship,
			Comment: r.RelationshipComment,
		})
	}

	return m
}

// Cap returns a model with packages truncated to the first n in source
// order. Non-package elements and all relationships are always retained.
// n <= 0 means no cap; the receiver is never mutated.
func (m *Model) Cap(n int) *Model {
	if n <= 0 {
		return m
	}

	capped := &Model{
		Elements:      make([]Element, 0, len(m.Elements)),
		Relationships: m.Relationships,
	}
	packages := 0
	for _, e := range m.Elements {
		if e.Type == TypePackage {
			packages++
			if packages > n {
				continue
			}
		}
		capped.Elements = append(capped.Elements, e)
	}
	return capped
}

// Count returns the number of elements of the given type.
func (m *Model) Count(t ElementType) int {
	n := 0
	for _, e := range m.Elements {
		if e.Type == t {
			n++
		}
	}
	return n
}

// elementID renders a bare SPDX element identifier with its standard prefix.
func elementID(id common.ElementID) string {
	return "SPDXRef-" + string(id)
}

// docElementID renders a relationship endpoint, which may be a cross-document
// reference or a special marker such as NOASSERTION.
func docElementID(id common.DocElementID) string {
	if id.SpecialID != "" {
		return id.SpecialID
	}
	if id.DocumentRefID != "" {
		return fmt.Sprintf("DocumentRef-%s:%s", id.DocumentRefID, elementID(id.ElementRefID))
	}
	return elementID(id.ElementRefID)
}

// renderCreator formats a creation-info actor ("Tool: bomviz").
func renderCreator(c common.Creator) string {
	if c.CreatorType == "" {
		return c.Creator
	}
	return c.CreatorType + ": " + c.Creator
}

// renderActor formats a supplier or originator ("Organization: Acme").
func renderActor(actorType, name string) string {
	if actorType == "" || actorType == "NOASSERTION" {
		return name
	}
	return actorType + ": " + name
}

// checksumList converts the parser's checksum slice, reporting absence for
// empty slices.
func checksumList(sums []common.Checksum) (any, bool) {
	if len(sums) == 0 {
		return nil, false
	}
	out := make([]Checksum, 0, len(sums))
	for _, c := range sums {
		out = append(out, Checksum{Algorithm: string(c.Algorithm), Value: c.Value})
	}
	return out, true
}
