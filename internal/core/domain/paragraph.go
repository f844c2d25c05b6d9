package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

const (
	// FieldPackage is the control field naming a binary package.
	FieldPackage = "Package"

	// FieldDepends is the control field listing the dependencies of a binary package.
	FieldDepends = "Depends"
)

// Paragraph is one record of a control document: an ordered set of fields.
type Paragraph struct {
	// Order holds the field names in the order they appear in the document.
	Order []string

	// Values maps field names to their (possibly multi-line) values.
	Values map[string]string
}

// NewParagraph creates an empty paragraph.
func NewParagraph() Paragraph {
	return Paragraph{Values: make(map[string]string)}
}

// Get returns the value of a field and whether it is present.
func (p Paragraph) Get(field string) (string, bool) {
	v, ok := p.Values[field]
	return v, ok
}

// Set overwrites a field in place, or appends it when it is not present yet.
func (p *Paragraph) Set(field, value string) {
	if p.Values == nil {
		p.Values = make(map[string]string)
	}
	if _, ok := p.Values[field]; !ok {
		p.Order = append(p.Order, field)
	}
	p.Values[field] = value
}

// Clone returns a deep copy of the paragraph.
func (p Paragraph) Clone() Paragraph {
	return Paragraph{
		Order:  slices.Clone(p.Order),
		Values: maps.Clone(p.Values),
	}
}

// Document is an ordered sequence of paragraphs parsed from a control file.
type Document []Paragraph

// Find returns a copy of the first paragraph whose field equals value.
func (d Document) Find(field, value string) (Paragraph, error) {
	for _, p := range d {
		if v, ok := p.Get(field); ok && v == value {
			return p.Clone(), nil
		}
	}
	err := zerr.Wrap(ErrParagraphNotFound, "no matching paragraph in control document")
	err = zerr.With(err, "field", field)
	return Paragraph{}, zerr.With(err, "value", value)
}
