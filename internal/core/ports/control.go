// Package ports defines the core interfaces for the application.
package ports

import (
	"io"

	"go.trai.ch/metapin/internal/core/domain"
)

// ControlReader reads control documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=control.go -destination=mocks/mock_control.go -package=mocks
type ControlReader interface {
	// Read parses the control file at path into its paragraphs.
	Read(path string) (domain.Document, error)
}

// ControlWriter serializes paragraphs in control-file format.
type ControlWriter interface {
	// Write emits the paragraph as "Field: value" lines in field order.
	Write(w io.Writer, p domain.Paragraph) error
}
