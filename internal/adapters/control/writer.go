package control

import (
	"io"
	"strings"

	"go.trai.ch/metapin/internal/core/domain"
	"go.trai.ch/zerr"
)

// Writer implements ports.ControlWriter.
//
// Continuation lines that start with whitespace are written verbatim. Other
// lines are indented by one space and empty ones are written as " .", so
// multi-line values stay valid control syntax.
type Writer struct{}

// NewWriter creates a new control paragraph writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write emits the paragraph as "Field: value" lines in field order.
func (w *Writer) Write(out io.Writer, p domain.Paragraph) error {
	if _, err := io.WriteString(out, Format(p)); err != nil {
		return zerr.Wrap(err, "failed to write control paragraph")
	}
	return nil
}

// Format renders the paragraph in control-file syntax, terminated by a newline.
func Format(p domain.Paragraph) string {
	var b strings.Builder
	for _, field := range p.Order {
		lines := strings.Split(p.Values[field], "\n")

		b.WriteString(field)
		b.WriteString(":")
		if lines[0] != "" {
			b.WriteString(" ")
			b.WriteString(lines[0])
		}
		b.WriteString("\n")

		for _, line := range lines[1:] {
			switch {
			case line != "" && (line[0] == ' ' || line[0] == '\t'):
				b.WriteString(line)
			case line == "":
				b.WriteString(" .")
			default:
				b.WriteString(" ")
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
