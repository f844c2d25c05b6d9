// Package control reads and writes Debian control documents.
package control

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"go.trai.ch/metapin/internal/core/domain"
	"go.trai.ch/zerr"
	debcontrol "pault.ag/go/debian/control"
)

// Reader implements ports.ControlReader using pault.ag/go/debian/control.
type Reader struct{}

// NewReader creates a new control file reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the control file at path into its paragraphs, in document order.
func (r *Reader) Read(path string) (domain.Document, error) {
	//nolint:gosec // path is provided by user configuration
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open control file"), "path", path)
	}
	defer func() { _ = f.Close() }()

	doc, err := Parse(f)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return doc, nil
}

// Parse reads all paragraphs from in.
// Continuation lines keep their original indentation.
func Parse(in io.Reader) (domain.Document, error) {
	var raw bytes.Buffer
	reader, err := debcontrol.NewParagraphReader(bufio.NewReader(io.TeeReader(in, &raw)), nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create paragraph reader")
	}

	paragraphs, err := reader.All()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to parse control file")
	}

	var lines []continuations
	if !bytes.HasPrefix(raw.Bytes(), []byte(pgpArmor)) {
		lines = scanContinuations(raw.String())
	}

	doc := make(domain.Document, 0, len(paragraphs))
	for i, p := range paragraphs {
		var cont continuations
		if len(lines) == len(paragraphs) {
			cont = lines[i]
		}
		doc = append(doc, fromDebian(p, cont))
	}
	return doc, nil
}

// pgpArmor starts clearsigned documents, whose raw text differs from the parsed paragraphs.
const pgpArmor = "-----BEGIN PGP "

// continuations maps a field to its continuation lines as written in the source.
type continuations map[string][]string

// scanContinuations collects the raw continuation lines of every paragraph,
// following the paragraph and field boundaries of the control parser.
func scanContinuations(text string) []continuations {
	var (
		out []continuations
		cur continuations
		key string
	)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		switch {
		case line == "":
			if cur != nil {
				out = append(out, cur)
				cur = nil
			}
		case strings.HasPrefix(line, "#"):
		case line[0] == ' ' || line[0] == '\t':
			if cur != nil {
				cur[key] = append(cur[key], line)
			}
		default:
			if cur == nil {
				cur = continuations{}
			}
			name, _, _ := strings.Cut(line, ":")
			key = strings.TrimSpace(name)
			cur[key] = nil
		}
	}
	if cur != nil {
		out = append(out, cur)
	}
	return out
}

// fromDebian rebuilds each value as "first line" followed by the raw continuation lines.
// Without raw lines the parsed ones are re-indented by one space.
func fromDebian(p debcontrol.Paragraph, cont continuations) domain.Paragraph {
	out := domain.NewParagraph()
	for _, field := range p.Order {
		parsed := strings.Split(strings.TrimSuffix(p.Values[field], "\n"), "\n")

		raw, ok := cont[field]
		if !ok || len(parsed) < len(raw) || len(parsed) > len(raw)+1 {
			for i := 1; i < len(parsed); i++ {
				if parsed[i] == "" {
					parsed[i] = "."
				}
				parsed[i] = " " + parsed[i]
			}
			out.Set(field, strings.TrimRightFunc(strings.Join(parsed, "\n"), unicode.IsSpace))
			continue
		}

		first := ""
		if len(parsed) == len(raw)+1 {
			first = parsed[0]
		}
		out.Set(field, strings.Join(append([]string{first}, raw...), "\n"))
	}
	return out
}
