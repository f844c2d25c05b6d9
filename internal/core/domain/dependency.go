package domain

import "strings"

// placeholderPrefix marks substitution variables such as ${misc:Depends}.
const placeholderPrefix = "$"

// Entry is a single token of a Depends field.
type Entry struct {
	// Raw is the token after whitespace and trailing comma trimming.
	Raw string

	// Name is the package reference, possibly architecture-qualified (e.g., "foo:amd64").
	// It is empty for placeholders.
	Name string

	// Placeholder reports whether the token is a substitution variable that is passed through unchanged.
	Placeholder bool
}

// ParseEntries splits a Depends value into entries, one per line.
// Surrounding whitespace and a single trailing comma are removed; empty lines are skipped.
func ParseEntries(depends string) []Entry {
	lines := strings.Split(depends, "\n")
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		raw := strings.TrimSpace(line)
		raw = strings.TrimSpace(strings.TrimSuffix(raw, ","))
		if raw == "" {
			continue
		}
		if strings.HasPrefix(raw, placeholderPrefix) {
			entries = append(entries, Entry{Raw: raw, Placeholder: true})
			continue
		}
		entries = append(entries, Entry{Raw: raw, Name: raw})
	}
	return entries
}

// Qualified reports whether the package reference already names an architecture.
func (e Entry) Qualified() bool {
	return strings.Contains(e.Name, ":")
}

// Pin is the resolution of one Depends entry.
type Pin struct {
	Entry Entry

	// Key is the lookup key that produced Version (e.g., "foo:all"). Empty for placeholders.
	Key string

	// Version is the candidate version reported by the package cache. Empty for placeholders.
	Version string
}

// Render formats the pin as a Depends entry using the given relation operator.
func (p Pin) Render(operator string) string {
	if p.Entry.Placeholder {
		return p.Entry.Raw
	}
	return p.Entry.Name + " (" + operator + " " + p.Version + ")"
}

// Rewrite is the result of pinning a meta-package paragraph.
type Rewrite struct {
	// Paragraph is the renamed paragraph with the rewritten Depends field.
	Paragraph Paragraph

	// Pins lists the resolved entries in Depends order.
	Pins []Pin

	// Fingerprint identifies the source Depends entries.
	Fingerprint string
}
