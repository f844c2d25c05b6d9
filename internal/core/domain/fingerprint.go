package domain

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint identifies a list of Depends entries independently of their formatting.
func Fingerprint(entries []Entry) string {
	raw := make([]string, len(entries))
	for i, e := range entries {
		raw[i] = e.Raw
	}
	return strconv.FormatUint(xxhash.Sum64String(strings.Join(raw, "\n")), 16)
}
