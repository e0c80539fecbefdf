// Package numbering implements the sequential document number scheme:
// {PREFIX}-{n:05d}, where n continues from the numeric suffix of the most
// recently created document of the same type.
package numbering

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders a document number from a prefix and sequence value.
func Format(prefix string, n int64) string {
	return fmt.Sprintf("%s-%05d", prefix, n)
}

// ParseSuffix extracts the numeric suffix after the last '-' of an
// existing document number. It returns false when the number has no
// parseable suffix (non-numeric or corrupted data).
func ParseSuffix(number string) (int64, bool) {
	idx := strings.LastIndex(number, "-")
	if idx < 0 || idx == len(number)-1 {
		return 0, false
	}
	n, err := strconv.ParseInt(number[idx+1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Next computes the next number in sequence. latest is the number of the
// most recently created document of the type ("" when none exists) and
// count is the total number of documents of that type. When latest has a
// numeric suffix the sequence continues from it; otherwise the scheme
// falls back to count+1, which can collide with non-standard numbers
// already in the table — the caller detects that through the unique index
// and retries.
func Next(prefix, latest string, count int64) string {
	if latest != "" {
		if n, ok := ParseSuffix(latest); ok {
			return Format(prefix, n+1)
		}
		return Format(prefix, count+1)
	}
	return Format(prefix, 1)
}
