package utils

import "time"

// NowRFC3339 returns the current time in RFC3339 format
func NowRFC3339() string {
	return time.Now().Format(time.RFC3339)
}

// ParseRFC3339 parses a time string in RFC3339 format
func ParseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// NewerThan reports whether timestamp a is strictly newer than b.
// Unparseable timestamps are treated as the zero time, so a record with a
// broken updatedAt never wins a merge.
func NewerThan(a, b string) bool {
	ta, err := ParseRFC3339(a)
	if err != nil {
		ta = time.Time{}
	}
	tb, err := ParseRFC3339(b)
	if err != nil {
		tb = time.Time{}
	}
	return ta.After(tb)
}
