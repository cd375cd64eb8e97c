package dates

import (
	"fmt"
	"time"
)

// Layout is the wire and storage form of a calendar date. Zero-padded ISO
// dates compare lexicographically in calendar order, which the store's range
// predicates rely on.
const Layout = "2006-01-02"

// Parse validates s as a calendar date in YYYY-MM-DD form.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// Format renders t as a calendar date, dropping the time of day.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Before reports whether date a falls strictly earlier than date b.
// Both must be in Layout form.
func Before(a, b string) bool {
	return a < b
}

// After reports whether date a falls strictly later than date b.
func After(a, b string) bool {
	return a > b
}
