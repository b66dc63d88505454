// Package dates handles the wire format for dates: plain YYYY-MM-DD
// strings, time-of-day dropped on the way out.
package dates

import "time"

const Layout = "2006-01-02"

func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// FormatPtr renders a nullable timestamp, nil stays nil.
func FormatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(Layout)
	return &s
}
