package dates

import "time"

// Layouts used across the catalog: Medium for display, ISO for form
// values and form parsing.
const (
	MediumLayout = "Jan 2, 2006"
	ISOLayout    = "2006-01-02"
)

// Medium formats a date for display, e.g. "Oct 6, 2020".
func Medium(t time.Time) string {
	return t.Format(MediumLayout)
}

// ISO formats a date as yyyy-mm-dd for HTML date inputs.
func ISO(t time.Time) string {
	return t.Format(ISOLayout)
}

// ParseISO parses a yyyy-mm-dd form value.
func ParseISO(s string) (time.Time, error) {
	return time.Parse(ISOLayout, s)
}
