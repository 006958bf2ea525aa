package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// The strict policy strips every HTML element and escapes entities,
// mirroring what the form layer expects from user input.
var policy = bluemonday.StrictPolicy()

// Clean trims surrounding whitespace and sanitizes HTML from a single
// form value. The result is what gets validated and stored.
func Clean(s string) string {
	return policy.Sanitize(strings.TrimSpace(s))
}

// CleanAll applies Clean to every element, returning a new slice.
// A nil input yields an empty, non-nil slice.
func CleanAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, Clean(v))
	}
	return out
}
