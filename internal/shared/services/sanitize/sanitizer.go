// Package sanitize strips markup from operator supplied text before it is
// stored and later shown to users in data-use listings.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type Sanitizer interface {
	// Text removes every tag and returns the trimmed plain text.
	Text(s string) string
}

type strictSanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() Sanitizer {
	return &strictSanitizer{policy: bluemonday.StrictPolicy()}
}

// bluemonday escapes the text it keeps; the result is stored as plain text
// so entities are decoded again.
func (s *strictSanitizer) Text(in string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(in)))
}
