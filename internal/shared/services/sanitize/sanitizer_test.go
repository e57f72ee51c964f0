package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizerText(t *testing.T) {
	s := NewSanitizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Course Analytics", "Course Analytics"},
		{"trims", "  Canvas  ", "Canvas"},
		{"strips tags", "<b>Canvas</b> LMS", "Canvas LMS"},
		{"drops script", "Tool<script>alert(1)</script>", "Tool"},
		{"keeps ampersand", "R&D dashboard", "R&D dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Text(tt.in))
		})
	}
}
