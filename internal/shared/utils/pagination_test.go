package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNumberParam(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		def  int
		min  int
		max  int
		want int
	}{
		{name: "empty uses default", raw: "", def: 10, min: 1, max: 25, want: 10},
		{name: "not a number uses default", raw: "ten", def: 10, min: 1, max: 25, want: 10},
		{name: "within range", raw: "7", def: 10, min: 1, max: 25, want: 7},
		{name: "clamped to max", raw: "100", def: 10, min: 1, max: 25, want: 25},
		{name: "clamped to min", raw: "0", def: 10, min: 1, max: 25, want: 1},
		{name: "negative clamped to min", raw: "-4", def: 10, min: 1, max: 25, want: 1},
		{name: "no upper bound", raw: "5000", def: 0, min: 0, max: -1, want: 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NumberParam(tt.raw, tt.def, tt.min, tt.max))
		})
	}
}

func TestParseWindow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", query: "", wantLimit: 10, wantOffset: 0},
		{name: "explicit", query: "?limit=5&offset=20", wantLimit: 5, wantOffset: 20},
		{name: "limit capped at 25", query: "?limit=26", wantLimit: 25, wantOffset: 0},
		{name: "negative offset", query: "?offset=-3", wantLimit: 10, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/user/u1/recentactivities"+tt.query, nil)

			w := ParseWindow(c)
			assert.Equal(t, tt.wantLimit, w.Limit)
			assert.Equal(t, tt.wantOffset, w.Offset)
		})
	}
}
