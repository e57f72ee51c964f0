package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lrsproject/lrs/internal/shared/constants"
)

// Window is an offset based page request.
type Window struct {
	Limit  int
	Offset int
}

// NumberParam parses raw as an integer, returning def when it is empty or
// not a number, and clamping the result into [min, max]. A max below min
// means no upper bound.
func NumberParam(raw string, def, min, max int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		n = def
	}
	if n < min {
		n = min
	}
	if max >= min && n > max {
		n = max
	}
	return n
}

// ParseWindow reads limit and offset from the query string.
func ParseWindow(c *gin.Context) Window {
	return Window{
		Limit:  NumberParam(c.Query("limit"), constants.DefaultLimit, constants.MinLimit, constants.MaxLimit),
		Offset: NumberParam(c.Query("offset"), 0, 0, -1),
	}
}
