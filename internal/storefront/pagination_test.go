package storefront

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// render flattens a window into a compact string, "." standing for an
// ellipsis and brackets marking the current page.
func render(refs []PageRef) string {
	out := ""
	for i, r := range refs {
		if i > 0 {
			out += " "
		}
		switch {
		case r.Ellipsis:
			out += "."
		case r.Current:
			out += "[" + strconv.Itoa(r.Number) + "]"
		default:
			out += strconv.Itoa(r.Number)
		}
	}
	return out
}

func TestPageWindowSmallTotals(t *testing.T) {
	assert.Equal(t, "[1]", render(PageWindow(1, 1)))
	assert.Equal(t, "[1] 2 3", render(PageWindow(1, 3)))
	assert.Equal(t, "1 [2] 3", render(PageWindow(2, 3)))
}

func TestPageWindowCollapsesMiddle(t *testing.T) {
	assert.Equal(t, "1 . 4 [5] 6 . 10", render(PageWindow(5, 10)))
}

func TestPageWindowNearEdges(t *testing.T) {
	assert.Equal(t, "[1] 2 . 10", render(PageWindow(1, 10)))
	assert.Equal(t, "1 [2] 3 . 10", render(PageWindow(2, 10)))
	assert.Equal(t, "1 2 [3] 4 . 10", render(PageWindow(3, 10)))
	assert.Equal(t, "1 . 9 [10]", render(PageWindow(10, 10)))
	assert.Equal(t, "1 . 8 [9] 10", render(PageWindow(9, 10)))
}

func TestPageWindowZeroTotal(t *testing.T) {
	assert.Empty(t, PageWindow(1, 0))
}
