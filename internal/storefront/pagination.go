package storefront

// PageRef is one slot in the rendered pagination strip: either a page number
// or an ellipsis standing in for a collapsed run.
type PageRef struct {
	Number   int
	Ellipsis bool
	Current  bool
}

// PageWindow collapses a long page list around the current page. The first
// and last pages and current±1 stay visible; the runs at current±2 each
// shrink to a single ellipsis. For small totals every page is listed.
func PageWindow(current, total int) []PageRef {
	var refs []PageRef
	for n := 1; n <= total; n++ {
		switch {
		case n == 1 || n == total || (n >= current-1 && n <= current+1):
			refs = append(refs, PageRef{Number: n, Current: n == current})
		case n == current-2 || n == current+2:
			refs = append(refs, PageRef{Ellipsis: true})
		}
	}
	return refs
}
