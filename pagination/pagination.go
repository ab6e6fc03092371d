// Package pagination computes page windows for list endpoints and the
// catalogue pager.
package pagination

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Page is a normalized page request.
type Page struct {
	Number  int `json:"page"`
	PerPage int `json:"per_page"`
}

// NewPage clamps a raw request: page starts at 1, perPage falls back to
// DefaultPerPage and is capped at MaxPerPage.
func NewPage(number, perPage int) Page {
	if number < 1 {
		number = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Page{Number: number, PerPage: perPage}
}

// Offset is the index of the first item on the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// TotalPages returns how many pages hold total items. Zero items is zero pages.
func TotalPages(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// Bounds returns the [start, end) slice indices of page p over total items.
// Both are total when the page is past the end.
func (p Page) Bounds(total int) (int, int) {
	start := p.Offset()
	if start >= total {
		return total, total
	}
	return start, min(start+p.PerPage, total)
}

// Window returns up to maxVisible page numbers around current, clamped to
// [1, total]. The current page sits in the middle when there is room.
func Window(current, total, maxVisible int) []int {
	if total <= 0 || maxVisible <= 0 {
		return []int{}
	}
	current = max(1, min(current, total))
	if maxVisible > total {
		maxVisible = total
	}

	start := current - maxVisible/2
	if start < 1 {
		start = 1
	}
	if start+maxVisible-1 > total {
		start = total - maxVisible + 1
	}

	pages := make([]int, 0, maxVisible)
	for n := start; n < start+maxVisible; n++ {
		pages = append(pages, n)
	}
	return pages
}
