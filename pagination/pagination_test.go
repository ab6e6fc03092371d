package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	assert.Equal(t, Page{Number: 1, PerPage: DefaultPerPage}, NewPage(0, 0))
	assert.Equal(t, Page{Number: 3, PerPage: 10}, NewPage(3, 10))
	assert.Equal(t, Page{Number: 1, PerPage: MaxPerPage}, NewPage(-2, 1000))
}

func TestBounds(t *testing.T) {
	p := NewPage(2, 10)
	start, end := p.Bounds(25)
	assert.Equal(t, 10, start)
	assert.Equal(t, 20, end)

	start, end = NewPage(3, 10).Bounds(25)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	start, end = NewPage(4, 10).Bounds(25)
	assert.Equal(t, 25, start)
	assert.Equal(t, 25, end)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 3, TotalPages(21, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name                    string
		current, total, visible int
		want                    []int
	}{
		{"centered", 5, 10, 5, []int{3, 4, 5, 6, 7}},
		{"start edge", 1, 10, 5, []int{1, 2, 3, 4, 5}},
		{"near start", 2, 10, 5, []int{1, 2, 3, 4, 5}},
		{"end edge", 10, 10, 5, []int{6, 7, 8, 9, 10}},
		{"fewer pages than window", 2, 3, 5, []int{1, 2, 3}},
		{"current past end", 42, 4, 3, []int{2, 3, 4}},
		{"even window", 5, 10, 4, []int{3, 4, 5, 6}},
		{"no pages", 1, 0, 5, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Window(tt.current, tt.total, tt.visible))
		})
	}
}
