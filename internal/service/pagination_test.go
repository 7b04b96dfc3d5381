package service

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name              string
		total, page, size int
		expectedStart     int
		expectedEnd       int
		expectedPages     int
	}{
		{"empty collection", 0, 1, 10, 0, 0, 0},
		{"first page", 25, 1, 10, 0, 10, 3},
		{"middle page", 25, 2, 10, 10, 20, 3},
		{"short last page", 25, 3, 10, 20, 25, 3},
		{"page beyond end", 25, 9, 10, 25, 25, 3},
		{"exact division", 20, 2, 10, 10, 20, 2},
		{"page size one", 3, 2, 1, 1, 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, pages := paginate(tt.total, tt.page, tt.size)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
			assert.Equal(t, tt.expectedPages, pages)
		})
	}
}

func TestPaginate_SliceLengthProperty(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 95} {
		for page := 1; page <= 12; page++ {
			start, end, _ := paginate(n, page, 10)
			expected := n - (page-1)*10
			if expected < 0 {
				expected = 0
			}
			if expected > 10 {
				expected = 10
			}
			assert.Equal(t, expected, end-start, "n=%d page=%d", n, page)
		}
	}
}

func TestClamping(t *testing.T) {
	assert.Equal(t, 1, clampPage(0))
	assert.Equal(t, 1, clampPage(-3))
	assert.Equal(t, 7, clampPage(7))

	assert.Equal(t, defaultPageSize, clampPageSize(0))
	assert.Equal(t, defaultPageSize, clampPageSize(-1))
	assert.Equal(t, maxPageSize, clampPageSize(5000))
	assert.Equal(t, 25, clampPageSize(25))
}

func TestNewPage_NextLink(t *testing.T) {
	raw := url.Values{"searchtext": {"hello"}, "current_page": {"1"}}

	env := newPage([]int{1, 2, 3}, 30, 1, 10, raw)
	require.NotNil(t, env.NextPage)
	assert.Equal(t, 2, env.NextPage.Page)

	next, err := url.ParseQuery(env.NextPage.Query[1:])
	require.NoError(t, err)
	// Filter parameters survive; the page number advances.
	assert.Equal(t, "hello", next.Get("searchtext"))
	assert.Equal(t, "2", next.Get(paramPage))
	assert.Equal(t, "10", next.Get(paramPageSize))

	// No next link on the last page.
	last := newPage([]int{1}, 30, 3, 10, raw)
	assert.Nil(t, last.NextPage)
}
