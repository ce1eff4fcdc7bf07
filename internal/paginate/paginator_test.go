package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	return values
}

func TestNewRejectsNonPositivePageSize(t *testing.T) {
	for _, size := range []int{0, -1, -42} {
		paginator, err := New(sequence(10), size)
		assert.ErrorIs(t, err, ErrInvalidPageSize)
		assert.Nil(t, paginator)
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		length, size, expected int
	}{
		{0, 1, 0},
		{0, 42, 0},
		{1, 1, 1},
		{1, 42, 1},
		{42, 42, 1},
		{43, 42, 2},
		{100, 10, 10},
		{101, 10, 11},
	}
	for _, test := range tests {
		paginator, err := New(sequence(test.length), test.size)
		require.NoError(t, err)
		assert.Equal(t, test.expected, paginator.PageCount(), "length=%d size=%d", test.length, test.size)
		assert.Equal(t, sequence(test.expected), paginator.Pages())
	}
}

func TestPagesReconstructCollection(t *testing.T) {
	for _, length := range []int{0, 1, 7, 42, 100, 257} {
		for _, size := range []int{1, 2, 3, 10, 42, 300} {
			elements := sequence(length)
			paginator, err := New(elements, size)
			require.NoError(t, err)

			var joined []int
			total := 0
			for _, page := range paginator.Pages() {
				paginator.GoToPage(page)
				content := paginator.Content()
				assert.LessOrEqual(t, len(content), size)
				total += len(content)
				joined = append(joined, content...)
			}
			assert.Equal(t, length, total)
			if length > 0 {
				assert.Equal(t, elements, joined)
			}
		}
	}
}

func TestIndices(t *testing.T) {
	paginator, err := New(sequence(25), 10)
	require.NoError(t, err)

	assert.Equal(t, 0, paginator.LeadingIndex())
	assert.Equal(t, 10, paginator.TrailingIndex())

	paginator.GoToPage(2)
	assert.Equal(t, 20, paginator.LeadingIndex())
	assert.Equal(t, 25, paginator.TrailingIndex())
	assert.Equal(t, []int{20, 21, 22, 23, 24}, paginator.Content())
}

func TestGoToPageClamps(t *testing.T) {
	paginator, err := New(sequence(25), 10)
	require.NoError(t, err)

	for _, index := range []int{-100, -1, 0, 1, 2, 3, 4, 100} {
		paginator.GoToPage(index)
		assert.Equal(t, Clamp(index, 0, 3), paginator.Page(), "index=%d", index)
	}
}

func TestGoToPageAllowsOnePastLastPage(t *testing.T) {
	paginator, err := New(sequence(21), 5)
	require.NoError(t, err)

	paginator.GoToPage(paginator.PageCount())
	assert.Equal(t, 5, paginator.Page())
	assert.Empty(t, paginator.Content())
	assert.Equal(t, 25, paginator.LeadingIndex())
	assert.Equal(t, 21, paginator.TrailingIndex())
}

// Walking forward pageCount times lands one past the last page, not on it.
func TestGoToNextPageOffByOne(t *testing.T) {
	paginator, err := New(sequence(100), 7)
	require.NoError(t, err)

	for i := 0; i < paginator.PageCount(); i++ {
		paginator.GoToNextPage()
	}
	assert.Equal(t, paginator.PageCount(), paginator.Page())

	paginator.GoToNextPage()
	assert.Equal(t, paginator.PageCount(), paginator.Page())
}

func TestGoToPreviousPageStopsAtZero(t *testing.T) {
	paginator, err := New(sequence(30), 10)
	require.NoError(t, err)

	paginator.GoToPage(2)
	paginator.GoToPreviousPage()
	assert.Equal(t, 1, paginator.Page())
	paginator.GoToPreviousPage()
	paginator.GoToPreviousPage()
	assert.Equal(t, 0, paginator.Page())
}

func TestEmptyCollection(t *testing.T) {
	paginator, err := New([]string{}, 42)
	require.NoError(t, err)

	assert.Equal(t, 0, paginator.PageCount())
	assert.Empty(t, paginator.Pages())
	assert.Empty(t, paginator.Content())

	paginator.GoToNextPage()
	assert.Equal(t, 0, paginator.Page())
}

func TestSetElementsResetsPage(t *testing.T) {
	paginator, err := New(sequence(100), 10)
	require.NoError(t, err)

	paginator.GoToPage(5)
	paginator.SetElements(sequence(100))
	assert.Equal(t, 0, paginator.Page())

	paginator.GoToPage(3)
	paginator.SetElements([]int{7, 8, 9})
	assert.Equal(t, 0, paginator.Page())
	assert.Equal(t, 1, paginator.PageCount())
	assert.Equal(t, []int{7, 8, 9}, paginator.Content())
}

func TestContentDoesNotAliasCollection(t *testing.T) {
	elements := sequence(10)
	paginator, err := New(elements, 5)
	require.NoError(t, err)

	content := paginator.Content()
	content = append(content, 99)
	assert.Equal(t, 5, elements[5])
	assert.Len(t, content, 6)
}
