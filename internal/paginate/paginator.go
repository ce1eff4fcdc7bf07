package paginate

import "errors"

// ErrInvalidPageSize is returned when a paginator is created with a page size smaller than 1
var ErrInvalidPageSize = errors.New("the page size has to be at least 1")

// Paginator slices a collection into pages of a fixed size and keeps track of the active page.
// All values except the active page index are derived from the collection on every read.
// A Paginator is not safe for concurrent use.
type Paginator[T any] struct {
	elements []T
	size     int
	page     int
}

// New creates a new paginator over elements using the given page size.
// The given slice is never modified.
func New[T any](elements []T, size int) (*Paginator[T], error) {
	if size < 1 {
		return nil, ErrInvalidPageSize
	}
	return &Paginator[T]{
		elements: elements,
		size:     size,
	}, nil
}

// SetElements replaces the paginated collection.
// The active page is always reset to 0, even if the new collection holds the same elements.
func (paginator *Paginator[T]) SetElements(elements []T) {
	paginator.elements = elements
	paginator.page = 0
}

// Size returns the page size
func (paginator *Paginator[T]) Size() int {
	return paginator.size
}

// Len returns the amount of elements in the collection
func (paginator *Paginator[T]) Len() int {
	return len(paginator.elements)
}

// Page returns the active page index
func (paginator *Paginator[T]) Page() int {
	return paginator.page
}

// PageCount returns the amount of pages; 0 for an empty collection
func (paginator *Paginator[T]) PageCount() int {
	return (len(paginator.elements) + paginator.size - 1) / paginator.size
}

// Pages returns all page indices
func (paginator *Paginator[T]) Pages() []int {
	pages := make([]int, paginator.PageCount())
	for i := range pages {
		pages[i] = i
	}
	return pages
}

// LeadingIndex returns the index of the first element of the active page
func (paginator *Paginator[T]) LeadingIndex() int {
	return paginator.page * paginator.size
}

// TrailingIndex returns the (exclusive) index of the last element of the active page
func (paginator *Paginator[T]) TrailingIndex() int {
	trailing := paginator.size * (paginator.page + 1)
	if n := len(paginator.elements); trailing > n {
		return n
	}
	return trailing
}

// Content returns the elements of the active page.
// The page one past the last one is empty.
func (paginator *Paginator[T]) Content() []T {
	leading, trailing := paginator.LeadingIndex(), paginator.TrailingIndex()
	if leading >= trailing {
		return paginator.elements[:0:0]
	}
	return paginator.elements[leading:trailing:trailing]
}

// GoToPage sets the active page, clamped into [0, PageCount].
// Note that PageCount itself is a reachable value.
func (paginator *Paginator[T]) GoToPage(index int) {
	paginator.page = Clamp(index, 0, paginator.PageCount())
}

// GoToNextPage moves to the next page, if it exists
func (paginator *Paginator[T]) GoToNextPage() {
	paginator.GoToPage(paginator.page + 1)
}

// GoToPreviousPage moves to the previous page, if it exists
func (paginator *Paginator[T]) GoToPreviousPage() {
	paginator.GoToPage(paginator.page - 1)
}

// Clamp clamps value into the range [min, max]
func Clamp(value, min, max int) int {
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return value
}
