package paginate

import (
	"encoding/json"
	"errors"
)

// DefaultTruncation is the amount of neighbour pages kept on each side of the active page
const DefaultTruncation = 1

// ErrNegativeTruncation is returned by Truncate if the given truncation is negative
var ErrNegativeTruncation = errors.New("the truncation must not be negative")

// Entry represents a single element of a truncated page list.
// It is either a page index or a gap standing in for one or more omitted pages.
type Entry struct {
	Page int
	Gap  bool
}

// PageEntry creates an entry referring to a page index
func PageEntry(page int) Entry {
	return Entry{Page: page}
}

// GapEntry is the entry standing in for omitted pages
var GapEntry = Entry{Gap: true}

// MarshalJSON encodes pages as plain numbers and gaps as null
func (entry Entry) MarshalJSON() ([]byte, error) {
	if entry.Gap {
		return []byte("null"), nil
	}
	return json.Marshal(entry.Page)
}

// UnmarshalJSON decodes the representation produced by MarshalJSON
func (entry *Entry) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*entry = GapEntry
		return nil
	}
	var page int
	if err := json.Unmarshal(data, &page); err != nil {
		return err
	}
	*entry = PageEntry(page)
	return nil
}

// Truncate shortens a list of page indices for rendering a compact pagination control.
// The first and last page as well as truncation pages on each side of the current one are kept; every run of omitted
// pages is replaced by a single gap entry. An empty page list yields a single entry for page 0.
func Truncate(current int, pages []int, truncation int) ([]Entry, error) {
	if truncation < 0 {
		return nil, ErrNegativeTruncation
	}

	last := len(pages) - 1
	keep := func(page int) bool {
		switch {
		case current <= truncation+1:
			return page == last || page <= truncation*2+2
		case current >= len(pages)-truncation-2:
			return page == 0 || page >= len(pages)-(truncation*2+3)
		default:
			return page == 0 || page == last || (page >= current-truncation && page <= current+truncation)
		}
	}

	kept := make([]int, 0, truncation*2+5)
	for _, page := range pages {
		if keep(page) {
			kept = append(kept, page)
		}
	}
	if len(kept) == 0 {
		return []Entry{PageEntry(0)}, nil
	}

	entries := make([]Entry, 0, len(kept)+2)
	for i, page := range kept {
		entries = append(entries, PageEntry(page))
		if i+1 < len(kept) && abs(kept[i+1]-page) > 1 {
			entries = append(entries, GapEntry)
		}
	}
	return entries, nil
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
