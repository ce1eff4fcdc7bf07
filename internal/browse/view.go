package browse

import (
	"github.com/google/uuid"
	"github.com/skybi/symbolist/internal/paginate"
	"github.com/skybi/symbolist/internal/symbol"
)

// View represents a snapshot of a paginated symbol collection ready for rendering
type View struct {
	ID            *uuid.UUID
	Query         string
	Page          int
	PageSize      int
	PageCount     int
	TotalCount    int
	LeadingIndex  int
	TrailingIndex int
	Pages         []paginate.Entry
	Content       []*symbol.Symbol
}

// Render creates a view of the active page of paginator.
// The page list is truncated keeping truncation neighbour pages around the active one.
func Render(paginator *paginate.Paginator[*symbol.Symbol], query string, truncation int) (*View, error) {
	pages, err := paginate.Truncate(paginator.Page(), paginator.Pages(), truncation)
	if err != nil {
		return nil, err
	}
	content := paginator.Content()
	if content == nil {
		content = []*symbol.Symbol{}
	}
	return &View{
		Query:         query,
		Page:          paginator.Page(),
		PageSize:      paginator.Size(),
		PageCount:     paginator.PageCount(),
		TotalCount:    paginator.Len(),
		LeadingIndex:  paginator.LeadingIndex(),
		TrailingIndex: paginator.TrailingIndex(),
		Pages:         pages,
		Content:       content,
	}, nil
}
