package schema

import (
	"github.com/google/uuid"
	"github.com/skybi/symbolist/internal/browse"
	"github.com/skybi/symbolist/internal/paginate"
	"github.com/skybi/symbolist/internal/symbol"
)

// PaginatedResponse represents a unified paginated API response
type PaginatedResponse[T any] struct {
	Pagination *PaginationMetadata `json:"pagination"`
	Data       []T                 `json:"data"`
}

// PaginationMetadata represents the metadata present in a PaginatedResponse.
// Pages holds the truncated page list; gaps are encoded as null.
type PaginationMetadata struct {
	SessionID     *uuid.UUID       `json:"session_id,omitempty"`
	Search        string           `json:"search"`
	Page          int              `json:"page"`
	PageSize      int              `json:"page_size"`
	PageCount     int              `json:"page_count"`
	TotalCount    int              `json:"total_count"`
	IncludedCount int              `json:"included_count"`
	LeadingIndex  int              `json:"leading_index"`
	TrailingIndex int              `json:"trailing_index"`
	Pages         []paginate.Entry `json:"pages"`
}

// BuildPaginatedResponse builds a unified paginated API response out of a rendered page
func BuildPaginatedResponse(view *browse.View) *PaginatedResponse[*symbol.Symbol] {
	return &PaginatedResponse[*symbol.Symbol]{
		Pagination: &PaginationMetadata{
			SessionID:     view.ID,
			Search:        view.Query,
			Page:          view.Page,
			PageSize:      view.PageSize,
			PageCount:     view.PageCount,
			TotalCount:    view.TotalCount,
			IncludedCount: len(view.Content),
			LeadingIndex:  view.LeadingIndex,
			TrailingIndex: view.TrailingIndex,
			Pages:         view.Pages,
		},
		Data: view.Content,
	}
}
