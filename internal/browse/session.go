package browse

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/skybi/symbolist/internal/paginate"
	"github.com/skybi/symbolist/internal/symbol"
)

// Session represents a client browsing the symbol set page by page.
// All methods are safe for concurrent use.
type Session struct {
	ID uuid.UUID

	mtx       sync.Mutex
	repo      symbol.Repository
	query     string
	paginator *paginate.Paginator[*symbol.Symbol]
}

// Query returns the active search query
func (session *Session) Query() string {
	session.mtx.Lock()
	defer session.mtx.Unlock()
	return session.query
}

// Search applies a new search query.
// If the query changed, the matching symbols replace the paginated collection and the session returns to page 0;
// repeating the active query keeps the current page.
func (session *Session) Search(ctx context.Context, query string) error {
	session.mtx.Lock()
	defer session.mtx.Unlock()
	if query == session.query {
		return nil
	}
	symbols, err := session.repo.Search(ctx, query)
	if err != nil {
		return err
	}
	session.query = query
	session.paginator.SetElements(symbols)
	return nil
}

// Next moves to the next page
func (session *Session) Next() {
	session.mtx.Lock()
	defer session.mtx.Unlock()
	session.paginator.GoToNextPage()
}

// Previous moves to the previous page
func (session *Session) Previous() {
	session.mtx.Lock()
	defer session.mtx.Unlock()
	session.paginator.GoToPreviousPage()
}

// GoTo moves to the given page, clamped into the valid range
func (session *Session) GoTo(page int) {
	session.mtx.Lock()
	defer session.mtx.Unlock()
	session.paginator.GoToPage(page)
}

// View renders the active page
func (session *Session) View(truncation int) (*View, error) {
	session.mtx.Lock()
	defer session.mtx.Unlock()
	view, err := Render(session.paginator, session.query, truncation)
	if err != nil {
		return nil, err
	}
	id := session.ID
	view.ID = &id
	return view, nil
}
