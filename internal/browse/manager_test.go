package browse

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/skybi/symbolist/internal/paginate"
	"github.com/skybi/symbolist/internal/storage/inmem"
	"github.com/skybi/symbolist/internal/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, lifetime time.Duration) *Manager {
	ctx := context.Background()
	driver := inmem.New()
	require.NoError(t, driver.Initialize(ctx))
	t.Cleanup(driver.Close)

	table := symbol.Table{}
	for i := 0; i < 95; i++ {
		table[fmt.Sprintf("circle.%02d", i)] = string(rune(0x100000 + i))
	}
	for i := 0; i < 15; i++ {
		table[fmt.Sprintf("square.%02d", i)] = string(rune(0x100100 + i))
	}
	require.NoError(t, driver.Symbols().Replace(ctx, table))

	return NewManager(driver.Symbols(), Options{
		DefaultPageSize: 10,
		MaxPageSize:     50,
		Lifetime:        lifetime,
	})
}

func TestCreate(t *testing.T) {
	manager := newManager(t, time.Minute)

	session, err := manager.Create(context.Background(), "", 0)
	require.NoError(t, err)

	view, err := session.View(paginate.DefaultTruncation)
	require.NoError(t, err)
	assert.Equal(t, session.ID, *view.ID)
	assert.Equal(t, 0, view.Page)
	assert.Equal(t, 10, view.PageSize)
	assert.Equal(t, 11, view.PageCount)
	assert.Equal(t, 110, view.TotalCount)
	assert.Len(t, view.Content, 10)
	assert.Equal(t, "circle.00", view.Content[0].Name)

	found, err := manager.Get(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, found)
}

func TestCreateRejectsInvalidPageSize(t *testing.T) {
	manager := newManager(t, time.Minute)

	for _, size := range []int{-1, 51} {
		_, err := manager.Create(context.Background(), "", size)
		assert.ErrorIs(t, err, ErrPageSizeOutOfRange)
	}
	assert.Zero(t, manager.Count())
}

func TestNavigation(t *testing.T) {
	manager := newManager(t, time.Minute)
	session, err := manager.Create(context.Background(), "", 10)
	require.NoError(t, err)

	session.GoTo(5)
	view, err := session.View(1)
	require.NoError(t, err)
	assert.Equal(t, 5, view.Page)
	assert.Equal(t, 50, view.LeadingIndex)
	assert.Equal(t, 60, view.TrailingIndex)
	assert.Equal(t, []paginate.Entry{
		paginate.PageEntry(0), paginate.GapEntry,
		paginate.PageEntry(4), paginate.PageEntry(5), paginate.PageEntry(6),
		paginate.GapEntry, paginate.PageEntry(10),
	}, view.Pages)

	session.Next()
	session.Next()
	session.Previous()
	view, err = session.View(1)
	require.NoError(t, err)
	assert.Equal(t, 6, view.Page)

	session.GoTo(1000)
	view, err = session.View(1)
	require.NoError(t, err)
	assert.Equal(t, 11, view.Page)
	assert.Empty(t, view.Content)
	assert.NotNil(t, view.Content)
}

func TestSearchResetsPage(t *testing.T) {
	ctx := context.Background()
	manager := newManager(t, time.Minute)
	session, err := manager.Create(ctx, "", 10)
	require.NoError(t, err)

	session.GoTo(3)
	require.NoError(t, session.Search(ctx, ""))
	view, err := session.View(1)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Page, "repeating the active query keeps the page")

	require.NoError(t, session.Search(ctx, "SQUARE"))
	view, err = session.View(1)
	require.NoError(t, err)
	assert.Equal(t, "SQUARE", view.Query)
	assert.Equal(t, 0, view.Page)
	assert.Equal(t, 15, view.TotalCount)
	assert.Equal(t, 2, view.PageCount)
	assert.Equal(t, "square.00", view.Content[0].Name)

	require.NoError(t, session.Search(ctx, "triangle"))
	view, err = session.View(1)
	require.NoError(t, err)
	assert.Zero(t, view.PageCount)
	assert.Equal(t, []paginate.Entry{paginate.PageEntry(0)}, view.Pages)
}

func TestViewRejectsNegativeTruncation(t *testing.T) {
	manager := newManager(t, time.Minute)
	session, err := manager.Create(context.Background(), "", 10)
	require.NoError(t, err)

	_, err = session.View(-1)
	assert.ErrorIs(t, err, paginate.ErrNegativeTruncation)
}

func TestDelete(t *testing.T) {
	manager := newManager(t, time.Minute)
	session, err := manager.Create(context.Background(), "", 10)
	require.NoError(t, err)

	require.NoError(t, manager.Delete(session.ID))
	_, err = manager.Get(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, manager.Delete(session.ID), ErrSessionNotFound)
	assert.ErrorIs(t, manager.Delete(uuid.New()), ErrSessionNotFound)
}

func TestExpiry(t *testing.T) {
	manager := newManager(t, time.Millisecond)
	session, err := manager.Create(context.Background(), "", 10)
	require.NoError(t, err)

	var expired []uuid.UUID
	manager.OnExpire(func(session *Session) {
		expired = append(expired, session.ID)
	})

	time.Sleep(5 * time.Millisecond)
	_, err = manager.Get(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 1, manager.Expire())
	assert.Equal(t, []uuid.UUID{session.ID}, expired)
	assert.Zero(t, manager.Count())
}
