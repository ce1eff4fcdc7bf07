package cache

import (
	"context"
	"testing"
	"time"

	"github.com/skybi/symbolist/internal/storage/inmem"
	"github.com/skybi/symbolist/internal/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRepository struct {
	symbol.Repository
	searches int
	names    int
}

func (repo *countingRepository) Search(ctx context.Context, query string) ([]*symbol.Symbol, error) {
	repo.searches++
	return repo.Repository.Search(ctx, query)
}

func (repo *countingRepository) GetByName(ctx context.Context, name string) (*symbol.Symbol, error) {
	repo.names++
	return repo.Repository.GetByName(ctx, name)
}

func newCountingDriver(t *testing.T) (*Driver, *countingRepository) {
	ctx := context.Background()
	underlying := inmem.New()
	require.NoError(t, underlying.Initialize(ctx))
	require.NoError(t, underlying.Symbols().Replace(ctx, symbol.Table{"cloud": "a", "sun.max": "b"}))

	driver := New(underlying, time.Minute)
	require.NoError(t, driver.Initialize(ctx))
	counting := &countingRepository{Repository: underlying.Symbols()}
	driver.symbols.repo = counting
	t.Cleanup(driver.Close)
	return driver, counting
}

func TestSearchIsCached(t *testing.T) {
	ctx := context.Background()
	driver, counting := newCountingDriver(t)

	first, err := driver.Symbols().Search(ctx, "cloud")
	require.NoError(t, err)
	second, err := driver.Symbols().Search(ctx, "cloud")
	require.NoError(t, err)

	assert.Equal(t, 1, counting.searches)
	require.Len(t, first, 1)
	assert.Same(t, &first[0], &second[0])
}

func TestMissingSymbolsAreNotCached(t *testing.T) {
	ctx := context.Background()
	driver, counting := newCountingDriver(t)

	for i := 0; i < 2; i++ {
		obj, err := driver.Symbols().GetByName(ctx, "moon")
		require.NoError(t, err)
		assert.Nil(t, obj)
	}
	assert.Equal(t, 2, counting.names)

	for i := 0; i < 2; i++ {
		obj, err := driver.Symbols().GetByName(ctx, "cloud")
		require.NoError(t, err)
		assert.Equal(t, "a", obj.Glyph)
	}
	assert.Equal(t, 3, counting.names)
}

func TestReplaceInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	driver, counting := newCountingDriver(t)

	_, err := driver.Symbols().Search(ctx, "")
	require.NoError(t, err)
	require.NoError(t, driver.Symbols().Replace(ctx, symbol.Table{"moon": "c", "moon.fill": "d"}))

	symbols, err := driver.Symbols().Search(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, counting.searches)
	require.Len(t, symbols, 2)
	assert.Equal(t, "moon", symbols[0].Name)

	obj, err := driver.Symbols().GetByGlyph(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, "moon.fill", obj.Name)
}

// blockingRepository hands out a search result computed before it blocks, like a slow database query
type blockingRepository struct {
	symbol.Repository
	entered chan struct{}
	release chan struct{}
}

func (repo *blockingRepository) Search(ctx context.Context, query string) ([]*symbol.Symbol, error) {
	symbols, err := repo.Repository.Search(ctx, query)
	close(repo.entered)
	<-repo.release
	return symbols, err
}

func TestReplaceDropsInFlightFills(t *testing.T) {
	ctx := context.Background()
	underlying := inmem.New()
	require.NoError(t, underlying.Initialize(ctx))
	require.NoError(t, underlying.Symbols().Replace(ctx, symbol.Table{"old": "a"}))

	driver := New(underlying, time.Minute)
	require.NoError(t, driver.Initialize(ctx))
	t.Cleanup(driver.Close)
	blocking := &blockingRepository{
		Repository: underlying.Symbols(),
		entered:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	driver.symbols.repo = blocking

	done := make(chan []*symbol.Symbol)
	go func() {
		symbols, err := driver.Symbols().Search(ctx, "")
		assert.NoError(t, err)
		done <- symbols
	}()

	<-blocking.entered
	require.NoError(t, driver.Symbols().Replace(ctx, symbol.Table{"new": "b"}))
	close(blocking.release)
	stale := <-done
	require.Len(t, stale, 1)
	assert.Equal(t, "old", stale[0].Name)

	// The blocking repository only blocks once
	driver.symbols.repo = underlying.Symbols()
	symbols, err := driver.Symbols().Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, symbols, 1)
	assert.Equal(t, "new", symbols[0].Name)
}
