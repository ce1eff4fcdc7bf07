package cache

import (
	"context"
	"sync"
	"time"

	"github.com/skybi/symbolist/internal/hashmap"
	"github.com/skybi/symbolist/internal/symbol"
)

// SymbolRepository implements the symbol.Repository interface in order to implement caching.
// Search results are shared between callers and must be treated as read-only.
type SymbolRepository struct {
	repo symbol.Repository

	// generation is bumped by Replace; fills started in an older generation are dropped
	mtx        sync.RWMutex
	generation uint64

	names    *hashmap.ExpiringMap[string, *symbol.Symbol]
	glyphs   *hashmap.ExpiringMap[string, *symbol.Symbol]
	searches *hashmap.ExpiringMap[string, []*symbol.Symbol]
}

var _ symbol.Repository = (*SymbolRepository)(nil)

// GetByName retrieves a symbol by its name
func (repo *SymbolRepository) GetByName(ctx context.Context, name string) (*symbol.Symbol, error) {
	if cached, ok := repo.names.Lookup(name); ok {
		return cached, nil
	}
	generation := repo.currentGeneration()
	obj, err := repo.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if obj != nil {
		repo.fill(generation, func() { repo.names.Set(name, obj) })
	}
	return obj, nil
}

// GetByGlyph retrieves a symbol by its glyph
func (repo *SymbolRepository) GetByGlyph(ctx context.Context, glyph string) (*symbol.Symbol, error) {
	if cached, ok := repo.glyphs.Lookup(glyph); ok {
		return cached, nil
	}
	generation := repo.currentGeneration()
	obj, err := repo.repo.GetByGlyph(ctx, glyph)
	if err != nil {
		return nil, err
	}
	if obj != nil {
		repo.fill(generation, func() { repo.glyphs.Set(glyph, obj) })
	}
	return obj, nil
}

// Search retrieves all symbols whose name contains query (ignoring case), ordered by name.
// Repeated searches for the same query return the same slice until the cached value expires.
func (repo *SymbolRepository) Search(ctx context.Context, query string) ([]*symbol.Symbol, error) {
	if cached, ok := repo.searches.Lookup(query); ok {
		return cached, nil
	}
	generation := repo.currentGeneration()
	symbols, err := repo.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	repo.fill(generation, func() { repo.searches.Set(query, symbols) })
	return symbols, nil
}

// Count returns the amount of stored symbols
func (repo *SymbolRepository) Count(ctx context.Context) (uint64, error) {
	return repo.repo.Count(ctx)
}

// Replace replaces all stored symbols and invalidates every cached value
func (repo *SymbolRepository) Replace(ctx context.Context, table symbol.Table) error {
	if err := repo.repo.Replace(ctx, table); err != nil {
		return err
	}
	repo.mtx.Lock()
	defer repo.mtx.Unlock()
	repo.generation++
	repo.names.Clear()
	repo.glyphs.Clear()
	repo.searches.Clear()
	return nil
}

func (repo *SymbolRepository) currentGeneration() uint64 {
	repo.mtx.RLock()
	defer repo.mtx.RUnlock()
	return repo.generation
}

// fill runs set unless a Replace happened since generation was read
func (repo *SymbolRepository) fill(generation uint64, set func()) {
	repo.mtx.RLock()
	defer repo.mtx.RUnlock()
	if repo.generation == generation {
		set()
	}
}

func (repo *SymbolRepository) scheduleCleanup(tick time.Duration) {
	repo.names.ScheduleCleanupTask(tick)
	repo.glyphs.ScheduleCleanupTask(tick)
	repo.searches.ScheduleCleanupTask(tick)
}

func (repo *SymbolRepository) stopCleanup() {
	repo.names.StopCleanupTask()
	repo.glyphs.StopCleanupTask()
	repo.searches.StopCleanupTask()
}
