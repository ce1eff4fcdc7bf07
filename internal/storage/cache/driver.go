package cache

import (
	"context"
	"time"

	"github.com/skybi/symbolist/internal/hashmap"
	"github.com/skybi/symbolist/internal/storage"
	"github.com/skybi/symbolist/internal/symbol"
)

// Driver represents a storage driver implementation that wraps another one in order to implement in-memory caching
type Driver struct {
	underlying storage.Driver
	lifetime   time.Duration
	symbols    *SymbolRepository
}

var _ storage.Driver = (*Driver)(nil)

// New returns a new caching storage driver keeping values for the given lifetime
func New(underlying storage.Driver, lifetime time.Duration) *Driver {
	return &Driver{
		underlying: underlying,
		lifetime:   lifetime,
	}
}

// Initialize initializes the caching repositories.
// The underlying driver has to be initialized already.
func (driver *Driver) Initialize(_ context.Context) error {
	driver.symbols = &SymbolRepository{
		repo:     driver.underlying.Symbols(),
		names:    hashmap.NewExpiring[string, *symbol.Symbol](driver.lifetime),
		glyphs:   hashmap.NewExpiring[string, *symbol.Symbol](driver.lifetime),
		searches: hashmap.NewExpiring[string, []*symbol.Symbol](driver.lifetime),
	}
	driver.symbols.scheduleCleanup(cleanupInterval(driver.lifetime))
	return nil
}

// Symbols provides the caching symbol repository implementation
func (driver *Driver) Symbols() symbol.Repository {
	return driver.symbols
}

// Close closes the caching repositories and disposes their instances.
// The underlying driver is not closed.
func (driver *Driver) Close() {
	driver.symbols.stopCleanup()
	driver.symbols = nil
}

func cleanupInterval(lifetime time.Duration) time.Duration {
	interval := lifetime / 10
	if interval < time.Second {
		return time.Second
	}
	return interval
}
