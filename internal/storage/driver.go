package storage

import (
	"context"

	"github.com/skybi/symbolist/internal/symbol"
)

// Driver represents a storage driver
type Driver interface {
	// Initialize initializes the storage driver (i.e. opens a database connection)
	Initialize(ctx context.Context) error

	// Symbols provides a symbol repository implementation
	Symbols() symbol.Repository

	// Close closes the storage driver (i.e. closes a database connection)
	Close()
}

// Seed fills the symbol repository of driver with table if it is empty.
// It reports whether the table was written.
func Seed(ctx context.Context, driver Driver, table symbol.Table) (bool, error) {
	n, err := driver.Symbols().Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := driver.Symbols().Replace(ctx, table); err != nil {
		return false, err
	}
	return true, nil
}
