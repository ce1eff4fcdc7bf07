package inmem

import (
	"context"

	"github.com/hashicorp/go-memdb"
	"github.com/skybi/symbolist/internal/storage"
	"github.com/skybi/symbolist/internal/symbol"
)

const tableSymbols = "symbols"

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tableSymbols: {
			Name: tableSymbols,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:         "id",
					Unique:       true,
					AllowMissing: false,
					Indexer:      &memdb.StringFieldIndex{Field: "Name"},
				},
				"glyph": {
					Name:         "glyph",
					Unique:       false,
					AllowMissing: false,
					Indexer:      &memdb.StringFieldIndex{Field: "Glyph"},
				},
			},
		},
	},
}

// Driver represents the in-memory storage driver built using hashicorp/go-memdb
type Driver struct {
	db      *memdb.MemDB
	symbols *SymbolRepository
}

var _ storage.Driver = (*Driver)(nil)

// New creates a new empty in-memory storage driver.
// Use Initialize to create the underlying database.
func New() *Driver {
	return &Driver{}
}

// Initialize creates the in-memory database and the repository implementations
func (driver *Driver) Initialize(_ context.Context) error {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return err
	}
	driver.db = db
	driver.symbols = &SymbolRepository{db: db}
	return nil
}

// Symbols provides the in-memory symbol repository implementation
func (driver *Driver) Symbols() symbol.Repository {
	return driver.symbols
}

// Close discards the database
func (driver *Driver) Close() {
	driver.symbols = nil
	driver.db = nil
}
