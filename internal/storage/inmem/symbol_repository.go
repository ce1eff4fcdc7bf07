package inmem

import (
	"context"

	"github.com/hashicorp/go-memdb"
	"github.com/skybi/symbolist/internal/symbol"
)

// SymbolRepository implements the symbol.Repository interface using go-memdb
type SymbolRepository struct {
	db *memdb.MemDB
}

var _ symbol.Repository = (*SymbolRepository)(nil)

// GetByName retrieves a symbol by its name
func (repo *SymbolRepository) GetByName(_ context.Context, name string) (*symbol.Symbol, error) {
	txn := repo.db.Txn(false)
	obj, err := txn.First(tableSymbols, "id", name)
	if err != nil {
		return nil, err
	}
	return copySymbol(obj), nil
}

// GetByGlyph retrieves a symbol by its glyph.
// Entries of the glyph index are ordered by name, so the first match has the alphabetically first name.
func (repo *SymbolRepository) GetByGlyph(_ context.Context, glyph string) (*symbol.Symbol, error) {
	txn := repo.db.Txn(false)
	obj, err := txn.First(tableSymbols, "glyph", glyph)
	if err != nil {
		return nil, err
	}
	return copySymbol(obj), nil
}

// Search retrieves all symbols whose name contains query (ignoring case), ordered by name
func (repo *SymbolRepository) Search(_ context.Context, query string) ([]*symbol.Symbol, error) {
	txn := repo.db.Txn(false)
	it, err := txn.Get(tableSymbols, "id")
	if err != nil {
		return nil, err
	}

	symbols := []*symbol.Symbol{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		symbols = append(symbols, copySymbol(obj))
	}
	return symbol.Filter(symbols, query), nil
}

// Count returns the amount of stored symbols
func (repo *SymbolRepository) Count(_ context.Context) (uint64, error) {
	txn := repo.db.Txn(false)
	it, err := txn.Get(tableSymbols, "id")
	if err != nil {
		return 0, err
	}
	var n uint64
	for obj := it.Next(); obj != nil; obj = it.Next() {
		n++
	}
	return n, nil
}

// Replace atomically replaces all stored symbols with the given table
func (repo *SymbolRepository) Replace(_ context.Context, table symbol.Table) error {
	txn := repo.db.Txn(true)
	defer txn.Abort()
	if _, err := txn.DeleteAll(tableSymbols, "id"); err != nil {
		return err
	}
	for name, glyph := range table {
		if err := txn.Insert(tableSymbols, &symbol.Symbol{Name: name, Glyph: glyph}); err != nil {
			return err
		}
	}
	txn.Commit()
	return nil
}

// copySymbol copies a stored object so callers can never modify the database contents
func copySymbol(obj interface{}) *symbol.Symbol {
	if obj == nil {
		return nil
	}
	sym := *obj.(*symbol.Symbol)
	return &sym
}
