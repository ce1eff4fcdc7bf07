package symbol

import "context"

// Repository defines the symbol repository API
type Repository interface {
	// GetByName retrieves a symbol by its name; nil if it does not exist
	GetByName(ctx context.Context, name string) (*Symbol, error)

	// GetByGlyph retrieves a symbol by its glyph; nil if it does not exist.
	// If several symbols share the glyph, the one with the alphabetically first name is returned.
	GetByGlyph(ctx context.Context, glyph string) (*Symbol, error)

	// Search retrieves all symbols whose name contains query (ignoring case), ordered by name.
	// An empty query matches every symbol.
	Search(ctx context.Context, query string) ([]*Symbol, error)

	// Count returns the amount of stored symbols
	Count(ctx context.Context) (uint64, error)

	// Replace atomically replaces all stored symbols with the given table
	Replace(ctx context.Context, table Table) error
}
