package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/skybi/symbolist/internal/symbol"
)

// insertBatchSize keeps bulk inserts well below PostgreSQL's limit of 65535 bind parameters
const insertBatchSize = 1000

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SymbolRepository implements the symbol.Repository interface using PostgreSQL
type SymbolRepository struct {
	db *pgxpool.Pool
}

var _ symbol.Repository = (*SymbolRepository)(nil)

// GetByName retrieves a symbol by its name
func (repo *SymbolRepository) GetByName(ctx context.Context, name string) (*symbol.Symbol, error) {
	row := repo.db.QueryRow(ctx, "SELECT name, glyph FROM symbols WHERE name = $1", name)
	return repo.scanOptional(row)
}

// GetByGlyph retrieves a symbol by its glyph, preferring the alphabetically first name
func (repo *SymbolRepository) GetByGlyph(ctx context.Context, glyph string) (*symbol.Symbol, error) {
	row := repo.db.QueryRow(ctx, "SELECT name, glyph FROM symbols WHERE glyph = $1 ORDER BY name LIMIT 1", glyph)
	return repo.scanOptional(row)
}

// Search retrieves all symbols whose name contains query (ignoring case), ordered by name
func (repo *SymbolRepository) Search(ctx context.Context, query string) ([]*symbol.Symbol, error) {
	sql, vals, err := searchQuery(query).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := repo.db.Query(ctx, sql, vals...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	symbols := []*symbol.Symbol{}
	for rows.Next() {
		obj, err := repo.rowToSymbol(rows)
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, obj)
	}
	return symbols, rows.Err()
}

// Count returns the amount of stored symbols
func (repo *SymbolRepository) Count(ctx context.Context) (uint64, error) {
	var n int64
	if err := repo.db.QueryRow(ctx, "SELECT COUNT(*) FROM symbols").Scan(&n); err != nil {
		return 0, err
	}
	return uint64(n), nil
}

// Replace atomically replaces all stored symbols with the given table
func (repo *SymbolRepository) Replace(ctx context.Context, table symbol.Table) error {
	txn, err := repo.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer txn.Rollback(ctx)

	if _, err := txn.Exec(ctx, "DELETE FROM symbols"); err != nil {
		return err
	}
	for _, batch := range insertQueries(table.Symbols()) {
		sql, vals, err := batch.ToSql()
		if err != nil {
			return err
		}
		if _, err := txn.Exec(ctx, sql, vals...); err != nil {
			return err
		}
	}

	return txn.Commit(ctx)
}

func searchQuery(query string) squirrel.SelectBuilder {
	builder := squirrel.Select("name", "glyph").From("symbols").OrderBy("name")
	if query != "" {
		builder = builder.Where(squirrel.ILike{"name": "%" + likeEscaper.Replace(query) + "%"})
	}
	return builder.PlaceholderFormat(squirrel.Dollar)
}

func insertQueries(symbols []*symbol.Symbol) []squirrel.InsertBuilder {
	var batches []squirrel.InsertBuilder
	for start := 0; start < len(symbols); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(symbols) {
			end = len(symbols)
		}
		builder := squirrel.Insert("symbols").Columns("name", "glyph").PlaceholderFormat(squirrel.Dollar)
		for _, obj := range symbols[start:end] {
			builder = builder.Values(obj.Name, obj.Glyph)
		}
		batches = append(batches, builder)
	}
	return batches
}

func (repo *SymbolRepository) scanOptional(row pgx.Row) (*symbol.Symbol, error) {
	obj, err := repo.rowToSymbol(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return obj, nil
}

func (repo *SymbolRepository) rowToSymbol(row pgx.Row) (*symbol.Symbol, error) {
	obj := new(symbol.Symbol)
	if err := row.Scan(&obj.Name, &obj.Glyph); err != nil {
		return nil, err
	}
	return obj, nil
}
