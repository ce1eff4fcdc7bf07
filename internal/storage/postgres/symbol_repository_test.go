package postgres

import (
	"strconv"
	"testing"

	"github.com/skybi/symbolist/internal/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchQuery(t *testing.T) {
	sql, vals, err := searchQuery("").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT name, glyph FROM symbols ORDER BY name", sql)
	assert.Empty(t, vals)

	sql, vals, err = searchQuery("cloud_50%").ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "name ILIKE $1")
	assert.Equal(t, []interface{}{`%cloud\_50\%%`}, vals)
}

func TestInsertQueriesAreBatched(t *testing.T) {
	table := symbol.Table{}
	for i := 0; i < insertBatchSize*2+5; i++ {
		table["symbol."+strconv.Itoa(i)] = strconv.Itoa(i)
	}

	batches := insertQueries(table.Symbols())
	require.Len(t, batches, 3)

	total := 0
	for _, batch := range batches {
		sql, vals, err := batch.ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "INSERT INTO symbols")
		total += len(vals)
	}
	assert.Equal(t, (insertBatchSize*2+5)*2, total)

	assert.Empty(t, insertQueries(nil))
}
