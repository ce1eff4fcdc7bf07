package symbol

import (
	_ "embed"
	"encoding/json"
	"sort"
	"strings"
	"sync"
)

//go:embed data/symbols.json
var embeddedData []byte

// Symbol represents a single named SF Symbols glyph
type Symbol struct {
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
}

// Table maps symbol names to their glyphs
type Table map[string]string

var (
	defaultOnce  sync.Once
	defaultTable Table
)

// Load parses a JSON object mapping symbol names to glyphs
func Load(raw []byte) (Table, error) {
	table := make(Table)
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, err
	}
	return table, nil
}

// Default returns the table embedded into the binary.
// It is parsed only once; callers must not modify it.
func Default() Table {
	defaultOnce.Do(func() {
		table, err := Load(embeddedData)
		if err != nil {
			panic("malformed embedded symbol data: " + err.Error())
		}
		defaultTable = table
	})
	return defaultTable
}

// Get returns the glyph of the symbol with the given name
func (table Table) Get(name string) (string, bool) {
	glyph, ok := table[name]
	return glyph, ok
}

// NameOf returns the name of the symbol represented by the given glyph.
// If several names share a glyph, the alphabetically first one is returned.
func (table Table) NameOf(glyph string) (string, bool) {
	found := ""
	for name, value := range table {
		if value == glyph && (found == "" || name < found) {
			found = name
		}
	}
	return found, found != ""
}

// Symbols returns all symbols of the table ordered by their name
func (table Table) Symbols() []*Symbol {
	symbols := make([]*Symbol, 0, len(table))
	for name, glyph := range table {
		symbols = append(symbols, &Symbol{
			Name:  name,
			Glyph: glyph,
		})
	}
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i].Name < symbols[j].Name
	})
	return symbols
}

// Filter returns the symbols whose names contain query, ignoring case.
// An empty query returns the given slice itself.
func Filter(symbols []*Symbol, query string) []*Symbol {
	if query == "" {
		return symbols
	}
	query = strings.ToLower(query)
	filtered := []*Symbol{}
	for _, symbol := range symbols {
		if strings.Contains(strings.ToLower(symbol.Name), query) {
			filtered = append(filtered, symbol)
		}
	}
	return filtered
}
