package symbol

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoGlyphs  = errors.New("the input doesn't contain symbols")
	ErrNoNames   = errors.New("the input doesn't contain symbol names")
	ErrEmptyName = errors.New("the input contains an empty symbol name")
)

// CountMismatchError is returned by Assemble if the amount of names and glyphs differ
type CountMismatchError struct {
	Names  int
	Glyphs int
}

func (err *CountMismatchError) Error() string {
	return fmt.Sprintf("the symbols and their names don't match (%d names, %d glyphs)", err.Names, err.Glyphs)
}

// DuplicateNameError is returned by Assemble if a name occurs more than once
type DuplicateNameError struct {
	Name string
}

func (err *DuplicateNameError) Error() string {
	return fmt.Sprintf("the symbol name '%s' occurs more than once", err.Name)
}

// Assemble pairs a list of names with a string of glyphs (one code point per symbol) in order.
// This mirrors the SF Symbols app export: copying all symbols yields the glyphs, copying their names yields one name
// per line.
func Assemble(names []string, glyphs string) (Table, error) {
	characters := []rune(glyphs)
	if len(characters) <= 1 {
		return nil, ErrNoGlyphs
	}
	if len(names) <= 1 {
		return nil, ErrNoNames
	}
	if len(names) != len(characters) {
		return nil, &CountMismatchError{
			Names:  len(names),
			Glyphs: len(characters),
		}
	}

	table := make(Table, len(names))
	for i, name := range names {
		name = strings.TrimSuffix(name, "\r")
		if name == "" {
			return nil, ErrEmptyName
		}
		if _, ok := table[name]; ok {
			return nil, &DuplicateNameError{Name: name}
		}
		table[name] = string(characters[i])
	}
	return table, nil
}

// SplitNames splits a newline-separated list of symbol names.
// Trailing line breaks are ignored.
func SplitNames(raw string) []string {
	raw = strings.TrimRight(raw, "\r\n")
	if raw == "" {
		return []string{}
	}
	names := strings.Split(raw, "\n")
	for i, name := range names {
		names[i] = strings.TrimSuffix(name, "\r")
	}
	return names
}
