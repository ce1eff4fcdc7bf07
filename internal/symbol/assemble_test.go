package symbol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	table, err := Assemble(SplitNames("0.circle\r\n0.circle.fill\nscribble.variable"), "􀀸􀀹􀤑")
	require.NoError(t, err)
	assert.Equal(t, Table{
		"0.circle":          "􀀸",
		"0.circle.fill":     "􀀹",
		"scribble.variable": "􀤑",
	}, table)
}

func TestAssembleValidation(t *testing.T) {
	_, err := Assemble([]string{"a", "b"}, "x")
	assert.ErrorIs(t, err, ErrNoGlyphs)

	_, err = Assemble([]string{"a"}, "xy")
	assert.ErrorIs(t, err, ErrNoNames)

	_, err = Assemble([]string{"a", "b", "c"}, "xy")
	var mismatch *CountMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 3, mismatch.Names)
	assert.Equal(t, 2, mismatch.Glyphs)
}

func TestAssembleRejectsEmptyNames(t *testing.T) {
	_, err := Assemble([]string{"a", "", "c"}, "xyz")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestAssembleRejectsDuplicateNames(t *testing.T) {
	_, err := Assemble([]string{"a", "b", "a"}, "xyz")
	var duplicate *DuplicateNameError
	require.True(t, errors.As(err, &duplicate))
	assert.Equal(t, "a", duplicate.Name)

	_, err = Assemble(SplitNames("a\r\nb\na\r"), "xyz")
	assert.True(t, errors.As(err, &duplicate))
}

func TestSplitNames(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitNames("a\r\nb\r\n"))
	assert.Equal(t, []string{"a", "", "b"}, SplitNames("a\n\nb\n\n"))
	assert.Equal(t, []string{}, SplitNames("\n"))
}
