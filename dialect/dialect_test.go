package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupFindsAndMisses(t *testing.T) {
	tbl := New([]Entry{
		{Code: 3, Name: "c"},
		{Code: 1, Name: "a"},
		{Code: 2, Name: "b"},
	})

	e, ok := tbl.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, "b", e.Name)

	_, ok = tbl.Lookup(99)
	assert.False(t, ok)
	assert.Equal(t, 3, tbl.Len())
}

func TestDefinedReflectsByteSizedOpcodes(t *testing.T) {
	tbl := New([]Entry{{Code: 5, Name: "x"}, {Code: 0x300, Name: "wide"}})
	assert.True(t, tbl.Defined().Contains(5))
	assert.False(t, tbl.Defined().Contains(6))
}
