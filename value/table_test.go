package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableGetSetRoundTrip(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Set(Str("name"), Str("lunacore")))
	assert.Equal(t, Str("lunacore"), table.Get(Str("name")))
	assert.Equal(t, Nil{}, table.Get(Str("missing")))
}

func TestTableFloatIntegerKeyNormalization(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Set(Float(1.0), Str("one")))
	assert.Equal(t, Str("one"), table.Get(Int(1)), "a float key equal to an integer collapses to the integer key")
}

func TestTableNaNKeyRejected(t *testing.T) {
	_, err := NormalizeKey(Float(math.NaN()))
	assert.Error(t, err)
}

func TestTableLenFindsBorder(t *testing.T) {
	table := NewTable()
	assert.Equal(t, int64(0), table.Len())

	require.NoError(t, table.Set(Int(1), Str("a")))
	require.NoError(t, table.Set(Int(2), Str("b")))
	require.NoError(t, table.Set(Int(3), Str("c")))
	assert.Equal(t, int64(3), table.Len())

	require.NoError(t, table.Set(Int(5), Str("e")))
	assert.Equal(t, int64(3), table.Len(), "a gap at 4 still borders at 3")
}

func TestTableSetIdentIsFieldAccess(t *testing.T) {
	table := NewTable()
	table.SetIdent("x", Int(42))
	assert.Equal(t, Int(42), table.Get(Str("x")))
}

func TestTablesCompareByIdentity(t *testing.T) {
	a := NewTable()
	b := NewTable()
	assert.True(t, Equal(a, a))
	assert.False(t, Equal(a, b), "two distinct empty tables are not equal")
}
