package ops

import (
	"testing"

	"github.com/chia-network/clvm-go/allocator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNot(t *testing.T) {
	a := allocator.NewDefault()
	res, err := Not(newCtx(a, mustList(t, a, a.Nil())))
	require.NoError(t, err)
	b, _ := a.Atom(res)
	assert.Equal(t, []byte{1}, b)

	res, err = Not(newCtx(a, mustList(t, a, intAtom(t, a, 1))))
	require.NoError(t, err)
	b, _ = a.Atom(res)
	assert.Empty(t, b)
}

func TestAllVacuouslyTrue(t *testing.T) {
	a := allocator.NewDefault()
	res, err := All(newCtx(a, a.Nil()))
	require.NoError(t, err)
	b, _ := a.Atom(res)
	assert.Equal(t, []byte{1}, b)
}

func TestAllFalseOnAnyFalsy(t *testing.T) {
	a := allocator.NewDefault()
	res, err := All(newCtx(a, mustList(t, a, intAtom(t, a, 1), a.Nil())))
	require.NoError(t, err)
	b, _ := a.Atom(res)
	assert.Empty(t, b)
}

func TestAnyVacuouslyFalse(t *testing.T) {
	a := allocator.NewDefault()
	res, err := Any(newCtx(a, a.Nil()))
	require.NoError(t, err)
	b, _ := a.Atom(res)
	assert.Empty(t, b)
}

func TestAnyTrueOnOneTruthy(t *testing.T) {
	a := allocator.NewDefault()
	res, err := Any(newCtx(a, mustList(t, a, a.Nil(), intAtom(t, a, 1))))
	require.NoError(t, err)
	b, _ := a.Atom(res)
	assert.Equal(t, []byte{1}, b)
}
