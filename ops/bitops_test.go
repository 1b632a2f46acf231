package ops

import (
	"testing"

	"github.com/chia-network/clvm-go/allocator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAshLeftAndRightShift(t *testing.T) {
	a := allocator.NewDefault()
	res, err := Ash(newCtx(a, mustList(t, a, intAtom(t, a, 1), intAtom(t, a, 3))))
	require.NoError(t, err)
	b, _ := a.Atom(res)
	assert.Equal(t, []byte{8}, b)

	res, err = Ash(newCtx(a, mustList(t, a, intAtom(t, a, -8), intAtom(t, a, -1))))
	require.NoError(t, err)
	b, _ = a.Atom(res)
	assert.Equal(t, []byte{0xfc}, b) // -4, sign-preserving arithmetic shift
}

func TestLognotInvolution(t *testing.T) {
	a := allocator.NewDefault()
	x := intAtom(t, a, 5)
	once, err := Lognot(newCtx(a, mustList(t, a, x)))
	require.NoError(t, err)
	twice, err := Lognot(newCtx(a, mustList(t, a, once)))
	require.NoError(t, err)
	b, _ := a.Atom(twice)
	assert.Equal(t, []byte{5}, b)
}

func TestLogandLogiorLogxor(t *testing.T) {
	a := allocator.NewDefault()
	x := intAtom(t, a, 0b1100)
	y := intAtom(t, a, 0b1010)

	and, err := Logand(newCtx(a, mustList(t, a, x, y)))
	require.NoError(t, err)
	b, _ := a.Atom(and)
	assert.Equal(t, []byte{0b1000}, b)

	or, err := Logior(newCtx(a, mustList(t, a, x, y)))
	require.NoError(t, err)
	b, _ = a.Atom(or)
	assert.Equal(t, []byte{0b1110}, b)

	xor, err := Logxor(newCtx(a, mustList(t, a, x, y)))
	require.NoError(t, err)
	b, _ = a.Atom(xor)
	assert.Equal(t, []byte{0b0110}, b)
}
