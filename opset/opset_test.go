package opset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(s Set) []byte {
	var out []byte
	s.ForEach(func(op byte) { out = append(out, op) })
	return out
}

func TestDense(t *testing.T) {
	s := Dense(1, 5, 255)
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(5))
	assert.True(t, s.Contains(255))
	assert.False(t, s.Contains(2))
	assert.Equal(t, []byte{1, 5, 255}, collect(s))
}

func TestSparseOptimizesToExact(t *testing.T) {
	s := Sparse(9).Optimize()
	_, ok := s.(*setExact)
	assert.True(t, ok)
	assert.True(t, s.Contains(9))
}

func TestRangesCoalesce(t *testing.T) {
	s := Ranges(Range{0, 7}, Range{8, 15}, Range{0x18, 0x3d})
	for i := 0; i <= 15; i++ {
		assert.Truef(t, s.Contains(byte(i)), "%d", i)
	}
	assert.False(t, s.Contains(0x16))
	assert.True(t, s.Contains(0x20))
}

func TestAllNone(t *testing.T) {
	assert.True(t, All().Contains(0))
	assert.True(t, All().Contains(255))
	assert.False(t, None().Contains(0))
}

func TestAndOrNot(t *testing.T) {
	a := Dense(1, 2, 3)
	b := Dense(2, 3, 4)
	assert.Equal(t, []byte{2, 3}, collect(And(a, b)))
	assert.Equal(t, []byte{1, 2, 3, 4}, collect(Or(a, b)))
	assert.False(t, Not(All()).Contains(0))
	assert.True(t, Not(None()).Contains(0))
}

func TestNotOptimizeDense(t *testing.T) {
	s := Not(Dense(0)).Optimize()
	assert.False(t, s.Contains(0))
	assert.True(t, s.Contains(1))
}
