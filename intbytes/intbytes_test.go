package intbytes

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimalBytesRoundTrip(t *testing.T) {
	cases := []struct {
		n    int64
		want []byte
	}{
		{0, nil},
		{1, []byte{0x01}},
		{-1, []byte{0xff}},
		{127, []byte{0x7f}},
		{128, []byte{0x00, 0x80}},
		{-128, []byte{0x80}},
		{-129, []byte{0xff, 0x7f}},
		{255, []byte{0x00, 0xff}},
		{256, []byte{0x01, 0x00}},
		{-256, []byte{0xff, 0x00}},
	}
	for _, c := range cases {
		got := MinimalBytes(big.NewInt(c.n))
		assert.Equalf(t, c.want, got, "MinimalBytes(%d)", c.n)

		back := BytesToInt(got)
		assert.Equalf(t, big.NewInt(c.n).String(), back.String(), "BytesToInt(MinimalBytes(%d))", c.n)
	}
}

func TestBytesToIntAcceptsNonMinimalInput(t *testing.T) {
	// Redundant leading zero byte still decodes to the same positive value.
	assert.Equal(t, "127", BytesToInt([]byte{0x00, 0x7f}).String())
	// Redundant leading 0xff byte still decodes to the same negative value.
	assert.Equal(t, "-1", BytesToInt([]byte{0xff, 0xff}).String())
}

func TestBytesToUint(t *testing.T) {
	v, err := BytesToUint([]byte{0x01, 0x00}, 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(256), v)

	_, err = BytesToUint([]byte{0xff}, 4)
	assert.Error(t, err)

	_, err = BytesToUint([]byte{0x01, 0x00, 0x00, 0x00, 0x00}, 4)
	assert.Error(t, err)
}

func TestEmptyAtomIsZero(t *testing.T) {
	assert.Equal(t, "0", BytesToInt(nil).String())
	assert.Nil(t, MinimalBytes(big.NewInt(0)))
}
