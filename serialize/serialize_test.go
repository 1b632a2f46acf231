package serialize

import (
	"encoding/hex"
	"testing"

	"github.com/chia-network/clvm-go/allocator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestDeserializeSerializeRoundTripPlainAtom(t *testing.T) {
	a := allocator.NewDefault()
	data := mustHex(t, "7f")
	p, err := Deserialize(a, data, 0)
	require.NoError(t, err)
	b, ok := a.Atom(p)
	require.True(t, ok)
	assert.Equal(t, []byte{0x7f}, b)

	out, err := Serialize(a, p, 0)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDeserializeSerializePair(t *testing.T) {
	a := allocator.NewDefault()
	data := mustHex(t, "ff017f")
	p, err := Deserialize(a, data, 0)
	require.NoError(t, err)
	assert.True(t, p.IsPair())

	out, err := Serialize(a, p, 0)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestSerializedLengthAgreesWithSerialize(t *testing.T) {
	a := allocator.NewDefault()
	data := mustHex(t, "ff10ff01ffff010380")
	p, err := Deserialize(a, data, 0)
	require.NoError(t, err)

	out, err := Serialize(a, p, 0)
	require.NoError(t, err)
	assert.EqualValues(t, len(out), NodeLength(a, p))

	n, err := SerializedLength(data)
	require.NoError(t, err)
	assert.EqualValues(t, len(data), n)
}

func TestSerializedLengthOfBytesRejectsMalformedPrefix(t *testing.T) {
	// 0xab opens a 1-byte-prefix atom of length 0x2b (43), but only 4
	// bytes of payload follow.
	_, err := SerializedLength(mustHex(t, "abcdef0123"))
	assert.Error(t, err)
}

func TestDeserializeRejectsTruncatedLengthPrefix(t *testing.T) {
	a := allocator.NewDefault()
	_, err := Deserialize(a, mustHex(t, "c0"), 0)
	assert.Error(t, err)
}

func TestDeserializeRejectsBackrefMarkerInPlainMode(t *testing.T) {
	a := allocator.NewDefault()
	_, err := Deserialize(a, mustHex(t, "ffff0102fe02"), 0)
	assert.Error(t, err)
}

// Round trip: serialize(deserialize(ff ff 01 02 fe 02)) equals the
// decompressed plain form ff ff 01 02 ff 01 02.
func TestCompressedRoundTripMatchesPlainForm(t *testing.T) {
	a := allocator.NewDefault()
	compressed := mustHex(t, "ffff0102fe02")
	p, err := DeserializeCompressed(a, compressed, 0)
	require.NoError(t, err)

	out, err := Serialize(a, p, 0)
	require.NoError(t, err)
	assert.Equal(t, mustHex(t, "ffff0102ff0102"), out)
}

func TestCompressedRoundTripSharedSubtree(t *testing.T) {
	a := allocator.NewDefault()
	leaf, _ := a.NewAtom([]byte{0x2a})
	pair, _ := a.NewPair(leaf, a.Nil())
	root, _ := a.NewPair(pair, pair)

	out, err := SerializeCompressed(a, root, 0)
	require.NoError(t, err)

	b2 := allocator.NewDefault()
	back, err := DeserializeCompressed(b2, out, 0)
	require.NoError(t, err)

	plain, err := Serialize(a, root, 0)
	require.NoError(t, err)
	plainBack, err := Serialize(b2, back, 0)
	require.NoError(t, err)
	assert.Equal(t, plain, plainBack)
}

func TestDeserializeLargeAtomLengthPrefix(t *testing.T) {
	a := allocator.NewDefault()
	payload := make([]byte, 0x1000)
	for i := range payload {
		payload[i] = byte(i)
	}
	encoded, err := appendAtom(nil, payload, 0)
	require.NoError(t, err)

	p, err := Deserialize(a, encoded, 0)
	require.NoError(t, err)
	b, ok := a.Atom(p)
	require.True(t, ok)
	assert.Equal(t, payload, b)
}
