// Package intbytes bridges CLVM atoms (byte strings) and signed
// arbitrary-precision integers, per spec.md §4.2.
//
// The canonical integer form is the atom whose bytes are the minimal
// two's-complement big-endian representation: 0 is the empty atom, -1 is
// 0xff, and a positive integer whose high bit would otherwise read as a
// sign bit is prefixed with 0x00. Decoding is lenient (any byte length is
// accepted and produces the same integer value as its minimized form);
// encoding is always strict and canonical.
//
// This mirrors the shape of peggyvm's ImmMeta.Decode/Encode (opcode.go):
// a leading-byte-driven variable-length integer encoding with sign
// extension on decode and minimal-length trimming on encode, generalized
// here from fixed 1/2/4/8-byte immediate slots to arbitrary-length atoms
// backed by math/big instead of a fixed uint64.
package intbytes

import (
	"math/big"

	"github.com/chia-network/clvm-go/clvmerr"
)

// BytesToInt decodes b as a two's-complement big-endian integer. Any byte
// length is accepted, including non-minimal (redundant sign byte) forms;
// the result is the same integer value the minimized form would decode to.
// An empty slice decodes to 0.
func BytesToInt(b []byte) *big.Int {
	n := new(big.Int)
	if len(b) == 0 {
		return n
	}
	if b[0]&0x80 == 0 {
		n.SetBytes(b)
		return n
	}
	// Negative: two's complement. Invert every byte, interpret as
	// unsigned magnitude, add one, negate.
	inv := make([]byte, len(b))
	for i, c := range b {
		inv[i] = ^c
	}
	n.SetBytes(inv)
	n.Add(n, big.NewInt(1))
	n.Neg(n)
	return n
}

// MinimalBytes encodes n as the minimal two's-complement big-endian atom.
// 0 encodes to the empty slice.
func MinimalBytes(n *big.Int) []byte {
	if n.Sign() == 0 {
		return nil
	}
	if n.Sign() > 0 {
		raw := n.Bytes()
		if len(raw) == 0 || raw[0]&0x80 != 0 {
			out := make([]byte, len(raw)+1)
			copy(out[1:], raw)
			return out
		}
		return raw
	}

	// Negative: two's complement in the smallest byte width that can
	// represent it, i.e. the smallest nBytes with mag <= 2^(8*nBytes-1).
	mag := new(big.Int).Neg(n) // positive magnitude of n
	nBytes := 1
	for mag.Cmp(new(big.Int).Lsh(big.NewInt(1), uint(8*nBytes-1))) > 0 {
		nBytes++
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*nBytes))
	tc := new(big.Int).Sub(mod, mag)
	raw := tc.Bytes()
	out := make([]byte, nBytes)
	copy(out[nBytes-len(raw):], raw)
	return out
}

// BytesToUint decodes b as a non-negative integer and requires that its
// minimal two's-complement form fits in maxBytes bytes (that form includes
// the leading 0x00 sign byte a value with its top bit set needs, so
// maxBytes=4 admits at most 0x7FFFFFFF).
// Returns clvmerr.KindArgOutOfRange if the value is negative or oversized.
func BytesToUint(b []byte, maxBytes int) (uint64, error) {
	n := BytesToInt(b)
	if n.Sign() < 0 {
		return 0, clvmerr.New(clvmerr.KindArgOutOfRange, "expected non-negative integer")
	}
	minimal := MinimalBytes(n)
	if len(minimal) > maxBytes {
		return 0, clvmerr.New(clvmerr.KindArgOutOfRange, "integer exceeds maximum byte width")
	}
	if !n.IsUint64() {
		return 0, clvmerr.New(clvmerr.KindArgOutOfRange, "integer exceeds 64 bits")
	}
	return n.Uint64(), nil
}
