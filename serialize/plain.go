package serialize

import (
	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/clvmerr"
)

// SerializedLength returns the plain-form wire length of the single node
// encoded at the start of data, without constructing it, per spec.md §6's
// `serialized_length(bytes) -> u64`. Trailing bytes after that one node are
// permitted and not included in the count; a malformed or truncated
// length-prefix chain fails with clvmerr.KindBadEncoding.
func SerializedLength(data []byte) (uint64, error) {
	var total uint64
	pos := 0
	pending := 1
	for pending > 0 {
		if pos >= len(data) {
			return 0, clvmerr.New(clvmerr.KindBadEncoding, "truncated input")
		}
		if data[pos] == markerPair {
			pos++
			total++
			pending++ // one node resolved into two new pending nodes
			continue
		}
		_, consumed, err := decodeAtom(data[pos:], 0)
		if err != nil {
			return 0, err
		}
		pos += consumed
		total += uint64(consumed)
		pending--
	}
	return total, nil
}

// NodeLength returns the plain-form wire length of the in-memory node p,
// without materializing any bytes. It is the tree-walking counterpart of
// SerializedLength; the compressed serializer does not call it and
// computes subtree lengths with its own plainLengths pass.
func NodeLength(a *allocator.Allocator, p allocator.Ptr) uint64 {
	var total uint64
	stack := []allocator.Ptr{p}
	for len(stack) > 0 {
		n := len(stack) - 1
		node := stack[n]
		stack = stack[:n]

		if b, ok := a.Atom(node); ok {
			total += encodedLen(b)
			continue
		}
		left, right, _ := a.Pair(node)
		total++ // the 0xFF marker
		stack = append(stack, right, left)
	}
	return total
}

// Serialize encodes p in plain form per spec.md §4.3. maxAtomBytes of 0
// selects DefaultMaxAtomBytes.
func Serialize(a *allocator.Allocator, p allocator.Ptr, maxAtomBytes int) ([]byte, error) {
	var buf []byte
	stack := []allocator.Ptr{p}
	for len(stack) > 0 {
		n := len(stack) - 1
		node := stack[n]
		stack = stack[:n]

		if b, ok := a.Atom(node); ok {
			var err error
			buf, err = appendAtom(buf, b, maxAtomBytes)
			if err != nil {
				return nil, err
			}
			continue
		}
		left, right, _ := a.Pair(node)
		buf = append(buf, markerPair)
		stack = append(stack, right, left)
	}
	return buf, nil
}

// Deserialize decodes plain-form data into the allocator, using the
// two-stack {Parse, Cons} machine of spec.md §4.3. Exactly one value must
// remain when the op-stack empties, and every byte of data must be
// consumed.
func Deserialize(a *allocator.Allocator, data []byte, maxAtomBytes int) (allocator.Ptr, error) {
	p, pos, err := deserializeOne(a, data, maxAtomBytes)
	if err != nil {
		return 0, err
	}
	if pos != len(data) {
		return 0, clvmerr.New(clvmerr.KindBadEncoding, "trailing bytes after top-level value")
	}
	return p, nil
}

type parseOp int

const (
	opParse parseOp = iota
	opCons
)

// deserializeOne runs the two-stack machine starting at data[0], returning
// the parsed value and the number of bytes it consumed. Unlike
// Deserialize, it does not require data to be fully consumed, so callers
// parsing one value embedded in a larger stream (e.g. a program followed
// by its environment) can chain calls.
func deserializeOne(a *allocator.Allocator, data []byte, maxAtomBytes int) (allocator.Ptr, int, error) {
	pos := 0
	ops := []parseOp{opParse}
	var vals []allocator.Ptr

	for len(ops) > 0 {
		n := len(ops) - 1
		op := ops[n]
		ops = ops[:n]

		switch op {
		case opCons:
			if len(vals) < 2 {
				return 0, 0, clvmerr.New(clvmerr.KindBadEncoding, "cons with fewer than two pending values")
			}
			right := vals[len(vals)-1]
			left := vals[len(vals)-2]
			vals = vals[:len(vals)-2]
			pair, err := a.NewPair(left, right)
			if err != nil {
				return 0, 0, err
			}
			vals = append(vals, pair)

		case opParse:
			if pos >= len(data) {
				return 0, 0, clvmerr.New(clvmerr.KindBadEncoding, "truncated input")
			}
			if data[pos] == markerPair {
				pos++
				ops = append(ops, opCons, opParse, opParse)
				continue
			}
			payload, consumed, err := decodeAtom(data[pos:], maxAtomBytes)
			if err != nil {
				return 0, 0, err
			}
			pos += consumed
			atom, err := a.NewAtom(payload)
			if err != nil {
				return 0, 0, err
			}
			vals = append(vals, atom)
		}
	}

	if len(vals) != 1 {
		return 0, 0, clvmerr.New(clvmerr.KindBadEncoding, "parse did not yield exactly one value")
	}
	return vals[0], pos, nil
}
