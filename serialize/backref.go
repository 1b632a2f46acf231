package serialize

import (
	"math/big"

	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/clvmerr"
	"github.com/chia-network/clvm-go/treehash"
)

// DeserializeCompressed decodes data, which may contain 0xFE back-reference
// tokens, per spec.md §4.3.
func DeserializeCompressed(a *allocator.Allocator, data []byte, maxAtomBytes int) (allocator.Ptr, error) {
	p, pos, err := deserializeOneCompressed(a, data, maxAtomBytes)
	if err != nil {
		return 0, err
	}
	if pos != len(data) {
		return 0, clvmerr.New(clvmerr.KindBadEncoding, "trailing bytes after top-level value")
	}
	return p, nil
}

func deserializeOneCompressed(a *allocator.Allocator, data []byte, maxAtomBytes int) (allocator.Ptr, int, error) {
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
			switch data[pos] {
			case markerPair:
				pos++
				ops = append(ops, opCons, opParse, opParse)

			case markerBackref:
				pos++
				pathBytes, consumed, err := decodeAtom(data[pos:], maxAtomBytes)
				if err != nil {
					return 0, 0, err
				}
				pos += consumed
				resolved, err := resolveBackrefPath(a, vals, new(big.Int).SetBytes(pathBytes))
				if err != nil {
					return 0, 0, err
				}
				vals = append(vals, resolved)

			default:
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
	}

	if len(vals) != 1 {
		return 0, 0, clvmerr.New(clvmerr.KindBadEncoding, "parse did not yield exactly one value")
	}
	return vals[0], pos, nil
}

// resolveBackrefPath resolves a backref path against vals, the current
// parse value-stack treated as the right-nested list (v0 . (v1 . (v2 .
// NIL))) with v0 = vals[len(vals)-1] at the top, per spec.md §4.3.
//
// Bits are consumed least-significant-first; the highest set bit is the
// terminator and is not itself a direction bit. While still walking the
// virtual list, a 1 bit moves to the next list element (right/cdr) and a 0
// bit selects the current element (left/car) and switches into "real"
// mode, where subsequent bits walk actual allocator pairs (0=First,
// 1=Rest) exactly as environment-path lookup does. A path that ends while
// still in the virtual list names that list's tail from the current
// element on, which is built from fresh pairs (NIL when past the bottom).
func resolveBackrefPath(a *allocator.Allocator, vals []allocator.Ptr, n *big.Int) (allocator.Ptr, error) {
	bitLen := n.BitLen()
	if bitLen < 2 {
		// bitLen 0 has no terminator at all; bitLen 1 (value 1) has a
		// terminator but zero direction bits, so it names the abstract
		// list root rather than any single already-parsed subtree.
		// Neither is a value this implementation's compressor ever
		// emits, so both are rejected as malformed.
		return 0, clvmerr.New(clvmerr.KindBadEncoding, "backref path selects no stack slot")
	}

	termBit := bitLen - 1
	virtual := true
	idx := 0
	var cur allocator.Ptr

	for i := 0; i < termBit; i++ {
		bit := n.Bit(i)
		if virtual {
			if bit == 1 {
				idx++
				continue
			}
			if idx >= len(vals) {
				return 0, clvmerr.New(clvmerr.KindBadEncoding, "backref path runs off the stack")
			}
			cur = vals[len(vals)-1-idx]
			virtual = false
			continue
		}
		left, right, ok := a.Pair(cur)
		if !ok {
			return 0, clvmerr.New(clvmerr.KindBadEncoding, "backref path runs into an atom")
		}
		if bit == 0 {
			cur = left
		} else {
			cur = right
		}
	}

	if virtual {
		if idx > len(vals) {
			return 0, clvmerr.New(clvmerr.KindBadEncoding, "backref path runs off the stack")
		}
		// The path ended on the virtual list's tail (v_idx . ...), which
		// has no allocator node of its own yet, so build it.
		tail := a.Nil()
		for j := 0; j < len(vals)-idx; j++ {
			p, err := a.NewPair(vals[j], tail)
			if err != nil {
				return 0, err
			}
			tail = p
		}
		return tail, nil
	}
	return cur, nil
}

// backrefPathValue returns the path integer that selects the stack slot
// idx positions below the top (idx == 0 is the top, v0), terminating
// there without any further real-mode descent: idx ones (right/cdr
// moves), then a zero (left/car, selecting that element), then the
// terminator.
func backrefPathValue(idx int) *big.Int {
	// value = (2^idx - 1) + 2^(idx+1) = 3*2^idx - 1
	v := new(big.Int).Lsh(big.NewInt(1), uint(idx))
	v.Mul(v, big.NewInt(3))
	v.Sub(v, big.NewInt(1))
	return v
}

// plainLengths computes the plain serialized length of root and every
// descendant reachable from it, in one explicit-stack postorder pass.
func plainLengths(a *allocator.Allocator, root allocator.Ptr) map[allocator.Ptr]uint64 {
	out := make(map[allocator.Ptr]uint64)
	type frame struct {
		p       allocator.Ptr
		visited bool
	}
	stack := []frame{{root, false}}
	for len(stack) > 0 {
		n := len(stack) - 1
		f := stack[n]

		if b, ok := a.Atom(f.p); ok {
			stack = stack[:n]
			out[f.p] = encodedLen(b)
			continue
		}

		left, right, _ := a.Pair(f.p)
		if !f.visited {
			stack[n].visited = true
			stack = append(stack, frame{right, false}, frame{left, false})
			continue
		}
		stack = stack[:n]
		out[f.p] = 1 + out[left] + out[right]
	}
	return out
}

// SerializeCompressed encodes root using the back-reference form of
// spec.md §4.3: whenever a node being emitted is structurally identical to
// a subtree still resident on the simulated parse stack (not yet folded
// into a larger pair by Cons), and a 0xFE path to it is strictly shorter
// than that subtree's plain encoding, a back-reference is emitted instead.
//
// This implementation only searches subtrees that are themselves
// currently-unconsumed parse-stack entries (the v0, v1, ... of spec.md
// §4.3's virtual list); it does not additionally search into the interior
// of an entry already folded into a larger pair, which a fully general
// compressor could also reach by descending past a real-mode Left move.
// Per §4.3 "compressed form is not unique," this is a conformant
// simplification: it never produces an incorrect encoding, only a
// sometimes-larger one. DeserializeCompressed remains fully general and
// accepts any path another implementation's compressor might produce.
func SerializeCompressed(a *allocator.Allocator, root allocator.Ptr, maxAtomBytes int) ([]byte, error) {
	lengths := plainLengths(a, root)
	hashes := treehash.NewCache()
	treehash.TreeHash(a, root, hashes)

	type simEntry struct {
		hash treehash.Hash
		ptr  allocator.Ptr
	}
	var sim []simEntry

	findMatch := func(h treehash.Hash) (int, bool) {
		for i := 0; i < len(sim); i++ {
			if sim[len(sim)-1-i].hash == h {
				return i, true
			}
		}
		return 0, false
	}

	var buf []byte
	type frame struct {
		p       allocator.Ptr
		visited bool
	}
	stack := []frame{{root, false}}

	for len(stack) > 0 {
		n := len(stack) - 1
		f := stack[n]

		if !f.visited {
			h, _ := hashes.Get(f.p)

			if idx, ok := findMatch(h); ok {
				pathVal := backrefPathValue(idx)
				pathBytes := pathVal.Bytes()
				candidateLen := 1 + encodedLen(pathBytes)
				if candidateLen < lengths[f.p] {
					stack = stack[:n]
					var err error
					buf = append(buf, markerBackref)
					buf, err = appendAtom(buf, pathBytes, maxAtomBytes)
					if err != nil {
						return nil, err
					}
					sim = append(sim, simEntry{h, f.p})
					continue
				}
			}

			if b, ok := a.Atom(f.p); ok {
				stack = stack[:n]
				var err error
				buf, err = appendAtom(buf, b, maxAtomBytes)
				if err != nil {
					return nil, err
				}
				sim = append(sim, simEntry{h, f.p})
				continue
			}

			left, right, _ := a.Pair(f.p)
			buf = append(buf, markerPair)
			stack[n].visited = true
			stack = append(stack, frame{right, false}, frame{left, false})
			continue
		}

		stack = stack[:n]
		sim = sim[:len(sim)-2]
		h, _ := hashes.Get(f.p)
		sim = append(sim, simEntry{h, f.p})
	}

	return buf, nil
}
