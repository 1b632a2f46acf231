// Package allocator implements the arena described in spec.md §4.1: a
// process-scoped store for the single immutable forest of CLVM atoms and
// pairs built up during one evaluation. It owns a concatenated byte buffer
// for atom contents and parallel descriptor tables for atoms and pairs;
// node handles (Ptr) are stable for the arena's lifetime or until a
// checkpoint they postdate is rolled back.
//
// Grounded on cznic-exp/lldb's xact.go: "record a length, truncate back to
// it" is exactly lldb's own structural-transaction idiom (BeginUpdate /
// EndUpdate / Rollback), generalized here from a byte-addressed file to an
// in-memory slice-backed arena.
package allocator

import (
	"bytes"
	"math/big"

	"github.com/cznic/mathutil"

	"github.com/chia-network/clvm-go/clvmerr"
	"github.com/chia-network/clvm-go/intbytes"
)

// Ptr is an opaque node handle. The sign of the underlying value partitions
// the handle space: a non-negative Ptr names an atom by index into the
// allocator's atom tables; a negative Ptr names a pair by its bitwise
// complement. Two handles that name structurally identical subtrees need
// not compare equal — use Allocator.Equal for structural comparison, or
// Allocator.AtomEq for byte-exact atom comparison.
type Ptr int32

// Nil is the canonical handle for the empty atom. Every Allocator created
// by New reserves atom index 0 for it, so Nil is always valid.
const Nil Ptr = 0

func atomPtr(index int32) Ptr { return Ptr(index) }
func pairPtr(index int32) Ptr { return Ptr(-index - 1) }

// IsPair reports whether p names a pair rather than an atom.
func (p Ptr) IsPair() bool { return p < 0 }

// IsAtom reports whether p names an atom rather than a pair.
func (p Ptr) IsAtom() bool { return p >= 0 }

func (p Ptr) atomIndex() int32 { return int32(p) }
func (p Ptr) pairIndex() int32 { return int32(-p - 1) }

// Kind identifies whether a node is an atom or a pair, per spec.md §3.
type Kind int

const (
	KindAtom Kind = iota
	KindPair
)

// Allocator is the arena described in spec.md §4.1. The zero value is not
// usable; construct one with New.
type Allocator struct {
	data    []byte
	atomOff []uint32
	atomLen []uint32

	pairLeft  []Ptr
	pairRight []Ptr

	maxBytes uint32
	maxAtoms uint32
	maxPairs uint32
}

// Default capacity limits, per DESIGN.md's Open Question decision: spec.md
// §5 fixes only the atom-byte ceiling ("default ≈ 2^30 bytes"); pair and
// atom *count* ceilings are an implementation choice, set generously below
// 2^31 so that Ptr (int32) can always address every allocated node.
const (
	DefaultMaxBytes = 1 << 30
	DefaultMaxAtoms = 1 << 27
	DefaultMaxPairs = 1 << 27
)

// Limited capacity limits, selected by callers that activate the
// LIMIT_HEAP evaluation flag (spec.md:165: "caps allocator bytes/pairs").
// Chosen well below the package defaults so enabling the flag genuinely
// constrains a heap-exhaustion attempt rather than only documenting an
// intention; still generous enough for ordinary programs.
const (
	LimitedMaxBytes = 1 << 24
	LimitedMaxAtoms = 1 << 20
	LimitedMaxPairs = 1 << 20
)

// New returns an Allocator with the given capacity limits. A limit of 0
// selects the package default for that dimension.
func New(maxBytes, maxAtoms, maxPairs uint32) *Allocator {
	if maxBytes == 0 {
		maxBytes = DefaultMaxBytes
	}
	if maxAtoms == 0 {
		maxAtoms = DefaultMaxAtoms
	}
	if maxPairs == 0 {
		maxPairs = DefaultMaxPairs
	}
	a := &Allocator{
		maxBytes: maxBytes,
		maxAtoms: maxAtoms,
		maxPairs: maxPairs,
	}
	// Reserve atom index 0 for Nil (the empty atom).
	a.atomOff = append(a.atomOff, 0)
	a.atomLen = append(a.atomLen, 0)
	return a
}

// NewDefault returns an Allocator with every capacity limit set to its
// package default.
func NewDefault() *Allocator {
	return New(0, 0, 0)
}

// NewLimited returns an Allocator with the stricter Limited* capacity
// ceilings, for callers honoring the LIMIT_HEAP evaluation flag.
func NewLimited() *Allocator {
	return New(LimitedMaxBytes, LimitedMaxAtoms, LimitedMaxPairs)
}

// Nil returns the canonical handle for the empty atom.
func (a *Allocator) Nil() Ptr { return Nil }

// NewAtom copies b into the arena and returns a handle to it. Fails with
// clvmerr.KindOutOfMemory if either the atom count or the byte-buffer
// capacity would be exceeded.
func (a *Allocator) NewAtom(b []byte) (Ptr, error) {
	if uint32(len(a.atomOff)) >= a.maxAtoms {
		return 0, clvmerr.New(clvmerr.KindOutOfMemory, "atom count limit exceeded")
	}
	newLen := mathutil.MinUint64(uint64(len(a.data))+uint64(len(b)), uint64(a.maxBytes)+1)
	if newLen > uint64(a.maxBytes) {
		return 0, clvmerr.New(clvmerr.KindOutOfMemory, "atom byte-buffer limit exceeded")
	}
	off := uint32(len(a.data))
	a.data = append(a.data, b...)
	index := int32(len(a.atomOff))
	a.atomOff = append(a.atomOff, off)
	a.atomLen = append(a.atomLen, uint32(len(b)))
	return atomPtr(index), nil
}

// NewPair allocates a pair (left, right) and returns a handle to it. Fails
// with clvmerr.KindOutOfMemory if the pair-count capacity would be
// exceeded.
func (a *Allocator) NewPair(left, right Ptr) (Ptr, error) {
	if uint32(len(a.pairLeft)) >= a.maxPairs {
		return 0, clvmerr.New(clvmerr.KindOutOfMemory, "pair count limit exceeded")
	}
	index := int32(len(a.pairLeft))
	a.pairLeft = append(a.pairLeft, left)
	a.pairRight = append(a.pairRight, right)
	return pairPtr(index), nil
}

// NewSmallNumber is equivalent to NewAtom(minimal two's-complement
// encoding of n), per spec.md §4.1.
func (a *Allocator) NewSmallNumber(n uint32) (Ptr, error) {
	return a.NewAtom(intbytes.MinimalBytes(new(big.Int).SetUint64(uint64(n))))
}

// Atom returns the bytes of the atom named by p. ok is false if p names a
// pair.
func (a *Allocator) Atom(p Ptr) (b []byte, ok bool) {
	if p.IsPair() {
		return nil, false
	}
	idx := p.atomIndex()
	if idx < 0 || int(idx) >= len(a.atomOff) {
		return nil, false
	}
	off := a.atomOff[idx]
	ln := a.atomLen[idx]
	return a.data[off : off+ln], true
}

// Pair returns the children of the pair named by p. ok is false if p names
// an atom.
func (a *Allocator) Pair(p Ptr) (left, right Ptr, ok bool) {
	if p.IsAtom() {
		return 0, 0, false
	}
	idx := p.pairIndex()
	if idx < 0 || int(idx) >= len(a.pairLeft) {
		return 0, 0, false
	}
	return a.pairLeft[idx], a.pairRight[idx], true
}

// Kind reports whether p names an atom or a pair.
func (a *Allocator) Kind(p Ptr) Kind {
	if p.IsPair() {
		return KindPair
	}
	return KindAtom
}

// AtomEq reports whether p and q name atoms with byte-identical contents.
// Returns false if either names a pair.
func (a *Allocator) AtomEq(p, q Ptr) bool {
	pb, pok := a.Atom(p)
	qb, qok := a.Atom(q)
	if !pok || !qok {
		return false
	}
	return bytes.Equal(pb, qb)
}

// Equal reports whether p and q are structurally identical trees: either
// both atoms with identical bytes, or both pairs whose left and right
// children are (recursively) structurally identical. Uses an explicit work
// stack rather than native recursion, per spec.md §9's requirement that all
// traversal tolerate programs nested far deeper than the native stack.
func (a *Allocator) Equal(p, q Ptr) bool {
	type frame struct{ p, q Ptr }
	stack := []frame{{p, q}}
	for len(stack) > 0 {
		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]

		if f.p.IsPair() != f.q.IsPair() {
			return false
		}
		if f.p.IsAtom() {
			if !a.AtomEq(f.p, f.q) {
				return false
			}
			continue
		}
		pl, pr, _ := a.Pair(f.p)
		ql, qr, _ := a.Pair(f.q)
		stack = append(stack, frame{pl, ql}, frame{pr, qr})
	}
	return true
}

// Checkpoint is a token returned by Allocator.Checkpoint and consumed by
// Allocator.Rollback.
type Checkpoint struct {
	atoms uint32
	bytes uint32
	pairs uint32
}

// Checkpoint records the arena's current extent. Passing the returned
// token to Rollback later discards every atom, byte, and pair allocated
// since.
func (a *Allocator) Checkpoint() Checkpoint {
	return Checkpoint{
		atoms: uint32(len(a.atomOff)),
		bytes: uint32(len(a.data)),
		pairs: uint32(len(a.pairLeft)),
	}
}

// Rollback logically truncates the arena back to the extent recorded by c.
// Handles allocated after c become invalid; the caller must not retain or
// dereference them afterward. Used by the softfork operator to discard a
// nested evaluation's allocations (spec.md §4.6).
func (a *Allocator) Rollback(c Checkpoint) {
	a.atomOff = a.atomOff[:c.atoms]
	a.atomLen = a.atomLen[:c.atoms]
	a.data = a.data[:c.bytes]
	a.pairLeft = a.pairLeft[:c.pairs]
	a.pairRight = a.pairRight[:c.pairs]
}

// AtomCount returns the number of atoms currently allocated (including
// Nil).
func (a *Allocator) AtomCount() int { return len(a.atomOff) }

// PairCount returns the number of pairs currently allocated.
func (a *Allocator) PairCount() int { return len(a.pairLeft) }

// ByteCount returns the number of atom-content bytes currently allocated.
func (a *Allocator) ByteCount() int { return len(a.data) }
