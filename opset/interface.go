// Package opset provides predicates over the small space of CLVM opcode
// values (0..255 — every opcode named in spec.md §4.7 fits a single byte,
// and the unknown-opcode formula of §4.5 is defined in terms of an
// opcode atom's leading byte). It is adapted from the teacher's standalone
// byteset library: the same Dense/Sparse/Ranges/Exactly/All/None/And/Or/Not
// shape, retargeted from "bytes matched by a PEG byte-class instruction"
// to "opcode values known to, or reserved by, a dialect".
//
// dialect.Table uses opset only for Table.Defined, a Set of the
// single-byte opcodes it registers; Table.Lookup binary-searches its
// sorted entry slice, and no reserved-range Set is kept.
package opset

// Set is a predicate that returns true for certain opcode values.
//
// Implementations of Set must not change their membership on a call to
// Contains; Set values are immutable once constructed.
type Set interface {
	// Contains returns true iff opcode op is in the set.
	Contains(op byte) bool

	// ForEach calls f exactly once for each opcode in the set, in
	// ascending order.
	ForEach(f func(op byte))

	// Optimize returns a Set that matches the same opcodes, possibly in
	// a more efficient representation. If no better representation is
	// found, returns this Set.
	Optimize() Set

	// String returns a string representation of the set, for debugging.
	String() string
}

type asDenser interface {
	asDense() Set
}

// Bytes appends each opcode matched by s to out, then returns the updated
// slice.
func Bytes(s Set, out []byte) []byte {
	s.ForEach(func(op byte) { out = append(out, op) })
	return out
}

func asDense(s Set) Set {
	if sd, ok := s.(*setDense); ok {
		return sd
	}
	if sx, ok := s.(asDenser); ok {
		return sx.asDense()
	}
	mm := &setDense{}
	s.ForEach(func(op byte) {
		index, mask := denseIM(op)
		mm.bits[index] |= mask
	})
	return mm
}
