// Package flags defines the evaluation-flag bitset threaded through
// RunProgram, per spec.md §4.5. Flags gate optional strictness checks and
// future soft-fork behavior without branching the dialect or operator
// tables themselves.
//
// Grounded on peggyvm/opcode.go's ImmMeta bit-packing style: named bit
// constants plus small predicate methods on the packed value, rather than
// a struct of bools.
package flags

// Flags is a bitset of evaluation options.
type Flags uint32

const (
	// NoNegDiv rejects "/" and "divmod" whenever the divisor is negative,
	// per spec.md:165 ("division by negative divisor fails"), instead of
	// CLVM's legacy behavior of flooring the quotient toward -infinity.
	NoNegDiv Flags = 1 << 0

	// NoUnknownOps rejects any opcode the active dialect does not define,
	// rather than falling back to the default unknown-opcode cost formula.
	NoUnknownOps Flags = 1 << 1

	// LimitHeap caps total allocator growth (atoms, pairs, and atom bytes)
	// at allocator.Limited* instead of allocator.Default*, regardless of
	// max_cost, so a cheap but memory-heavy program cannot exhaust the
	// host process. Consulted by clvm.RunProgram when constructing the
	// allocator an evaluation runs against.
	LimitHeap Flags = 1 << 2
)

// reservedMask covers bits the current dialect defines no meaning for.
// Bits 3-15 are reserved for future strictness flags; bits 16-31 are
// reserved for future soft-fork activation flags, mirroring the opcode
// reservation scheme in dialect.Table.
const reservedMask Flags = ^Flags(0) &^ (NoNegDiv | NoUnknownOps | LimitHeap)

// Has reports whether every bit set in want is also set in f.
func (f Flags) Has(want Flags) bool { return f&want == want }

// Any reports whether f has any bit in want set.
func (f Flags) Any(want Flags) bool { return f&want != 0 }

// WithReservedCleared returns f with all bits outside the currently
// defined flags cleared. Dialect implementations that want forward
// compatibility with future flag bits should avoid this and pass f through
// unchanged instead.
func (f Flags) WithReservedCleared() Flags { return f &^ reservedMask }
