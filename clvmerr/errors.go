// Package clvmerr defines the error taxonomy shared by every pass of the
// CLVM core: the allocator, the serializer, the interpreter, and the
// operator set. Errors are represented as a closed set of kinds rather than
// as ad-hoc sentinel values, so that callers on the far side of the
// evaluate/serialize/deserialize surface can switch on Kind without
// depending on any particular pass's internal types.
package clvmerr

import (
	"fmt"
)

// Kind identifies which consensus-critical failure mode occurred. Kinds are
// never exceptions; they are the closed taxonomy of spec.md §7.
type Kind int

const (
	// KindInternal marks a condition that must never occur for valid
	// inputs. Seeing it means there is a bug in this module, not in the
	// program being evaluated.
	KindInternal Kind = iota

	// KindCostExceeded means the running cost would exceed max_cost.
	KindCostExceeded

	// KindOutOfMemory means an allocator capacity (bytes, atoms, or
	// pairs) was exceeded.
	KindOutOfMemory

	// KindPathIntoAtom means an environment-path lookup stepped off a
	// leaf atom.
	KindPathIntoAtom

	// KindArgCount means an operator received the wrong number of
	// arguments.
	KindArgCount

	// KindArgType means an atom was expected where a pair was given, or
	// vice versa.
	KindArgType

	// KindArgOutOfRange means a numeric argument violated a bound (a
	// negative value where unsigned was required, an oversized shift
	// count, and so on).
	KindArgOutOfRange

	// KindBadEncoding means a byte stream was not valid CLVM wire format.
	KindBadEncoding

	// KindClvmRaise means the program explicitly invoked the `x`
	// operator.
	KindClvmRaise
)

func (k Kind) String() string {
	switch k {
	case KindInternal:
		return "INTERNAL"
	case KindCostExceeded:
		return "COST_EXCEEDED"
	case KindOutOfMemory:
		return "OUT_OF_MEMORY"
	case KindPathIntoAtom:
		return "PATH_INTO_ATOM"
	case KindArgCount:
		return "ARG_COUNT"
	case KindArgType:
		return "ARG_TYPE"
	case KindArgOutOfRange:
		return "ARG_OUT_OF_RANGE"
	case KindBadEncoding:
		return "BAD_ENCODING"
	case KindClvmRaise:
		return "CLVM_RAISE"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is the minimal view of an offending CLVM node that clvmerr needs:
// just enough to report it without this leaf package depending on the
// allocator package (which would create an import cycle, since allocator
// itself returns *Error values).
//
// Callers pass the concrete node handle (typically allocator.Ptr, whose
// underlying type is int32) wrapped in a Node; Error.Node performs the type
// assertion back when a caller wants the concrete handle.
type Node struct {
	Value interface{}
}

// Error is the conveyed-to-callers shape of every failure produced by this
// module: {kind, optional_node} per spec.md §6, with no stack trace as part
// of the contract.
type Error struct {
	Kind Kind

	// HasNode is true iff Node carries a meaningful node handle.
	HasNode bool
	Node    Node

	// Raised carries the operand list of an `x` (raise) operator. Only
	// meaningful when Kind == KindClvmRaise.
	Raised interface{}

	// Msg is a short, human-readable elaboration. It is not part of the
	// external contract (two conforming implementations need not agree
	// on it) and exists purely for local debugging.
	Msg string
}

// New builds an *Error with no attached node.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// NewWithNode builds an *Error that names the offending node.
func NewWithNode(kind Kind, node interface{}, msg string) *Error {
	return &Error{Kind: kind, HasNode: true, Node: Node{Value: node}, Msg: msg}
}

// Raise builds the *Error for an `x` (CLVM_RAISE) operator invocation.
func Raise(args interface{}) *Error {
	return &Error{Kind: KindClvmRaise, Raised: args, Msg: "clvm_raise"}
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is reports whether err carries the given Kind. It allows callers to use
// errors.Is(err, clvmerr.CostExceeded) style matching via the sentinel
// values below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel values for errors.Is-style matching against a bare Kind, without
// constructing a full *Error. Each carries no node and no message.
var (
	CostExceeded  = &Error{Kind: KindCostExceeded}
	OutOfMemory   = &Error{Kind: KindOutOfMemory}
	PathIntoAtom  = &Error{Kind: KindPathIntoAtom}
	ArgCount      = &Error{Kind: KindArgCount}
	ArgType       = &Error{Kind: KindArgType}
	ArgOutOfRange = &Error{Kind: KindArgOutOfRange}
	BadEncoding   = &Error{Kind: KindBadEncoding}
	Internal      = &Error{Kind: KindInternal}
)
