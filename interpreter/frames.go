package interpreter

import "github.com/chia-network/clvm-go/allocator"

// frameKind distinguishes the two shapes of control-stack entry.
//
// Grounded on peggyvm's Execution: an explicit CS ([]Frame) of CALL/RET
// and CHOICE/FAIL entries driven by a Step loop, generalized here from a
// parsing backtrack stack to an eval/apply continuation stack.
type frameKind int

const (
	// frameEval evaluates node in env and pushes exactly one value onto
	// the value stack.
	frameEval frameKind = iota

	// frameApply has already collected argCount evaluated operands on
	// the value stack (its most recent argCount entries, in left-to-
	// right order) and dispatches op against them.
	frameApply
)

type frame struct {
	kind frameKind

	// frameEval fields.
	node allocator.Ptr
	env  allocator.Ptr

	// frameApply fields. node/env identify the original pair this
	// application evaluates, for the post-eval hook.
	opBytes  []byte
	argCount int
}
