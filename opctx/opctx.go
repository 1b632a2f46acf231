// Package opctx defines the shared vocabulary between the operator table
// (package dialect), the operator implementations (package ops), and the
// interpreter that drives both: the call shape every operator handler is
// invoked with, and the narrow interface an operator needs back into the
// interpreter to run a nested evaluation (the softfork operator, per
// spec.md §4.6).
//
// It exists as its own leaf package so dialect and ops can each depend on
// it without depending on one another, and so the interpreter can satisfy
// Evaluator without either of them importing the interpreter.
package opctx

import (
	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/cost"
	"github.com/chia-network/clvm-go/flags"
)

// Evaluator is the capability an operator needs to run a nested CLVM
// evaluation against the same allocator, under its own cost ceiling. The
// interpreter is the only implementation; it is passed down through
// Context rather than imported directly, to avoid a package cycle.
type Evaluator interface {
	Eval(a *allocator.Allocator, program, env allocator.Ptr, maxCost uint64, fl flags.Flags) (costUsed uint64, result allocator.Ptr, err error)
}

// Context is the call shape every operator handler receives, per spec.md
// §4.7: "each operator receives a flat argument list (already evaluated)
// and charges cost before work."
type Context struct {
	A     *allocator.Allocator
	Args  allocator.Ptr
	Cost  *cost.Meter
	Flags flags.Flags
	Eval  Evaluator
}

// Handler implements one CLVM operator.
type Handler func(ctx *Context) (allocator.Ptr, error)
