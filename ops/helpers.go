// Package ops implements the operator set of spec.md §4.7: the handlers a
// dialect.Table dispatches opcodes to. Every handler receives an already
// evaluated, flat argument list via opctx.Context and must charge its cost
// before doing any work.
//
// Grounded on peggyvm/execution.go's instruction handlers (small
// functions, one per opcode, each validating its own operands), adapted
// from a fixed bytecode's register operands to CLVM's cons-list argument
// convention.
package ops

import (
	"math/big"

	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/clvmerr"
	"github.com/chia-network/clvm-go/intbytes"
	"github.com/chia-network/clvm-go/opctx"
)

// listToSlice walks a proper cons-list (as produced by the interpreter's
// argument evaluation) into a slice of its elements. It fails with
// ArgType if the list is not NIL-terminated.
func listToSlice(a *allocator.Allocator, args allocator.Ptr) ([]allocator.Ptr, error) {
	var out []allocator.Ptr
	cur := args
	for {
		if b, ok := a.Atom(cur); ok {
			if len(b) != 0 {
				return nil, clvmerr.New(clvmerr.KindArgType, "argument list not NIL-terminated")
			}
			return out, nil
		}
		left, right, _ := a.Pair(cur)
		out = append(out, left)
		cur = right
	}
}

func requireArgCount(args []allocator.Ptr, want int) error {
	if len(args) != want {
		return clvmerr.New(clvmerr.KindArgCount, "wrong argument count")
	}
	return nil
}

func requireMinArgCount(args []allocator.Ptr, min int) error {
	if len(args) < min {
		return clvmerr.New(clvmerr.KindArgCount, "too few arguments")
	}
	return nil
}

func atomArg(a *allocator.Allocator, p allocator.Ptr) ([]byte, error) {
	b, ok := a.Atom(p)
	if !ok {
		return nil, clvmerr.New(clvmerr.KindArgType, "expected atom, got pair")
	}
	return b, nil
}

func pairArg(a *allocator.Allocator, p allocator.Ptr) (left, right allocator.Ptr, err error) {
	left, right, ok := a.Pair(p)
	if !ok {
		return 0, 0, clvmerr.New(clvmerr.KindArgType, "expected pair, got atom")
	}
	return left, right, nil
}

func intArg(a *allocator.Allocator, p allocator.Ptr) (*big.Int, error) {
	b, err := atomArg(a, p)
	if err != nil {
		return nil, err
	}
	return intbytes.BytesToInt(b), nil
}

func newInt(a *allocator.Allocator, n *big.Int) (allocator.Ptr, error) {
	return a.NewAtom(intbytes.MinimalBytes(n))
}

// truthy reports the CLVM boolean reading of a node: any atom other than
// NIL (the empty atom) is true, and so is any pair.
func truthy(a *allocator.Allocator, p allocator.Ptr) bool {
	if b, ok := a.Atom(p); ok {
		return len(b) != 0
	}
	return true
}

func boolPtr(a *allocator.Allocator, v bool) (allocator.Ptr, error) {
	if v {
		return a.NewAtom([]byte{1})
	}
	return a.Nil(), nil
}

// chargeBytes charges perByte for each byte across the given atoms, after
// charging base. Shared by every operator whose cost scales with the size
// of its operands.
func chargeBytes(ctx *opctx.Context, base, perByte uint64, atoms ...[]byte) error {
	total := base
	for _, b := range atoms {
		total += perByte * uint64(len(b))
	}
	return ctx.Cost.Charge(total)
}
