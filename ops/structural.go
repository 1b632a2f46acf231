package ops

import (
	"bytes"

	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/opctx"
)

// Base costs for the structural operators. Spec.md §4.5 fixes only
// traverse/quote/apply exactly; these are this module's own calibration
// for the rest.
const (
	IfCost    = 33
	ConsCost  = 50
	FirstCost = 30
	RestCost  = 30
	ListpCost = 19
	EqBaseCost = 33
	EqPerByte  = 1
)

// If implements `i`: (cond then else) -> then if cond is truthy, else
// else. Neither branch is evaluated here; the caller is responsible for
// evaluating whichever branch it selects, via apply.
func If(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	if err := requireArgCount(args, 3); err != nil {
		return 0, err
	}
	if err := ctx.Cost.Charge(IfCost); err != nil {
		return 0, err
	}
	if truthy(ctx.A, args[0]) {
		return args[1], nil
	}
	return args[2], nil
}

// Cons implements `c`: (a b) -> (a . b).
func Cons(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	if err := requireArgCount(args, 2); err != nil {
		return 0, err
	}
	if err := ctx.Cost.Charge(ConsCost); err != nil {
		return 0, err
	}
	return ctx.A.NewPair(args[0], args[1])
}

// First implements `f`: (pair) -> left.
func First(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	if err := requireArgCount(args, 1); err != nil {
		return 0, err
	}
	if err := ctx.Cost.Charge(FirstCost); err != nil {
		return 0, err
	}
	left, _, err := pairArg(ctx.A, args[0])
	if err != nil {
		return 0, err
	}
	return left, nil
}

// Rest implements `r`: (pair) -> right.
func Rest(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	if err := requireArgCount(args, 1); err != nil {
		return 0, err
	}
	if err := ctx.Cost.Charge(RestCost); err != nil {
		return 0, err
	}
	_, right, err := pairArg(ctx.A, args[0])
	if err != nil {
		return 0, err
	}
	return right, nil
}

// Listp implements `l`: (node) -> true iff node is a pair.
func Listp(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	if err := requireArgCount(args, 1); err != nil {
		return 0, err
	}
	if err := ctx.Cost.Charge(ListpCost); err != nil {
		return 0, err
	}
	return boolPtr(ctx.A, args[0].IsPair())
}

// Eq implements `=`: (a b) -> true iff both are atoms with identical
// bytes. A pair on either side is an argument-type error, not false.
func Eq(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	if err := requireArgCount(args, 2); err != nil {
		return 0, err
	}
	left, err := atomArg(ctx.A, args[0])
	if err != nil {
		return 0, err
	}
	right, err := atomArg(ctx.A, args[1])
	if err != nil {
		return 0, err
	}
	if err := chargeBytes(ctx, EqBaseCost, EqPerByte, left, right); err != nil {
		return 0, err
	}
	return boolPtr(ctx.A, bytes.Equal(left, right))
}

