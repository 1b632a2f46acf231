package ops

import (
	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/opctx"
)

const (
	NotCost = 200
	AllBaseCost = 200
	AllPerArg   = 300
	AnyBaseCost = 200
	AnyPerArg   = 300
)

// Not implements `not`: single argument, boolean negation under CLVM
// truthiness.
func Not(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	if err := requireArgCount(args, 1); err != nil {
		return 0, err
	}
	if err := ctx.Cost.Charge(NotCost); err != nil {
		return 0, err
	}
	return boolPtr(ctx.A, !truthy(ctx.A, args[0]))
}

// All implements `all`: true iff every argument is truthy (empty argument
// list is vacuously true).
func All(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	if err := ctx.Cost.Charge(AllBaseCost + AllPerArg*uint64(len(args))); err != nil {
		return 0, err
	}
	for _, a := range args {
		if !truthy(ctx.A, a) {
			return boolPtr(ctx.A, false)
		}
	}
	return boolPtr(ctx.A, true)
}

// Any implements `any`: true iff at least one argument is truthy (empty
// argument list is vacuously false).
func Any(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	if err := ctx.Cost.Charge(AnyBaseCost + AnyPerArg*uint64(len(args))); err != nil {
		return 0, err
	}
	for _, a := range args {
		if truthy(ctx.A, a) {
			return boolPtr(ctx.A, true)
		}
	}
	return boolPtr(ctx.A, false)
}
