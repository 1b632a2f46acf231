package ops

import (
	"bytes"

	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/opctx"
)

const (
	GtBaseCost  = 498
	GtPerByte   = 2
	GtsBaseCost = 117
	GtsPerByte  = 1
)

// Gt implements `>`: numeric ordering on two integer atoms.
func Gt(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	if err := requireArgCount(args, 2); err != nil {
		return 0, err
	}
	ints, raw, err := bigArgs(ctx.A, args)
	if err != nil {
		return 0, err
	}
	if err := chargeBytes(ctx, GtBaseCost, GtPerByte, raw...); err != nil {
		return 0, err
	}
	return boolPtr(ctx.A, ints[0].Cmp(ints[1]) > 0)
}

// GtBytes implements `>s`: lexicographic ordering on the raw bytes of two
// atoms, independent of their value as an integer.
func GtBytes(ctx *opctx.Context) (allocator.Ptr, error) {
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
	if err := chargeBytes(ctx, GtsBaseCost, GtsPerByte, left, right); err != nil {
		return 0, err
	}
	return boolPtr(ctx.A, bytes.Compare(left, right) > 0)
}
