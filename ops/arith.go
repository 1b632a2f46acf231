package ops

import (
	"math/big"

	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/clvmerr"
	"github.com/chia-network/clvm-go/flags"
	"github.com/chia-network/clvm-go/intbytes"
	"github.com/chia-network/clvm-go/opctx"
)

// Base/per-byte costs for the arithmetic operators. Calibration choice of
// this module.
const (
	ArithBaseCost = 99
	ArithPerByte  = 1
	DivBaseCost   = 99
	DivPerByte    = 1
	DivmodBaseCost = 99
	DivmodPerByte  = 1
)

func bigArgs(a *allocator.Allocator, args []allocator.Ptr) ([]*big.Int, [][]byte, error) {
	ints := make([]*big.Int, len(args))
	raw := make([][]byte, len(args))
	for i, p := range args {
		b, err := atomArg(a, p)
		if err != nil {
			return nil, nil, err
		}
		raw[i] = b
		ints[i] = intbytes.BytesToInt(b)
	}
	return ints, raw, nil
}

// Add implements `+`: variadic sum, identity 0.
func Add(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	ints, raw, err := bigArgs(ctx.A, args)
	if err != nil {
		return 0, err
	}
	if err := chargeBytes(ctx, ArithBaseCost, ArithPerByte, raw...); err != nil {
		return 0, err
	}
	sum := big.NewInt(0)
	for _, n := range ints {
		sum.Add(sum, n)
	}
	return newInt(ctx.A, sum)
}

// Subtract implements `-`: args[0] - args[1] - ... - args[n-1]. With a
// single argument, negates it. With zero arguments, returns 0.
func Subtract(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	ints, raw, err := bigArgs(ctx.A, args)
	if err != nil {
		return 0, err
	}
	if err := chargeBytes(ctx, ArithBaseCost, ArithPerByte, raw...); err != nil {
		return 0, err
	}
	if len(ints) == 0 {
		return newInt(ctx.A, big.NewInt(0))
	}
	result := new(big.Int).Set(ints[0])
	for _, n := range ints[1:] {
		result.Sub(result, n)
	}
	if len(ints) == 1 {
		result.Neg(result)
	}
	return newInt(ctx.A, result)
}

// Multiply implements `*`: variadic product, identity 1.
func Multiply(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	ints, raw, err := bigArgs(ctx.A, args)
	if err != nil {
		return 0, err
	}
	if err := chargeBytes(ctx, ArithBaseCost, ArithPerByte, raw...); err != nil {
		return 0, err
	}
	product := big.NewInt(1)
	for _, n := range ints {
		product.Mul(product, n)
	}
	return newInt(ctx.A, product)
}

// floorDivMod returns (q, r) such that n = q*d + r, 0 <= sign(r) matches
// sign(d) (i.e. division rounds toward negative infinity), per spec.md
// §4.7's "`/` rounds toward -∞."
func floorDivMod(n, d *big.Int) (q, r *big.Int) {
	q, r = new(big.Int), new(big.Int)
	q.QuoRem(n, d, r)
	if r.Sign() != 0 && (r.Sign() < 0) != (d.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
		r.Add(r, d)
	}
	return q, r
}

// Divide implements `/`: floor division. Fails ARG_OUT_OF_RANGE on
// division by zero, and (when flags.NoNegDiv is set) on a negative
// divisor.
func Divide(ctx *opctx.Context) (allocator.Ptr, error) {
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
	if err := chargeBytes(ctx, DivBaseCost, DivPerByte, raw...); err != nil {
		return 0, err
	}
	n, d := ints[0], ints[1]
	if d.Sign() == 0 {
		return 0, clvmerr.New(clvmerr.KindArgOutOfRange, "division by zero")
	}
	if ctx.Flags.Has(flags.NoNegDiv) && d.Sign() < 0 {
		return 0, clvmerr.New(clvmerr.KindArgOutOfRange, "negative divisor with NO_NEG_DIV set")
	}
	q, _ := floorDivMod(n, d)
	return newInt(ctx.A, q)
}

// Divmod implements `divmod`: (quotient . remainder), both per
// floorDivMod.
func Divmod(ctx *opctx.Context) (allocator.Ptr, error) {
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
	if err := chargeBytes(ctx, DivmodBaseCost, DivmodPerByte, raw...); err != nil {
		return 0, err
	}
	n, d := ints[0], ints[1]
	if d.Sign() == 0 {
		return 0, clvmerr.New(clvmerr.KindArgOutOfRange, "division by zero")
	}
	if ctx.Flags.Has(flags.NoNegDiv) && d.Sign() < 0 {
		return 0, clvmerr.New(clvmerr.KindArgOutOfRange, "negative divisor with NO_NEG_DIV set")
	}
	q, r := floorDivMod(n, d)
	qp, err := newInt(ctx.A, q)
	if err != nil {
		return 0, err
	}
	rp, err := newInt(ctx.A, r)
	if err != nil {
		return 0, err
	}
	return ctx.A.NewPair(qp, rp)
}
