package ops

import (
	"math/big"

	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/clvmerr"
	"github.com/chia-network/clvm-go/opctx"
)

const (
	ShiftBaseCost = 196
	ShiftPerByte  = 3
	LogBaseCost   = 100
	LogPerByte    = 3
	LognotBaseCost = 331
	LognotPerByte  = 3
	MaxShiftAmount = 1 << 16
)

func shiftAmount(a *allocator.Allocator, p allocator.Ptr) (int, error) {
	n, err := intArg(a, p)
	if err != nil {
		return 0, err
	}
	if !n.IsInt64() || n.Int64() > MaxShiftAmount || n.Int64() < -MaxShiftAmount {
		return 0, clvmerr.New(clvmerr.KindArgOutOfRange, "shift amount out of range")
	}
	return int(n.Int64()), nil
}

// Ash implements `ash`: arithmetic shift, sign-preserving. A positive shift
// multiplies by 2^n; a negative shift divides by 2^n rounding toward -∞.
func Ash(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	if err := requireArgCount(args, 2); err != nil {
		return 0, err
	}
	value, err := intArg(ctx.A, args[0])
	if err != nil {
		return 0, err
	}
	shift, err := shiftAmount(ctx.A, args[1])
	if err != nil {
		return 0, err
	}
	valueBytes, _ := atomArg(ctx.A, args[0])
	if err := chargeBytes(ctx, ShiftBaseCost, ShiftPerByte, valueBytes); err != nil {
		return 0, err
	}
	result := new(big.Int)
	if shift >= 0 {
		result.Lsh(value, uint(shift))
	} else {
		result.Rsh(value, uint(-shift))
	}
	return newInt(ctx.A, result)
}

// Lsh implements `lsh`: logical shift over the value's two's-complement bit
// pattern reinterpreted as unsigned, so a right shift zero-fills from the
// top instead of sign-extending. This is this module's own reading of
// "logical" vs. "arithmetic" shift; see DESIGN.md.
func Lsh(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	if err := requireArgCount(args, 2); err != nil {
		return 0, err
	}
	valueBytes, err := atomArg(ctx.A, args[0])
	if err != nil {
		return 0, err
	}
	shift, err := shiftAmount(ctx.A, args[1])
	if err != nil {
		return 0, err
	}
	if err := chargeBytes(ctx, ShiftBaseCost, ShiftPerByte, valueBytes); err != nil {
		return 0, err
	}
	unsigned := new(big.Int).SetBytes(valueBytes)
	result := new(big.Int)
	if shift >= 0 {
		result.Lsh(unsigned, uint(shift))
	} else {
		result.Rsh(unsigned, uint(-shift))
	}
	return newInt(ctx.A, result)
}

func logBinOp(ctx *opctx.Context, combine func(z, x, y *big.Int) *big.Int, identity int64) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	ints, raw, err := bigArgs(ctx.A, args)
	if err != nil {
		return 0, err
	}
	if err := chargeBytes(ctx, LogBaseCost, LogPerByte, raw...); err != nil {
		return 0, err
	}
	result := big.NewInt(identity)
	for i, n := range ints {
		if i == 0 {
			result.Set(n)
			continue
		}
		combine(result, result, n)
	}
	return newInt(ctx.A, result)
}

// Logand implements `logand`: variadic bitwise AND over two's-complement
// representations, identity -1 (all bits set).
func Logand(ctx *opctx.Context) (allocator.Ptr, error) {
	return logBinOp(ctx, (*big.Int).And, -1)
}

// Logior implements `logior`: variadic bitwise OR, identity 0.
func Logior(ctx *opctx.Context) (allocator.Ptr, error) {
	return logBinOp(ctx, (*big.Int).Or, 0)
}

// Logxor implements `logxor`: variadic bitwise XOR, identity 0.
func Logxor(ctx *opctx.Context) (allocator.Ptr, error) {
	return logBinOp(ctx, (*big.Int).Xor, 0)
}

// Lognot implements `lognot`: single argument, bitwise complement (-x-1).
func Lognot(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	if err := requireArgCount(args, 1); err != nil {
		return 0, err
	}
	n, err := intArg(ctx.A, args[0])
	if err != nil {
		return 0, err
	}
	raw, _ := atomArg(ctx.A, args[0])
	if err := chargeBytes(ctx, LognotBaseCost, LognotPerByte, raw); err != nil {
		return 0, err
	}
	return newInt(ctx.A, new(big.Int).Not(n))
}
