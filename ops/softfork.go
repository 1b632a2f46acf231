package ops

import (
	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/clvmerr"
	"github.com/chia-network/clvm-go/opctx"
)

// Softfork implements `softfork`: (declared_cost program env) charges
// declared_cost unconditionally from the outer budget, then evaluates
// program against env under its own cost ceiling of declared_cost, in a
// fresh allocator checkpoint. Per spec.md §4.6, the inner evaluation's
// own success or failure is not what softfork reports: whatever happens
// inside, softfork evaluates to NIL iff the inner evaluator consumed
// exactly declared_cost; any other inner cost consumption — whether it
// under-ran on an early failure or, impossibly, over-ran its own ceiling
// — fails the outer evaluation instead. On the NIL path, the inner
// result is discarded and the checkpoint rolled back, so nothing the
// inner evaluation allocated or computed is observable outside softfork.
// A lone declared_cost with no attached program is valid and performs no
// nested evaluation at all.
func Softfork(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	if err := requireMinArgCount(args, 1); err != nil {
		return 0, err
	}
	declared, err := intArg(ctx.A, args[0])
	if err != nil {
		return 0, err
	}
	if declared.Sign() <= 0 || !declared.IsUint64() {
		return 0, clvmerr.New(clvmerr.KindArgOutOfRange, "softfork declared cost must be a positive integer")
	}
	declaredCost := declared.Uint64()
	if err := ctx.Cost.Charge(declaredCost); err != nil {
		return 0, err
	}
	if len(args) == 1 {
		return ctx.A.Nil(), nil
	}
	if err := requireArgCount(args, 3); err != nil {
		return 0, err
	}
	if ctx.Eval == nil {
		return 0, clvmerr.New(clvmerr.KindInternal, "softfork invoked without a nested evaluator")
	}
	program, env := args[1], args[2]
	checkpoint := ctx.A.Checkpoint()
	costUsed, _, _ := ctx.Eval.Eval(ctx.A, program, env, declaredCost, ctx.Flags)
	if costUsed != declaredCost {
		return 0, clvmerr.New(clvmerr.KindArgOutOfRange, "softfork inner evaluation did not consume exactly its declared cost")
	}
	ctx.A.Rollback(checkpoint)
	return ctx.A.Nil(), nil
}
