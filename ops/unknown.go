package ops

import (
	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/clvmerr"
	"github.com/chia-network/clvm-go/flags"
	"github.com/chia-network/clvm-go/opctx"
)

// UnknownOpBaseCost and UnknownOpPerExtensionByte calibrate the cost an
// unrecognized opcode is charged, so that a future extension operator
// can't be made artificially free by running it against an older
// implementation that doesn't know its real cost. The exact formula real
// networks use for this is not recoverable from anything in this module's
// reference material; this is a reconstruction, not a verified value. See
// DESIGN.md.
const (
	UnknownOpBaseCost        = 1
	UnknownOpPerExtensionByte = 1
)

// Unknown handles any opcode absent from the dialect table. If
// flags.NoUnknownOps is set, it always fails ARG_TYPE (a future operator
// is indistinguishable from a typo without forward-compatibility
// explicitly enabled). Otherwise it charges a cost derived from how many
// extra bytes the opcode atom spent past the single-byte range — a longer
// encoding reserves room for a more expensive future operator — and
// evaluates to NIL.
func Unknown(opcodeBytes []byte) opctx.Handler {
	return func(ctx *opctx.Context) (allocator.Ptr, error) {
		if ctx.Flags.Has(flags.NoUnknownOps) {
			return 0, clvmerr.New(clvmerr.KindArgType, "unknown opcode with NO_UNKNOWN_OPS set")
		}
		extra := len(opcodeBytes) - 1
		if extra < 0 {
			extra = 0
		}
		if err := ctx.Cost.Charge(UnknownOpBaseCost + UnknownOpPerExtensionByte*uint64(extra)); err != nil {
			return 0, err
		}
		return ctx.A.Nil(), nil
	}
}
