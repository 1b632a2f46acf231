package ops

import (
	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/clvmerr"
	"github.com/chia-network/clvm-go/opctx"
)

const RaiseCost = 0

// Raise implements `x`: unconditionally fails, carrying its arguments as
// the raised node for diagnostics. Unlike every other operator, it never
// returns a value.
func Raise(ctx *opctx.Context) (allocator.Ptr, error) {
	return 0, clvmerr.Raise(ctx.Args)
}
