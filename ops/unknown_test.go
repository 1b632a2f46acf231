package ops

import (
	"testing"

	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/flags"
	"github.com/chia-network/clvm-go/opctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownEvaluatesToNilWhenAllowed(t *testing.T) {
	a := allocator.NewDefault()
	ctx := &opctx.Context{A: a, Args: a.Nil(), Cost: newCtx(a, a.Nil()).Cost}
	res, err := Unknown([]byte{0x3f, 0x00})(ctx)
	require.NoError(t, err)
	b, _ := a.Atom(res)
	assert.Empty(t, b)
}

func TestUnknownFailsUnderNoUnknownOps(t *testing.T) {
	a := allocator.NewDefault()
	ctx := &opctx.Context{A: a, Args: a.Nil(), Cost: newCtx(a, a.Nil()).Cost, Flags: flags.NoUnknownOps}
	_, err := Unknown([]byte{0x3f})(ctx)
	require.Error(t, err)
}
