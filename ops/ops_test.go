package ops

import (
	"math/big"
	"testing"

	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/cost"
	"github.com/chia-network/clvm-go/intbytes"
	"github.com/chia-network/clvm-go/opctx"
)

// newCtx builds an opctx.Context over the given allocator with an
// effectively unlimited cost meter, for handler-level unit tests that
// aren't exercising cost metering itself.
func newCtx(a *allocator.Allocator, args allocator.Ptr) *opctx.Context {
	return &opctx.Context{A: a, Args: args, Cost: cost.New(0), Flags: 0}
}

func mustAtom(t *testing.T, a *allocator.Allocator, b []byte) allocator.Ptr {
	t.Helper()
	p, err := a.NewAtom(b)
	if err != nil {
		t.Fatalf("NewAtom: %v", err)
	}
	return p
}

func mustList(t *testing.T, a *allocator.Allocator, items ...allocator.Ptr) allocator.Ptr {
	t.Helper()
	cur := a.Nil()
	for i := len(items) - 1; i >= 0; i-- {
		p, err := a.NewPair(items[i], cur)
		if err != nil {
			t.Fatalf("NewPair: %v", err)
		}
		cur = p
	}
	return cur
}

func intAtom(t *testing.T, a *allocator.Allocator, n int64) allocator.Ptr {
	t.Helper()
	return mustAtom(t, a, intbytes.MinimalBytes(big.NewInt(n)))
}
