package ops

import (
	"testing"

	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/clvmerr"
	"github.com/chia-network/clvm-go/cost"
	"github.com/chia-network/clvm-go/flags"
	"github.com/chia-network/clvm-go/opctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEvaluator struct {
	costUsed  uint64
	err       error
	allocated func(a *allocator.Allocator)
}

func (s stubEvaluator) Eval(a *allocator.Allocator, program, env allocator.Ptr, maxCost uint64, fl flags.Flags) (uint64, allocator.Ptr, error) {
	if s.allocated != nil {
		s.allocated(a)
	}
	return s.costUsed, a.Nil(), s.err
}

func TestSoftforkWithNoNestedProgramJustChargesDeclaredCost(t *testing.T) {
	a := allocator.NewDefault()
	args := mustList(t, a, intAtom(t, a, 500))
	ctx := &opctx.Context{A: a, Args: args, Cost: cost.New(0)}
	res, err := Softfork(ctx)
	require.NoError(t, err)
	b, _ := a.Atom(res)
	assert.Empty(t, b)
	assert.Equal(t, uint64(500), ctx.Cost.Running())
}

func TestSoftforkRollsBackAllocatorGrowthOnSuccess(t *testing.T) {
	a := allocator.NewDefault()
	program := intAtom(t, a, 1)
	env := a.Nil()
	args := mustList(t, a, intAtom(t, a, 500), program, env)

	before := a.AtomCount()
	ctx := &opctx.Context{A: a, Args: args, Cost: cost.New(0), Eval: stubEvaluator{
		costUsed:  500,
		allocated: func(a *allocator.Allocator) { mustAtom(t, a, []byte{9, 9, 9}) },
	}}
	_, err := Softfork(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, a.AtomCount())
}

// TestSoftforkSucceedsOnFailureAtExactDeclaredCost exercises the
// spec.md §4.6 rule directly: softfork reports NIL success whenever the
// inner evaluation consumed exactly its declared cost, even if the inner
// evaluation itself errored.
func TestSoftforkSucceedsOnFailureAtExactDeclaredCost(t *testing.T) {
	a := allocator.NewDefault()
	program := intAtom(t, a, 1)
	env := a.Nil()
	args := mustList(t, a, intAtom(t, a, 500), program, env)

	ctx := &opctx.Context{A: a, Args: args, Cost: cost.New(0), Eval: stubEvaluator{
		costUsed: 500,
		err:      clvmerr.New(clvmerr.KindArgType, "nested failure"),
	}}
	res, err := Softfork(ctx)
	require.NoError(t, err)
	b, _ := a.Atom(res)
	assert.Empty(t, b)
}

func TestSoftforkFailsOnCostMismatchEvenWithoutInnerError(t *testing.T) {
	a := allocator.NewDefault()
	program := intAtom(t, a, 1)
	env := a.Nil()
	args := mustList(t, a, intAtom(t, a, 500), program, env)

	ctx := &opctx.Context{A: a, Args: args, Cost: cost.New(0), Eval: stubEvaluator{
		costUsed: 10,
	}}
	_, err := Softfork(ctx)
	require.Error(t, err)
}
