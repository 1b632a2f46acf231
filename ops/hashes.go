package ops

import (
	"crypto/sha256"

	"golang.org/x/crypto/sha3"

	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/opctx"
	"github.com/chia-network/clvm-go/treehash"
)

const (
	Sha256BaseCost = 87
	Sha256PerByte  = 2
	Sha256TreeBaseCost = 87
	Sha256TreePerByte  = 2
	Keccak256BaseCost  = 87
	Keccak256PerByte   = 2
	CoinidCost = 711
)

// Sha256 implements `sha256`: hash of the concatenation of every argument's
// raw bytes.
func Sha256(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	raw := make([][]byte, len(args))
	for i, p := range args {
		b, err := atomArg(ctx.A, p)
		if err != nil {
			return 0, err
		}
		raw[i] = b
	}
	if err := chargeBytes(ctx, Sha256BaseCost, Sha256PerByte, raw...); err != nil {
		return 0, err
	}
	h := sha256.New()
	for _, b := range raw {
		h.Write(b)
	}
	return ctx.A.NewAtom(h.Sum(nil))
}

// Sha256Tree implements `sha256tree`: the standard tree hash of spec.md
// §4.8, applied to a single CLVM node argument.
func Sha256Tree(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	if err := requireArgCount(args, 1); err != nil {
		return 0, err
	}
	nodeCount := uint64(countNodes(ctx.A, args[0]))
	if err := ctx.Cost.Charge(Sha256TreeBaseCost + Sha256TreePerByte*nodeCount); err != nil {
		return 0, err
	}
	cache := treehash.NewCache()
	h := treehash.TreeHash(ctx.A, args[0], cache)
	return ctx.A.NewAtom(h[:])
}

func countNodes(a *allocator.Allocator, p allocator.Ptr) int {
	type frame struct{ p allocator.Ptr }
	stack := []frame{{p}}
	n := 0
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		if left, right, ok := a.Pair(f.p); ok {
			stack = append(stack, frame{left}, frame{right})
		}
	}
	return n
}

// Keccak256 implements `keccak256`: hash of the concatenation of every
// argument's raw bytes, using the original (non-NIST) Keccak padding.
func Keccak256(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	raw := make([][]byte, len(args))
	for i, p := range args {
		b, err := atomArg(ctx.A, p)
		if err != nil {
			return 0, err
		}
		raw[i] = b
	}
	if err := chargeBytes(ctx, Keccak256BaseCost, Keccak256PerByte, raw...); err != nil {
		return 0, err
	}
	h := sha3.NewLegacyKeccak256()
	for _, b := range raw {
		h.Write(b)
	}
	return ctx.A.NewAtom(h.Sum(nil))
}

// Coinid implements `coinid`: (parent_coin_info puzzle_hash amount) ->
// sha256(parent_coin_info || puzzle_hash || amount), matching the on-chain
// coin identifier formula.
func Coinid(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	if err := requireArgCount(args, 3); err != nil {
		return 0, err
	}
	parent, err := atomArg(ctx.A, args[0])
	if err != nil {
		return 0, err
	}
	puzzleHash, err := atomArg(ctx.A, args[1])
	if err != nil {
		return 0, err
	}
	amount, err := atomArg(ctx.A, args[2])
	if err != nil {
		return 0, err
	}
	if err := ctx.Cost.Charge(CoinidCost); err != nil {
		return 0, err
	}
	h := sha256.New()
	h.Write(parent)
	h.Write(puzzleHash)
	h.Write(amount)
	return ctx.A.NewAtom(h.Sum(nil))
}
