package interpreter

import (
	"math/big"

	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/clvmerr"
)

const (
	traverseBaseCost    = 44
	traverseCostPerBit  = 4
)

// traverse implements spec.md §4.6's environment-path lookup: the atom's
// bytes are read as a big-endian non-negative integer, bits consumed in
// order of increasing significance (starting from the lowest bit of the
// last byte and moving toward the first byte), the highest set bit is the
// terminator, 0 descends left and 1 descends
// right. The empty atom (value 0) yields env itself. This mirrors
// serialize/backref.go's resolveBackrefPath, which walks the same kind of
// path against a different target (the in-flight parse stack rather than
// an already-materialized tree).
func traverse(a *allocator.Allocator, pathBytes []byte, env allocator.Ptr) (pathBits int, result allocator.Ptr, err error) {
	n := new(big.Int).SetBytes(pathBytes)
	bitLen := n.BitLen()
	if bitLen == 0 {
		return 0, env, nil
	}
	termBit := bitLen - 1
	cur := env
	for i := 0; i < termBit; i++ {
		left, right, ok := a.Pair(cur)
		if !ok {
			return 0, 0, clvmerr.New(clvmerr.KindPathIntoAtom, "environment path stepped off a leaf atom")
		}
		if n.Bit(i) == 0 {
			cur = left
		} else {
			cur = right
		}
	}
	return termBit, cur, nil
}

func traverseCost(pathBits int) uint64 {
	return traverseBaseCost + traverseCostPerBit*uint64(pathBits)
}
