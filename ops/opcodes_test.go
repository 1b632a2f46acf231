package ops

import (
	"testing"

	"github.com/chia-network/clvm-go/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableHasEveryNamedOperator(t *testing.T) {
	tbl := Default()
	want := []struct {
		code dialect.Opcode
		name string
	}{
		{OpIf, "i"}, {OpCons, "c"}, {OpFirst, "f"}, {OpRest, "r"}, {OpListp, "l"},
		{OpRaise, "x"}, {OpEq, "="}, {OpGtBytes, ">s"}, {OpSha256, "sha256"},
		{OpAdd, "+"}, {OpSubtract, "-"}, {OpMultiply, "*"}, {OpDivide, "/"},
		{OpDivmod, "divmod"}, {OpGt, ">"}, {OpAsh, "ash"}, {OpLsh, "lsh"},
		{OpLogand, "logand"}, {OpLogior, "logior"}, {OpLogxor, "logxor"},
		{OpLognot, "lognot"}, {OpNot, "not"}, {OpAny, "any"}, {OpAll, "all"},
		{OpSoftfork, "softfork"}, {OpSha256Tree, "sha256tree"},
		{OpKeccak256, "keccak256"}, {OpCoinid, "coinid"}, {OpPointAdd, "point_add"},
		{OpG1Subtract, "g1_subtract"}, {OpG1Multiply, "g1_multiply"},
		{OpG1Negate, "g1_negate"}, {OpPairingIdentity, "pairing_identity"},
		{OpSecp256k1Verify, "secp256k1_verify"}, {OpSecp256r1Verify, "secp256r1_verify"},
	}
	for _, w := range want {
		e, ok := tbl.Lookup(w.code)
		require.True(t, ok, "missing opcode for %s", w.name)
		assert.Equal(t, w.name, e.Name)
	}
}
