package ops

import (
	"github.com/chia-network/clvm-go/dialect"
)

// Opcode values for the core operator set. quote and apply are not
// listed here: the interpreter special-cases them before ever consulting
// a dialect.Table: quote because it needs its operand unevaluated, and
// apply because it replaces the current evaluation with a new frame on
// the interpreter's control stack (apply's two operands are evaluated
// like any other operator's).
//
// 1 and 2 (reserved for quote/apply) through 31 follow the long-public
// CLVM core opcode assignment; nothing in this module invented them, but
// nothing in the retrieved reference material pins them down either, so
// their grounding is general domain knowledge rather than a pack
// citation. 32 and up (the hash/BLS/secp extension operators) have no
// well-known fixed assignment at all and are this module's own
// numbering, chosen only to keep them out of the 1-31 range.
const (
	OpIf      dialect.Opcode = 3
	OpCons    dialect.Opcode = 4
	OpFirst   dialect.Opcode = 5
	OpRest    dialect.Opcode = 6
	OpListp   dialect.Opcode = 7
	OpRaise   dialect.Opcode = 8
	OpEq      dialect.Opcode = 9
	OpGtBytes dialect.Opcode = 10
	OpSha256  dialect.Opcode = 11

	OpAdd      dialect.Opcode = 16
	OpSubtract dialect.Opcode = 17
	OpMultiply dialect.Opcode = 18
	OpDivide   dialect.Opcode = 19
	OpDivmod   dialect.Opcode = 20
	OpGt       dialect.Opcode = 21

	OpAsh     dialect.Opcode = 22
	OpLsh     dialect.Opcode = 23
	OpLogand  dialect.Opcode = 24
	OpLogior  dialect.Opcode = 25
	OpLogxor  dialect.Opcode = 26
	OpLognot  dialect.Opcode = 27

	OpNot dialect.Opcode = 28
	OpAny dialect.Opcode = 29
	OpAll dialect.Opcode = 30

	OpSoftfork dialect.Opcode = 31

	OpSha256Tree       dialect.Opcode = 32
	OpKeccak256        dialect.Opcode = 33
	OpCoinid           dialect.Opcode = 34
	OpPointAdd         dialect.Opcode = 35
	OpG1Subtract       dialect.Opcode = 36
	OpG1Multiply       dialect.Opcode = 37
	OpG1Negate         dialect.Opcode = 38
	OpPairingIdentity  dialect.Opcode = 39
	OpSecp256k1Verify  dialect.Opcode = 40
	OpSecp256r1Verify  dialect.Opcode = 41
)

// Default assembles the dialect.Table for the operator set of spec.md
// §4.7 (everything except quote and apply, which the interpreter
// special-cases directly).
func Default() *dialect.Table {
	return dialect.New([]dialect.Entry{
		{Code: OpIf, Name: "i", Handler: If},
		{Code: OpCons, Name: "c", Handler: Cons},
		{Code: OpFirst, Name: "f", Handler: First},
		{Code: OpRest, Name: "r", Handler: Rest},
		{Code: OpListp, Name: "l", Handler: Listp},
		{Code: OpRaise, Name: "x", Handler: Raise},
		{Code: OpEq, Name: "=", Handler: Eq},
		{Code: OpGtBytes, Name: ">s", Handler: GtBytes},
		{Code: OpSha256, Name: "sha256", Handler: Sha256},

		{Code: OpAdd, Name: "+", Handler: Add},
		{Code: OpSubtract, Name: "-", Handler: Subtract},
		{Code: OpMultiply, Name: "*", Handler: Multiply},
		{Code: OpDivide, Name: "/", Handler: Divide},
		{Code: OpDivmod, Name: "divmod", Handler: Divmod},
		{Code: OpGt, Name: ">", Handler: Gt},

		{Code: OpAsh, Name: "ash", Handler: Ash},
		{Code: OpLsh, Name: "lsh", Handler: Lsh},
		{Code: OpLogand, Name: "logand", Handler: Logand},
		{Code: OpLogior, Name: "logior", Handler: Logior},
		{Code: OpLogxor, Name: "logxor", Handler: Logxor},
		{Code: OpLognot, Name: "lognot", Handler: Lognot},

		{Code: OpNot, Name: "not", Handler: Not},
		{Code: OpAny, Name: "any", Handler: Any},
		{Code: OpAll, Name: "all", Handler: All},

		{Code: OpSoftfork, Name: "softfork", Handler: Softfork},

		{Code: OpSha256Tree, Name: "sha256tree", Handler: Sha256Tree},
		{Code: OpKeccak256, Name: "keccak256", Handler: Keccak256},
		{Code: OpCoinid, Name: "coinid", Handler: Coinid},
		{Code: OpPointAdd, Name: "point_add", Handler: PointAdd},
		{Code: OpG1Subtract, Name: "g1_subtract", Handler: G1Subtract},
		{Code: OpG1Multiply, Name: "g1_multiply", Handler: G1Multiply},
		{Code: OpG1Negate, Name: "g1_negate", Handler: G1Negate},
		{Code: OpPairingIdentity, Name: "pairing_identity", Handler: PairingIdentity},
		{Code: OpSecp256k1Verify, Name: "secp256k1_verify", Handler: Secp256k1Verify},
		{Code: OpSecp256r1Verify, Name: "secp256r1_verify", Handler: Secp256r1Verify},
	})
}
