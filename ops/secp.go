package ops

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrdecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/clvmerr"
	"github.com/chia-network/clvm-go/opctx"
)

const (
	Secp256k1VerifyCost = 1_300_000
	Secp256r1VerifyCost = 1_300_000
)

// Secp256k1Verify implements `secp256k1_verify`: (pubkey message_hash
// signature) -> NIL on a valid signature; a signature that does not verify
// fails with ARG_OUT_OF_RANGE. pubkey is a 33-byte compressed point, signature is 64 raw bytes (r || s).
func Secp256k1Verify(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	if err := requireArgCount(args, 3); err != nil {
		return 0, err
	}
	pubkeyBytes, err := atomArg(ctx.A, args[0])
	if err != nil {
		return 0, err
	}
	hash, err := atomArg(ctx.A, args[1])
	if err != nil {
		return 0, err
	}
	sigBytes, err := atomArg(ctx.A, args[2])
	if err != nil {
		return 0, err
	}
	if err := ctx.Cost.Charge(Secp256k1VerifyCost); err != nil {
		return 0, err
	}
	if len(sigBytes) != 64 {
		return 0, clvmerr.New(clvmerr.KindArgType, "secp256k1 signature must be 64 bytes")
	}
	pubkey, err := secp256k1.ParsePubKey(pubkeyBytes)
	if err != nil {
		return 0, clvmerr.New(clvmerr.KindArgType, "invalid secp256k1 public key")
	}
	var r, s secp256k1.ModNScalar
	r.SetByteSlice(sigBytes[:32])
	s.SetByteSlice(sigBytes[32:])
	sig := dcrdecdsa.NewSignature(&r, &s)
	if !sig.Verify(hash, pubkey) {
		return 0, clvmerr.New(clvmerr.KindArgOutOfRange, "secp256k1 signature verification failed")
	}
	return ctx.A.Nil(), nil
}

// Secp256r1Verify implements `secp256r1_verify`: (pubkey message_hash
// signature) -> NIL on a valid signature; a signature that does not verify
// fails with ARG_OUT_OF_RANGE. pubkey is a 65-byte uncompressed NIST P-256 point, signature is 64 raw bytes (r ||
// s).
func Secp256r1Verify(ctx *opctx.Context) (allocator.Ptr, error) {
	args, err := listToSlice(ctx.A, ctx.Args)
	if err != nil {
		return 0, err
	}
	if err := requireArgCount(args, 3); err != nil {
		return 0, err
	}
	pubkeyBytes, err := atomArg(ctx.A, args[0])
	if err != nil {
		return 0, err
	}
	hash, err := atomArg(ctx.A, args[1])
	if err != nil {
		return 0, err
	}
	sigBytes, err := atomArg(ctx.A, args[2])
	if err != nil {
		return 0, err
	}
	if err := ctx.Cost.Charge(Secp256r1VerifyCost); err != nil {
		return 0, err
	}
	if len(sigBytes) != 64 {
		return 0, clvmerr.New(clvmerr.KindArgType, "secp256r1 signature must be 64 bytes")
	}
	curve := elliptic.P256()
	x, y := elliptic.Unmarshal(curve, pubkeyBytes)
	if x == nil {
		return 0, clvmerr.New(clvmerr.KindArgType, "invalid secp256r1 public key")
	}
	pub := &ecdsa.PublicKey{Curve: curve, X: x, Y: y}
	r := new(big.Int).SetBytes(sigBytes[:32])
	s := new(big.Int).SetBytes(sigBytes[32:])
	if !ecdsa.Verify(pub, hash, r, s) {
		return 0, clvmerr.New(clvmerr.KindArgOutOfRange, "secp256r1 signature verification failed")
	}
	return ctx.A.Nil(), nil
}
