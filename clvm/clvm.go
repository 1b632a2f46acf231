// Package clvm assembles the allocator, serializer, and interpreter
// packages into the external interface of spec.md §6: run_program,
// serialized_length, serialize/deserialize, and tree_hash over plain wire
// bytes rather than in-memory handles.
//
// Grounded on how peggyvm's own top-level package wires its Grammar,
// Execution, and Program types together behind a handful of entry points;
// generalized here from "parse and execute a PEG" to "deserialize, run,
// and reserialize a CLVM program."
package clvm

import (
	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/flags"
	"github.com/chia-network/clvm-go/interpreter"
	"github.com/chia-network/clvm-go/ops"
	"github.com/chia-network/clvm-go/serialize"
	"github.com/chia-network/clvm-go/treehash"
)

// Flags re-exports flags.Flags so callers need only import this package
// for the run_program signature of spec.md §6.
type Flags = flags.Flags

const (
	NoNegDiv     = flags.NoNegDiv
	NoUnknownOps = flags.NoUnknownOps
	LimitHeap    = flags.LimitHeap
)

// RunProgram implements spec.md §6's run_program(program, environment,
// max_cost, flags) -> (cost, result_tree): deserialize both inputs into a
// fresh allocator, evaluate program against environment under max_cost and
// flags using the default operator dialect, and reserialize whatever
// result_tree the interpreter produces. Program and environment are each
// decoded in plain (uncompressed) form; a program that wants to reference
// repeated structure uses `c`/backref-compressed env bytes at the
// deserialize layer, not at this entry point.
func RunProgram(program, environment []byte, maxCost uint64, fl Flags) (cost uint64, result []byte, err error) {
	var a *allocator.Allocator
	if fl.Has(flags.LimitHeap) {
		a = allocator.NewLimited()
	} else {
		a = allocator.NewDefault()
	}

	programPtr, err := serialize.Deserialize(a, program, 0)
	if err != nil {
		return 0, nil, err
	}
	envPtr, err := serialize.Deserialize(a, environment, 0)
	if err != nil {
		return 0, nil, err
	}

	m := interpreter.New(a, ops.Default(), fl)
	cost, resultPtr, err := m.Eval(a, programPtr, envPtr, maxCost, fl)
	if err != nil {
		return cost, nil, err
	}

	result, err = serialize.Serialize(a, resultPtr, 0)
	if err != nil {
		return cost, nil, err
	}
	return cost, result, nil
}

// SerializedLength implements spec.md §6's serialized_length(bytes) -> u64:
// the plain-form wire length of the single node encoded at the start of
// data, without constructing it.
func SerializedLength(data []byte) (uint64, error) {
	return serialize.SerializedLength(data)
}

// Deserialize decodes plain-form wire bytes into a tree rooted in a, per
// spec.md §4.3.
func Deserialize(a *allocator.Allocator, data []byte) (allocator.Ptr, error) {
	return serialize.Deserialize(a, data, 0)
}

// DeserializeCompressed decodes wire bytes that may contain 0xFE
// back-reference tokens into a tree rooted in a, per spec.md §4.3.
func DeserializeCompressed(a *allocator.Allocator, data []byte) (allocator.Ptr, error) {
	return serialize.DeserializeCompressed(a, data, 0)
}

// Serialize encodes p in plain form.
func Serialize(a *allocator.Allocator, p allocator.Ptr) ([]byte, error) {
	return serialize.Serialize(a, p, 0)
}

// SerializeCompressed encodes p using 0xFE back-references wherever doing
// so is strictly shorter than repeating the referenced subtree's plain
// encoding.
func SerializeCompressed(a *allocator.Allocator, p allocator.Ptr) ([]byte, error) {
	return serialize.SerializeCompressed(a, p, 0)
}

// TreeHash implements spec.md §6's tree_hash(node) -> 32 bytes.
func TreeHash(a *allocator.Allocator, p allocator.Ptr) treehash.Hash {
	return treehash.TreeHash(a, p, nil)
}
