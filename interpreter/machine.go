// Package interpreter implements the stack-based evaluator of spec.md
// §4.6: eval/apply over a CLVM tree, metering cost and bounding native
// stack depth independent of program depth via an explicit control stack.
//
// Grounded on peggyvm's Execution/Step design (execution.go): a struct
// holding an explicit frame stack (CS) and a Step method that processes
// exactly one frame per call, generalized here from a backtracking parser
// to an eval/apply continuation machine, and from "until EOF" to "until
// the control stack empties."
package interpreter

import (
	"math/big"

	"github.com/chia-network/clvm-go/allocator"
	"github.com/chia-network/clvm-go/clvmerr"
	"github.com/chia-network/clvm-go/cost"
	"github.com/chia-network/clvm-go/dialect"
	"github.com/chia-network/clvm-go/flags"
	"github.com/chia-network/clvm-go/opctx"
	"github.com/chia-network/clvm-go/ops"
)

const (
	opcodeQuote dialect.Opcode = 1
	opcodeApply dialect.Opcode = 2

	quoteCost = 20
	applyCost = 90
)

// Machine drives one evaluation: one allocator, one dialect, one cost
// meter, one control stack. It implements opctx.Evaluator so operators
// (softfork) can recurse into a fresh nested evaluation sharing the same
// allocator and dialect.
type Machine struct {
	dialect *dialect.Table
	flags   flags.Flags

	a          *allocator.Allocator
	meter      *cost.Meter
	control    []frame
	values     []allocator.Ptr
	preEval    PreEvalHook
	postEval   PostEvalHook
}

// PreEvalHook is called before a node is evaluated. Returning an error
// aborts the whole evaluation with that error.
type PreEvalHook func(a *allocator.Allocator, node, env allocator.Ptr) error

// PostEvalHook is called after a node's result is known. Returning an
// error aborts the whole evaluation with that error; neither hook may
// otherwise influence cost or the result.
type PostEvalHook func(a *allocator.Allocator, node, env, result allocator.Ptr) error

// New builds a Machine over an existing allocator and dialect table. The
// same *allocator.Allocator is expected to be reused across nested
// softfork evaluations; the dialect table is immutable and may be shared
// freely.
func New(a *allocator.Allocator, d *dialect.Table, fl flags.Flags) *Machine {
	return &Machine{dialect: d, flags: fl, a: a}
}

// WithHooks attaches pre/post evaluation hooks (spec.md §4.6's
// feature-gated hook capability) and returns the same Machine for
// chaining.
func (m *Machine) WithHooks(pre PreEvalHook, post PostEvalHook) *Machine {
	m.preEval = pre
	m.postEval = post
	return m
}

// Eval runs program against env under maxCost and flags, implementing
// opctx.Evaluator. Each call gets its own control/value stacks and cost
// meter, so nested softfork evaluations never share mutable evaluation
// state with their parent — only the allocator (and its rollback
// discipline) is shared.
func (m *Machine) Eval(a *allocator.Allocator, program, env allocator.Ptr, maxCost uint64, fl flags.Flags) (uint64, allocator.Ptr, error) {
	nested := &Machine{dialect: m.dialect, flags: fl, a: a, preEval: m.preEval, postEval: m.postEval}
	result, err := nested.run(program, env, maxCost)
	return nested.meter.Running(), result, err
}

func (m *Machine) run(program, env allocator.Ptr, maxCost uint64) (allocator.Ptr, error) {
	m.meter = cost.New(maxCost)
	m.control = []frame{{kind: frameEval, node: program, env: env}}
	m.values = nil

	for len(m.control) > 0 {
		f := m.control[len(m.control)-1]
		m.control = m.control[:len(m.control)-1]

		var err error
		if f.kind == frameEval {
			err = m.stepEval(f.node, f.env)
		} else {
			err = m.stepApply(f.node, f.env, f.opBytes, f.argCount)
		}
		if err != nil {
			return 0, err
		}
	}

	if len(m.values) != 1 {
		return 0, clvmerr.New(clvmerr.KindInternal, "evaluation did not leave exactly one result")
	}
	return m.values[0], nil
}

func (m *Machine) pushValue(p allocator.Ptr) { m.values = append(m.values, p) }

// stepEval processes one frameEval entry. A leaf atom resolves
// immediately via an environment-path lookup. A pair whose operator is
// quote also resolves immediately. Anything else schedules further
// frames (one per operand, then an Apply frame) rather than recursing
// natively, so post-eval hooks only ever fire for completed leaves and
// quotes directly from here; the eventual operator application fires its
// own post-eval notionally through the Apply frame's result (see
// stepApply).
func (m *Machine) stepEval(node, env allocator.Ptr) error {
	if m.preEval != nil {
		if err := m.preEval(m.a, node, env); err != nil {
			return err
		}
	}

	if atomBytes, ok := m.a.Atom(node); ok {
		pathBits := new(big.Int).SetBytes(atomBytes).BitLen() - 1
		if pathBits < 0 {
			pathBits = 0
		}
		if err := m.meter.Charge(traverseCost(pathBits)); err != nil {
			return err
		}
		_, result, err := traverse(m.a, atomBytes, env)
		if err != nil {
			return err
		}
		return m.finishEval(node, env, result)
	}

	opNode, argsNode, _ := m.a.Pair(node)
	opBytes, ok := m.a.Atom(opNode)
	if !ok {
		return clvmerr.New(clvmerr.KindArgType, "operator position must be an atom")
	}

	opValue := new(big.Int).SetBytes(opBytes)
	if opValue.Sign() >= 0 && opValue.IsInt64() && dialect.Opcode(opValue.Int64()) == opcodeQuote {
		if err := m.meter.Charge(quoteCost); err != nil {
			return err
		}
		return m.finishEval(node, env, argsNode)
	}

	operands, err := rawList(m.a, argsNode)
	if err != nil {
		return err
	}

	// Schedule: an Apply frame underneath, then one Eval frame per
	// operand pushed in reverse order so the leftmost operand ends up on
	// top of the control stack and is therefore evaluated first.
	m.control = append(m.control, frame{kind: frameApply, node: node, env: env, opBytes: opBytes, argCount: len(operands)})
	for i := len(operands) - 1; i >= 0; i-- {
		m.control = append(m.control, frame{kind: frameEval, node: operands[i], env: env})
	}
	return nil
}

// finishEval pushes result as the outcome of evaluating node in env, and
// runs the post-eval hook when one is attached.
func (m *Machine) finishEval(node, env, result allocator.Ptr) error {
	if m.postEval != nil {
		if err := m.postEval(m.a, node, env, result); err != nil {
			return err
		}
	}
	m.pushValue(result)
	return nil
}

func (m *Machine) stepApply(node, env allocator.Ptr, opBytes []byte, argCount int) error {
	args := m.values[len(m.values)-argCount:]
	m.values = m.values[:len(m.values)-argCount]

	opValue := new(big.Int).SetBytes(opBytes)
	if opValue.Sign() < 0 || !opValue.IsInt64() {
		return m.dispatch(node, env, ops.Unknown(opBytes), args)
	}
	opcode := dialect.Opcode(opValue.Int64())

	if opcode == opcodeApply {
		if len(args) != 2 {
			return clvmerr.New(clvmerr.KindArgCount, "apply requires exactly 2 arguments")
		}
		if err := m.meter.Charge(applyCost); err != nil {
			return err
		}
		// Tail call: replace what would have been a nested Eval with a
		// single new frame, so repeated apply never grows the stack. Its
		// own post-eval hook (if any) fires when that frame completes,
		// not here.
		m.control = append(m.control, frame{kind: frameEval, node: args[0], env: args[1]})
		return nil
	}

	entry, found := m.dialect.Lookup(opcode)
	if !found {
		return m.dispatch(node, env, ops.Unknown(opBytes), args)
	}
	return m.dispatch(node, env, entry.Handler, args)
}

func (m *Machine) dispatch(node, env allocator.Ptr, h opctx.Handler, args []allocator.Ptr) error {
	argsList, err := foldList(m.a, args)
	if err != nil {
		return err
	}
	ctx := &opctx.Context{A: m.a, Args: argsList, Cost: m.meter, Flags: m.flags, Eval: m}
	result, err := h(ctx)
	if err != nil {
		return err
	}
	return m.finishEval(node, env, result)
}

// rawList walks a NIL-terminated cons-list of unevaluated operand nodes
// into a slice, without evaluating anything. The walk is a plain loop
// bounded by list length, not native recursion, so it cannot overflow the
// host stack regardless of argument count.
func rawList(a *allocator.Allocator, list allocator.Ptr) ([]allocator.Ptr, error) {
	var out []allocator.Ptr
	cur := list
	for {
		if b, ok := a.Atom(cur); ok {
			if len(b) != 0 {
				return nil, clvmerr.New(clvmerr.KindArgType, "argument list not NIL-terminated")
			}
			return out, nil
		}
		left, right, _ := a.Pair(cur)
		out = append(out, left)
		cur = right
	}
}

// foldList builds a NIL-terminated cons-list from already-evaluated
// operand handles, right to left.
func foldList(a *allocator.Allocator, items []allocator.Ptr) (allocator.Ptr, error) {
	cur := a.Nil()
	for i := len(items) - 1; i >= 0; i-- {
		p, err := a.NewPair(items[i], cur)
		if err != nil {
			return 0, err
		}
		cur = p
	}
	return cur, nil
}
