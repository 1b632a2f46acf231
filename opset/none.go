package opset

// None returns a Set that matches no opcode at all — the dialect's "always
// unknown" baseline before any opcodes are registered.
func None() Set { return singletonNone }

type setNone struct{}

var _ Set = (*setNone)(nil)
var singletonNone = &setNone{}

func (m *setNone) Contains(op byte) bool   { return false }
func (m *setNone) ForEach(f func(op byte)) {}
func (m *setNone) Optimize() Set           { return singletonNone }
func (m *setNone) String() string          { return "!*" }
