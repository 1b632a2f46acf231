package opset

// All returns a Set that matches every possible opcode value.
func All() Set { return singletonAll }

type setAll struct{}

var _ Set = (*setAll)(nil)
var singletonAll = &setAll{}

func (m *setAll) Contains(op byte) bool    { return true }
func (m *setAll) ForEach(f func(op byte))  { genericForEach(m, f) }
func (m *setAll) Optimize() Set            { return singletonAll }
func (m *setAll) String() string           { return "*" }
