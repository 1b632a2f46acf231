package opset

// Not returns a Set that inverts the given Set.
func Not(s Set) Set {
	return &setNegation{inner: s}
}

type setNegation struct {
	inner Set
}

var _ Set = (*setNegation)(nil)

func (m *setNegation) Contains(op byte) bool { return !m.inner.Contains(op) }
func (m *setNegation) ForEach(f func(op byte)) { genericForEach(m, f) }

func (m *setNegation) Optimize() Set {
	m.inner = m.inner.Optimize()
	switch sub := m.inner.(type) {
	case *setAll:
		return None()
	case *setNone:
		return All()
	case *setNegation:
		return sub.inner
	case *setDense:
		mm := &setDense{}
		for i := range sub.bits {
			mm.bits[i] = ^sub.bits[i]
		}
		return mm
	default:
		return m
	}
}

func (m *setNegation) String() string { return "!" + m.inner.String() }
