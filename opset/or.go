package opset

// Or returns a Set that matches iff any given Set matches.
func Or(sets ...Set) Set {
	l := make([]Set, len(sets))
	copy(l, sets)
	return &setUnion{list: l}
}

type setUnion struct {
	list []Set
}

var _ Set = (*setUnion)(nil)

func (m *setUnion) Contains(op byte) bool {
	for _, sub := range m.list {
		if sub.Contains(op) {
			return true
		}
	}
	return false
}

func (m *setUnion) ForEach(f func(op byte)) {
	asDense(m).ForEach(f)
}

func (m *setUnion) Optimize() Set {
	if len(m.list) == 0 {
		return None()
	}
	if len(m.list) == 1 {
		return m.list[0].Optimize()
	}
	return asDense(m).Optimize()
}

func (m *setUnion) String() string { return genericString(m) }
