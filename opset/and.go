package opset

// And returns a Set that matches iff every given Set matches.
func And(sets ...Set) Set {
	l := make([]Set, len(sets))
	copy(l, sets)
	return &setIntersection{list: l}
}

type setIntersection struct {
	list []Set
}

var _ Set = (*setIntersection)(nil)

func (m *setIntersection) Contains(op byte) bool {
	for _, sub := range m.list {
		if !sub.Contains(op) {
			return false
		}
	}
	return true
}

func (m *setIntersection) ForEach(f func(op byte)) {
	if len(m.list) == 0 {
		forEachByte(0, 255, f)
		return
	}
	first := m.list[0]
	rest := m.list[1:]
	first.ForEach(func(op byte) {
		for _, sub := range rest {
			if !sub.Contains(op) {
				return
			}
		}
		f(op)
	})
}

func (m *setIntersection) Optimize() Set {
	if len(m.list) == 0 {
		return All()
	}
	if len(m.list) == 1 {
		return m.list[0].Optimize()
	}
	return asDense(m).Optimize()
}

func (m *setIntersection) String() string { return genericString(m) }
