// Package cost implements the charge-before-work cost meter described in
// spec.md §4.2: every operator and traversal step charges its cost before
// doing the corresponding work, and the meter fails fast the instant the
// running total would exceed its ceiling, so no single step can overshoot
// max_cost by more than that step's own cost.
//
// Grounded on peggyvm/execution.go's step-budget counter, generalized from
// a fixed per-step decrement to an arbitrary per-charge amount with an
// explicit ceiling.
package cost

import "github.com/chia-network/clvm-go/clvmerr"

// Meter tracks cost consumed against a fixed ceiling.
type Meter struct {
	running uint64
	max     uint64
}

// New returns a Meter with the given ceiling. A max of 0 means unlimited.
func New(max uint64) *Meter {
	return &Meter{max: max}
}

// Charge adds delta to the running total, failing with
// clvmerr.KindCostExceeded (and leaving the running total unchanged) if
// doing so would exceed the ceiling. Call this before performing the work
// the charge accounts for.
func (m *Meter) Charge(delta uint64) error {
	if m.max != 0 {
		if delta > m.max-m.running {
			return clvmerr.New(clvmerr.KindCostExceeded, "cost exceeded max_cost")
		}
	}
	m.running += delta
	return nil
}

// Running returns the total cost charged so far.
func (m *Meter) Running() uint64 { return m.running }

// Max returns the configured ceiling, or 0 if unlimited.
func (m *Meter) Max() uint64 { return m.max }

// Remaining returns how much cost may still be charged before the ceiling
// is hit. Returns the maximum uint64 value if the meter is unlimited.
func (m *Meter) Remaining() uint64 {
	if m.max == 0 {
		return ^uint64(0)
	}
	return m.max - m.running
}
