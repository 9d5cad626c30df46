package combat

const (
	// MomentumMax is the ceiling of the momentum point economy.
	MomentumMax = 100
	// MomentumPerStack is how many points one formula stack represents.
	MomentumPerStack = 20
	// MomentumMaxStacks is the highest stack count formulas consult.
	MomentumMaxStacks = MomentumMax / MomentumPerStack
)

// Momentum is a combatant's advantage meter. Points are the single source
// of truth; the 0–5 stack view consumed by the hit/damage/crit formulas is
// derived, never stored.
//
// Invariant: points stays within [0, MomentumMax].
type Momentum struct {
	points int
}

// Points returns the current momentum points.
func (m *Momentum) Points() int { return m.points }

// Stacks returns the derived formula stacks, points / MomentumPerStack.
//
// Postcondition: Returns a value in [0, MomentumMaxStacks].
func (m *Momentum) Stacks() int { return m.points / MomentumPerStack }

// GainStacks raises momentum by n stacks' worth of points, capped at
// MomentumMax.
// Precondition: n >= 0.
func (m *Momentum) GainStacks(n int) {
	m.points += n * MomentumPerStack
	if m.points > MomentumMax {
		m.points = MomentumMax
	}
}

// DropStacks lowers momentum by n stacks' worth of points, floored at 0.
// Precondition: n >= 0.
func (m *Momentum) DropStacks(n int) {
	m.points -= n * MomentumPerStack
	if m.points < 0 {
		m.points = 0
	}
}

// Spend removes points from the meter for a burst action.
//
// Postcondition: Returns true and deducts iff points >= cost; the meter is
// unchanged on false.
func (m *Momentum) Spend(cost int) bool {
	if cost < 0 || cost > m.points {
		return false
	}
	m.points -= cost
	return true
}

// Reset clears the meter to zero.
func (m *Momentum) Reset() { m.points = 0 }
