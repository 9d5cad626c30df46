package combat

const (
	// ArmorBreakMaxStacks caps armor erosion.
	ArmorBreakMaxStacks = 10
	// armorBreakPerStack is the defense fraction each stack removes.
	armorBreakPerStack = 0.05
)

// ArmorBreak is the stacking, decaying defense-reduction counter. Heavy
// blows add stacks; one stack decays each round.
//
// Invariant: stacks stays within [0, ArmorBreakMaxStacks].
type ArmorBreak struct {
	stacks int
}

// Stacks returns the current stack count.
func (a *ArmorBreak) Stacks() int { return a.stacks }

// Add raises the counter by n stacks, capped at ArmorBreakMaxStacks.
// Precondition: n >= 0.
func (a *ArmorBreak) Add(n int) {
	a.stacks += n
	if a.stacks > ArmorBreakMaxStacks {
		a.stacks = ArmorBreakMaxStacks
	}
}

// Decay removes one stack, floored at zero. Called once per round.
func (a *ArmorBreak) Decay() {
	if a.stacks > 0 {
		a.stacks--
	}
}

// DefenseFactor returns the multiplier applied to effective defense,
// 1 − 0.05 × stacks.
//
// Postcondition: Returns a value in [0.5, 1.0].
func (a *ArmorBreak) DefenseFactor() float64 {
	return 1 - armorBreakPerStack*float64(a.stacks)
}
