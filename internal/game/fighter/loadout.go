package fighter

import "github.com/ironmark-games/ironmark/internal/game/effect"

// Loadout carries the equipment-derived modifiers a fighter brings into a
// fight. The roster layer builds one from the fighter's equipped gear; a
// zero-value Loadout means bare-handed and unarmored.
type Loadout struct {
	WeaponName string
	ArmorName  string

	// AttackBonus and DefenseBonus are flat stat adjustments folded into
	// the snapshot at fight start.
	AttackBonus  int
	DefenseBonus int

	// StaminaLight and StaminaHeavy, when > 0, replace the baseline stamina
	// costs of light and heavy attacks with the equipped weapon's own.
	StaminaLight int
	StaminaHeavy int

	// StaminaCostDelta is added to the cost of every stamina-costing action.
	// Light gear drives it negative, heavy gear positive.
	StaminaCostDelta int

	// Resistances maps effect kinds to a [0, 1] fraction subtracted from the
	// chance of that effect being applied to the wearer. 1 = immune.
	Resistances map[effect.Kind]float64

	// ProcEffect, when not effect.None, is rolled at ProcChance on every
	// successful weapon hit and applied to the target for ProcTurns.
	ProcEffect effect.Kind
	ProcChance float64
	ProcTurns  int
}

// Apply folds the loadout's flat bonuses into a copy of snap.
//
// Postcondition: The returned snapshot's Attack and Defense are adjusted by
// the loadout's bonuses, floored at 1 and 0 respectively; snap is unchanged.
func (l Loadout) Apply(snap Snapshot) Snapshot {
	out := snap
	out.Attack += l.AttackBonus
	if out.Attack < 1 {
		out.Attack = 1
	}
	out.Defense += l.DefenseBonus
	if out.Defense < 0 {
		out.Defense = 0
	}
	return out
}

// Resistance returns the wearer's resistance fraction against kind, or 0
// when none is equipped.
//
// Postcondition: Returns a value clamped to [0, 1].
func (l Loadout) Resistance(kind effect.Kind) float64 {
	r := l.Resistances[kind]
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
