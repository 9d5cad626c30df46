package combat

import (
	"math"

	"github.com/ironmark-games/ironmark/internal/game/effect"
	"github.com/ironmark-games/ironmark/internal/game/fighter"
	"github.com/ironmark-games/ironmark/internal/game/wound"
)

// Combatant is the mutable per-fight state of one participant. It is built
// at fight init from a stat snapshot and a loadout, mutated by every action
// and turn end, and discarded when the fight ends.
type Combatant struct {
	Side Side

	// Snapshot is the stat bundle with the loadout's flat bonuses folded
	// in. Never mutated after init.
	Snapshot fighter.Snapshot
	Loadout  fighter.Loadout

	CurrentHP      int
	CurrentStamina int
	CurrentFocus   int

	// LowestHP tracks the lowest HP ever reached, for wound thresholds.
	LowestHP int

	// InjuryMeter accumulates toward post-fight injury odds, 0–100.
	InjuryMeter float64

	Effects *effect.Set

	GuardActive       bool
	GuardZone         Zone
	ConsecutiveGuards int

	Momentum   Momentum
	Posture    Posture
	ArmorBreak ArmorBreak

	// LastAction is the kind the combatant last executed; ActionNone when
	// the previous call was rejected or skipped.
	LastAction ActionKind

	// Wounds accumulate permanently for the rest of the fight.
	Wounds []*wound.Template

	crossed map[int]bool

	SignatureUses  int
	PerfectParries int
}

// newCombatant builds the fight-start state for one side.
//
// Precondition: snap validates.
// Postcondition: HP, stamina, and posture sit at their maxima; focus starts
// empty and builds through the fight; LowestHP == MaxHP.
func newCombatant(side Side, snap fighter.Snapshot, lo fighter.Loadout) *Combatant {
	effective := lo.Apply(snap)
	return &Combatant{
		Side:           side,
		Snapshot:       effective,
		Loadout:        lo,
		CurrentHP:      effective.MaxHP,
		CurrentStamina: effective.MaxStamina,
		LowestHP:       effective.MaxHP,
		Effects:        effect.NewSet(),
		Posture:        NewPosture(DefaultMaxPosture),
		crossed:        make(map[int]bool),
	}
}

// Name returns the fighter's display name.
func (c *Combatant) Name() string { return c.Snapshot.Name }

// Alive reports whether the combatant still has HP.
func (c *Combatant) Alive() bool { return c.CurrentHP > 0 }

// HPFraction returns current HP as a fraction of max.
//
// Postcondition: Returns a value in [0, 1].
func (c *Combatant) HPFraction() float64 {
	return float64(c.CurrentHP) / float64(c.Snapshot.MaxHP)
}

// ApplyDamage reduces HP by amount, flooring at zero, and keeps the
// lowest-HP tracker current.
// Precondition: amount >= 0.
func (c *Combatant) ApplyDamage(amount int) {
	c.CurrentHP -= amount
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
	if c.CurrentHP < c.LowestHP {
		c.LowestHP = c.CurrentHP
	}
}

// Heal restores HP, capped at max.
// Precondition: amount >= 0.
func (c *Combatant) Heal(amount int) {
	c.CurrentHP += amount
	if c.CurrentHP > c.Snapshot.MaxHP {
		c.CurrentHP = c.Snapshot.MaxHP
	}
}

// GainFocus credits focus after folding the active-effect gain factor and
// the flat wound focus penalty, capped at max.
//
// Precondition: base >= 0.
// Postcondition: Returns the focus actually gained, >= 0.
func (c *Combatant) GainFocus(base int) int {
	adjusted := int(math.Round(float64(base) * effect.FocusGainFactor(c.Effects)))
	adjusted -= wound.Sum(c.Wounds, wound.FocusPenalty)
	if adjusted < 0 {
		adjusted = 0
	}
	before := c.CurrentFocus
	c.CurrentFocus += adjusted
	if c.CurrentFocus > c.Snapshot.MaxFocus {
		c.CurrentFocus = c.Snapshot.MaxFocus
	}
	return c.CurrentFocus - before
}

// SpendStamina deducts amount, flooring at zero.
// Precondition: amount >= 0.
func (c *Combatant) SpendStamina(amount int) {
	c.CurrentStamina -= amount
	if c.CurrentStamina < 0 {
		c.CurrentStamina = 0
	}
}

// RegainStamina restores stamina, capped at max.
// Precondition: amount >= 0.
func (c *Combatant) RegainStamina(amount int) {
	c.CurrentStamina += amount
	if c.CurrentStamina > c.Snapshot.MaxStamina {
		c.CurrentStamina = c.Snapshot.MaxStamina
	}
}

// EffectiveAttack returns the attack rating after wound damage penalties,
// floored at 1.
func (c *Combatant) EffectiveAttack() int {
	atk := c.Snapshot.Attack - wound.Sum(c.Wounds, wound.DamagePenalty)
	if atk < 1 {
		atk = 1
	}
	return atk
}

// EffectiveDefense returns the defense rating after wound penalties and
// armor erosion, floored at zero.
func (c *Combatant) EffectiveDefense() int {
	def := c.Snapshot.Defense - wound.Sum(c.Wounds, wound.DefensePenalty)
	if def < 0 {
		def = 0
	}
	return int(math.Round(float64(def) * c.ArmorBreak.DefenseFactor()))
}

// EffectiveAccuracy returns the accuracy rating after wound penalties,
// floored at zero. Status-effect shifts are folded by the resolver as
// fractions, not here.
func (c *Combatant) EffectiveAccuracy() int {
	acc := c.Snapshot.Accuracy - wound.Sum(c.Wounds, wound.AccuracyPenalty)
	if acc < 0 {
		acc = 0
	}
	return acc
}

// EffectiveSpeed returns the speed rating after wound penalties, floored
// at zero.
func (c *Combatant) EffectiveSpeed() int {
	spd := c.Snapshot.Speed - wound.Sum(c.Wounds, wound.SpeedPenalty)
	if spd < 0 {
		spd = 0
	}
	return spd
}

// CrossedThreshold reports whether the wound threshold at pct has already
// fired for this combatant.
func (c *Combatant) CrossedThreshold(pct int) bool {
	return c.crossed[pct]
}

func (c *Combatant) markThreshold(pct int) {
	c.crossed[pct] = true
}

// clearGuard drops the guard stance and its consecutive-guard counter.
func (c *Combatant) clearGuard() {
	c.GuardActive = false
	c.ConsecutiveGuards = 0
}
