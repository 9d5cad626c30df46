package wound

import (
	"errors"
	"fmt"
)

// EffectType is the closed set of numeric effects a wound can carry.
type EffectType int

const (
	// DamagePenalty reduces outgoing damage by Amount.
	DamagePenalty EffectType = iota
	// DefensePenalty reduces effective defense by Amount.
	DefensePenalty
	// StaminaPenalty reduces stamina regeneration by Amount.
	StaminaPenalty
	// SpeedPenalty reduces speed by Amount.
	SpeedPenalty
	// AccuracyPenalty reduces the accuracy rating by Amount.
	AccuracyPenalty
	// BleedDOT deals Amount damage at each turn end.
	BleedDOT
	// StunChance adds Amount percent to the chance of being stunned.
	StunChance
	// FocusPenalty reduces focus gains by Amount.
	FocusPenalty
)

// String returns the snake_case label for the effect type.
func (t EffectType) String() string {
	switch t {
	case DamagePenalty:
		return "damage_penalty"
	case DefensePenalty:
		return "defense_penalty"
	case StaminaPenalty:
		return "stamina_penalty"
	case SpeedPenalty:
		return "speed_penalty"
	case AccuracyPenalty:
		return "accuracy_penalty"
	case BleedDOT:
		return "bleed_dot"
	case StunChance:
		return "stun_chance"
	case FocusPenalty:
		return "focus_penalty"
	default:
		return "unknown"
	}
}

// Valid reports whether t is a defined effect type.
func (t EffectType) Valid() bool {
	return t >= DamagePenalty && t <= FocusPenalty
}

// ParseEffectType returns the EffectType named by label, or false if the
// label is unknown.
func ParseEffectType(label string) (EffectType, bool) {
	switch label {
	case "damage_penalty":
		return DamagePenalty, true
	case "defense_penalty":
		return DefensePenalty, true
	case "stamina_penalty":
		return StaminaPenalty, true
	case "speed_penalty":
		return SpeedPenalty, true
	case "accuracy_penalty":
		return AccuracyPenalty, true
	case "bleed_dot":
		return BleedDOT, true
	case "stun_chance":
		return StunChance, true
	case "focus_penalty":
		return FocusPenalty, true
	default:
		return 0, false
	}
}

// Effect is one typed numeric effect of a wound.
type Effect struct {
	Type   EffectType
	Amount int
}

// Template is an immutable wound definition from the catalog. Instances
// appended to a combatant are never removed mid-fight.
type Template struct {
	ID       string
	Name     string
	Severity Severity
	Effects  []Effect
}

// Validate checks that the Template satisfies its invariants.
// Precondition: t is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (t *Template) Validate() error {
	var errs []error
	if t.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if t.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if !t.Severity.Valid() {
		errs = append(errs, fmt.Errorf("severity %d is not defined", t.Severity))
	}
	if len(t.Effects) == 0 {
		errs = append(errs, errors.New("at least one effect is required"))
	}
	for _, e := range t.Effects {
		if !e.Type.Valid() {
			errs = append(errs, fmt.Errorf("effect type %d is not defined", e.Type))
		}
		if e.Amount < 1 {
			errs = append(errs, fmt.Errorf("effect %s amount must be >= 1, got %d", e.Type, e.Amount))
		}
		if e.Type == StunChance && e.Amount > 100 {
			errs = append(errs, fmt.Errorf("stun_chance amount must be <= 100, got %d", e.Amount))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("wound validation failed: %v", errs)
	}
	return nil
}

// Sum returns the additive total of every Amount of the given type across
// wounds. Queried on demand by the fight engine; wounds are never folded
// into the stat snapshot.
func Sum(wounds []*Template, et EffectType) int {
	total := 0
	for _, w := range wounds {
		for _, e := range w.Effects {
			if e.Type == et {
				total += e.Amount
			}
		}
	}
	return total
}
