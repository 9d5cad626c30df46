// Package gear provides definitions and loaders for the weapons and armor
// fighters bring into the pit. Defs are static content loaded from YAML;
// BuildLoadout folds an equipped pair into the modifier bundle the fight
// engine consumes.
package gear

import (
	"errors"
	"fmt"

	"github.com/ironmark-games/ironmark/internal/game/effect"
)

// WeaponDef defines the static properties of a weapon loaded from YAML.
type WeaponDef struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	DamageMin int    `yaml:"damage_min"`
	DamageMax int    `yaml:"damage_max"`

	// StaminaLight and StaminaHeavy are the full stamina costs of light and
	// heavy attacks made with this weapon.
	StaminaLight int `yaml:"stamina_light"`
	StaminaHeavy int `yaml:"stamina_heavy"`

	// ProcEffect names a status effect rolled at ProcChance on every
	// successful hit, applied for ProcTurns. Empty = no proc.
	ProcEffect string  `yaml:"proc_effect"`
	ProcChance float64 `yaml:"proc_chance"`
	ProcTurns  int     `yaml:"proc_turns"`

	Traits []string `yaml:"traits"`
}

// AttackBonus returns the flat attack rating this weapon contributes,
// the midpoint of its damage range.
func (w *WeaponDef) AttackBonus() int {
	return (w.DamageMin + w.DamageMax) / 2
}

// HasProc reports whether the weapon carries an on-hit status proc.
func (w *WeaponDef) HasProc() bool {
	return w.ProcEffect != ""
}

// Validate checks that the WeaponDef satisfies its invariants.
// Precondition: w is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (w *WeaponDef) Validate() error {
	var errs []error
	if w.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if w.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if w.DamageMin < 1 {
		errs = append(errs, errors.New("DamageMin must be >= 1"))
	}
	if w.DamageMax < w.DamageMin {
		errs = append(errs, errors.New("DamageMax must be >= DamageMin"))
	}
	if w.StaminaLight < 1 {
		errs = append(errs, errors.New("StaminaLight must be >= 1"))
	}
	if w.StaminaHeavy <= w.StaminaLight {
		errs = append(errs, errors.New("StaminaHeavy must be > StaminaLight"))
	}
	if w.HasProc() {
		if _, ok := effect.ParseKind(w.ProcEffect); !ok {
			errs = append(errs, fmt.Errorf("ProcEffect %q is not a known effect", w.ProcEffect))
		}
		if w.ProcChance <= 0 || w.ProcChance > 1 {
			errs = append(errs, errors.New("ProcChance must be in (0, 1]"))
		}
		if w.ProcTurns < 1 {
			errs = append(errs, errors.New("ProcTurns must be >= 1"))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("weapon validation failed: %v", errs)
	}
	return nil
}
