// Package fighter defines the immutable stat snapshot the fight engine
// consumes. Snapshots are produced by the roster/progression layer; the
// engine never mutates one.
package fighter

import "fmt"

// Snapshot is the per-fighter numeric stat bundle taken at fight start.
// All derived fight state (current HP, stamina, focus) lives on the combat
// side; a Snapshot only carries maxima and rating stats.
type Snapshot struct {
	Name string

	MaxHP      int
	MaxStamina int
	MaxFocus   int

	Attack   int
	Defense  int
	Speed    int
	Accuracy int // 0–100 rating; 100 ≈ always hits with a neutral action
	Evasion  int // 0–100 rating; consulted after a dodge

	CritChance int // percent chance before zone/momentum bonuses
	CritDamage int // percent multiplier, e.g. 150 = ×1.5
}

// Validate checks that the snapshot satisfies basic invariants.
//
// Postcondition: Returns nil iff MaxHP, MaxStamina, and Attack are >= 1 and
// all percent-range stats are within [0, 100] (CritDamage within [100, 500]);
// returns an error naming the first violation otherwise.
func (s Snapshot) Validate() error {
	if s.MaxHP < 1 {
		return fmt.Errorf("fighter %q: max hp must be >= 1", s.Name)
	}
	if s.MaxStamina < 1 {
		return fmt.Errorf("fighter %q: max stamina must be >= 1", s.Name)
	}
	if s.MaxFocus < 0 {
		return fmt.Errorf("fighter %q: max focus must be >= 0", s.Name)
	}
	if s.Attack < 1 {
		return fmt.Errorf("fighter %q: attack must be >= 1", s.Name)
	}
	if s.Defense < 0 {
		return fmt.Errorf("fighter %q: defense must be >= 0", s.Name)
	}
	if s.Accuracy < 0 || s.Accuracy > 100 {
		return fmt.Errorf("fighter %q: accuracy must be in [0, 100], got %d", s.Name, s.Accuracy)
	}
	if s.Evasion < 0 || s.Evasion > 100 {
		return fmt.Errorf("fighter %q: evasion must be in [0, 100], got %d", s.Name, s.Evasion)
	}
	if s.CritChance < 0 || s.CritChance > 100 {
		return fmt.Errorf("fighter %q: crit chance must be in [0, 100], got %d", s.Name, s.CritChance)
	}
	if s.CritDamage < 100 || s.CritDamage > 500 {
		return fmt.Errorf("fighter %q: crit damage must be in [100, 500], got %d", s.Name, s.CritDamage)
	}
	return nil
}
