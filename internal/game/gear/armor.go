package gear

import (
	"errors"
	"fmt"

	"github.com/ironmark-games/ironmark/internal/game/effect"
)

// ArmorDef defines the static properties of an armor piece loaded from YAML.
type ArmorDef struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	DefenseBonus int    `yaml:"defense_bonus"`

	// StaminaPenalty is added to the cost of every stamina-costing action
	// while the armor is worn.
	StaminaPenalty int `yaml:"stamina_penalty"`

	// Resistances maps effect labels to a [0, 1] fraction subtracted from
	// the chance of that effect landing on the wearer.
	Resistances map[string]float64 `yaml:"resistances"`
}

// Validate checks that the ArmorDef satisfies its invariants.
// Precondition: a is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (a *ArmorDef) Validate() error {
	var errs []error
	if a.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if a.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if a.DefenseBonus < 0 {
		errs = append(errs, errors.New("DefenseBonus must be >= 0"))
	}
	if a.StaminaPenalty < 0 {
		errs = append(errs, errors.New("StaminaPenalty must be >= 0"))
	}
	for label, frac := range a.Resistances {
		if _, ok := effect.ParseKind(label); !ok {
			errs = append(errs, fmt.Errorf("resistance %q is not a known effect", label))
		}
		if frac < 0 || frac > 1 {
			errs = append(errs, fmt.Errorf("resistance %q must be in [0, 1], got %v", label, frac))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("armor validation failed: %v", errs)
	}
	return nil
}
