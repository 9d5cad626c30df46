// Package enemy provides enemy class definitions loaded from YAML. A class
// carries the stat block, enrage threshold, and zone weaknesses the fight
// engine consumes; action selection for enemies stays outside the engine.
package enemy

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironmark-games/ironmark/internal/game/fighter"
)

// DefaultEnrageThreshold is the HP fraction at which a class with no
// explicit threshold enrages.
const DefaultEnrageThreshold = 0.35

// Stats is the YAML stat block of an enemy class.
type Stats struct {
	MaxHP      int `yaml:"max_hp"`
	MaxStamina int `yaml:"max_stamina"`
	MaxFocus   int `yaml:"max_focus"`
	Attack     int `yaml:"attack"`
	Defense    int `yaml:"defense"`
	Speed      int `yaml:"speed"`
	Accuracy   int `yaml:"accuracy"`
	Evasion    int `yaml:"evasion"`
	CritChance int `yaml:"crit_chance"`
	CritDamage int `yaml:"crit_damage"`
}

// Weaknesses holds per-zone damage multipliers applied when the player
// strikes that zone. Zero means no modifier (treated as 1.0).
type Weaknesses struct {
	Head float64 `yaml:"head"`
	Body float64 `yaml:"body"`
	Legs float64 `yaml:"legs"`
}

// Class defines a reusable enemy archetype loaded from YAML.
type Class struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Stats       Stats      `yaml:"stats"`
	Weaknesses  Weaknesses `yaml:"weaknesses"`

	// EnrageThreshold is the HP fraction at which the class enrages.
	// Zero means DefaultEnrageThreshold.
	EnrageThreshold float64 `yaml:"enrage_threshold"`

	WeaponID string   `yaml:"weapon_id"`
	ArmorID  string   `yaml:"armor_id"`
	Taunts   []string `yaml:"taunts"`
}

// EnrageAt returns the class's enrage threshold as an HP fraction.
//
// Postcondition: Returns a value in (0, 1).
func (c *Class) EnrageAt() float64 {
	if c.EnrageThreshold > 0 {
		return c.EnrageThreshold
	}
	return DefaultEnrageThreshold
}

// Snapshot builds the fighter stat snapshot for a fight against this class.
func (c *Class) Snapshot() fighter.Snapshot {
	return fighter.Snapshot{
		Name:       c.Name,
		MaxHP:      c.Stats.MaxHP,
		MaxStamina: c.Stats.MaxStamina,
		MaxFocus:   c.Stats.MaxFocus,
		Attack:     c.Stats.Attack,
		Defense:    c.Stats.Defense,
		Speed:      c.Stats.Speed,
		Accuracy:   c.Stats.Accuracy,
		Evasion:    c.Stats.Evasion,
		CritChance: c.Stats.CritChance,
		CritDamage: c.Stats.CritDamage,
	}
}

// Validate checks that the class satisfies basic invariants.
//
// Precondition: c must not be nil.
// Postcondition: Returns nil iff ID and Name are non-empty, the stat block
// validates as a fighter snapshot, the enrage threshold is a fraction, and
// every set weakness multiplier is within [0.5, 2.0]; returns an error on
// the first violation otherwise.
func (c *Class) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("enemy class: id must not be empty")
	}
	if c.Name == "" {
		return fmt.Errorf("enemy class %q: name must not be empty", c.ID)
	}
	if err := c.Snapshot().Validate(); err != nil {
		return fmt.Errorf("enemy class %q: %w", c.ID, err)
	}
	if c.EnrageThreshold < 0 || c.EnrageThreshold >= 1 {
		return fmt.Errorf("enemy class %q: enrage_threshold must be in [0, 1), got %v", c.ID, c.EnrageThreshold)
	}
	for _, zone := range []struct {
		label string
		mult  float64
	}{
		{"head", c.Weaknesses.Head},
		{"body", c.Weaknesses.Body},
		{"legs", c.Weaknesses.Legs},
	} {
		if zone.mult != 0 && (zone.mult < 0.5 || zone.mult > 2.0) {
			return fmt.Errorf("enemy class %q: %s weakness must be in [0.5, 2.0], got %v", c.ID, zone.label, zone.mult)
		}
	}
	return nil
}

// LoadClassFromBytes parses a single enemy class from raw YAML bytes.
//
// Precondition: data must be valid YAML for a single Class; unknown fields
// are rejected.
// Postcondition: Returns a validated *Class, or an error.
func LoadClassFromBytes(data []byte) (*Class, error) {
	var c Class
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parsing class YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadClasses reads all *.yaml files in dir and returns the parsed classes.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all classes or an error on the first parse or
// validate failure; on error, the partial result is discarded.
func LoadClasses(dir string) ([]*Class, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading enemy dir %q: %w", dir, err)
	}

	var classes []*Class
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		c, err := LoadClassFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		classes = append(classes, c)
	}
	return classes, nil
}

// FindClass returns the class with the given ID from classes, or
// (nil, false) if absent.
func FindClass(classes []*Class, id string) (*Class, bool) {
	for _, c := range classes {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// DefaultClasses returns the in-code enemy roster used when no content
// directory is supplied.
func DefaultClasses() []*Class {
	return []*Class{
		{
			ID: "pit_dog", Name: "Pit Dog",
			Description: "A snarling brawler who leads with his skull.",
			Stats: Stats{
				MaxHP: 90, MaxStamina: 100, MaxFocus: 80,
				Attack: 14, Defense: 8, Speed: 11,
				Accuracy: 80, Evasion: 20, CritChance: 8, CritDamage: 150,
			},
			Weaknesses: Weaknesses{Head: 1.3},
			WeaponID:   "rusty_cleaver",
			ArmorID:    "padded_wraps",
			Taunts:     []string{"You smell like dinner.", "Down, boy."},
		},
		{
			ID: "iron_husk", Name: "Iron Husk",
			Description: "Slabs of scavenged plate over slabs of muscle.",
			Stats: Stats{
				MaxHP: 140, MaxStamina: 90, MaxFocus: 60,
				Attack: 18, Defense: 14, Speed: 7,
				Accuracy: 70, Evasion: 10, CritChance: 5, CritDamage: 175,
			},
			Weaknesses:      Weaknesses{Legs: 1.25},
			EnrageThreshold: 0.25,
			WeaponID:        "chain_maul",
			ArmorID:         "lamellar_harness",
			Taunts:          []string{"Break yourself against me."},
		},
		{
			ID: "blood_dancer", Name: "Blood Dancer",
			Description: "Quick, cruel, and fond of shallow cuts.",
			Stats: Stats{
				MaxHP: 75, MaxStamina: 110, MaxFocus: 100,
				Attack: 12, Defense: 6, Speed: 15,
				Accuracy: 90, Evasion: 35, CritChance: 15, CritDamage: 160,
			},
			Weaknesses:      Weaknesses{Body: 1.2},
			EnrageThreshold: 0.4,
			WeaponID:        "pit_blade",
			ArmorID:         "padded_wraps",
			Taunts:          []string{"Dance with me.", "Too slow. Always too slow."},
		},
	}
}
