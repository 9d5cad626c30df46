package gear

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironmark-games/ironmark/internal/game/effect"
	"github.com/ironmark-games/ironmark/internal/game/fighter"
)

// Catalog holds all known weapon and armor defs keyed by ID.
type Catalog struct {
	weapons map[string]*WeaponDef
	armor   map[string]*ArmorDef
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		weapons: make(map[string]*WeaponDef),
		armor:   make(map[string]*ArmorDef),
	}
}

// RegisterWeapon adds def to the catalog, overwriting any existing entry
// with the same ID.
// Precondition: def must not be nil and def.ID must not be empty.
func (c *Catalog) RegisterWeapon(def *WeaponDef) {
	c.weapons[def.ID] = def
}

// RegisterArmor adds def to the catalog, overwriting any existing entry
// with the same ID.
// Precondition: def must not be nil and def.ID must not be empty.
func (c *Catalog) RegisterArmor(def *ArmorDef) {
	c.armor[def.ID] = def
}

// Weapon returns the WeaponDef for id, or (nil, false) if not found.
func (c *Catalog) Weapon(id string) (*WeaponDef, bool) {
	d, ok := c.weapons[id]
	return d, ok
}

// Armor returns the ArmorDef for id, or (nil, false) if not found.
func (c *Catalog) Armor(id string) (*ArmorDef, bool) {
	d, ok := c.armor[id]
	return d, ok
}

// Weapons returns a snapshot slice of all registered WeaponDefs.
func (c *Catalog) Weapons() []*WeaponDef {
	out := make([]*WeaponDef, 0, len(c.weapons))
	for _, d := range c.weapons {
		out = append(out, d)
	}
	return out
}

// Armors returns a snapshot slice of all registered ArmorDefs.
func (c *Catalog) Armors() []*ArmorDef {
	out := make([]*ArmorDef, 0, len(c.armor))
	for _, d := range c.armor {
		out = append(out, d)
	}
	return out
}

// LoadDirectory reads weapon defs from dir/weapons and armor defs from
// dir/armor, one def per *.yaml file, and returns a populated Catalog.
// Precondition: dir must contain readable weapons/ and armor/ subdirectories.
// Postcondition: Returns a non-nil Catalog, or an error if any file fails to
// parse or validate.
func LoadDirectory(dir string) (*Catalog, error) {
	cat := NewCatalog()
	if err := loadDefs(filepath.Join(dir, "weapons"), func(data []byte, path string) error {
		var def WeaponDef
		if err := decodeStrict(data, &def); err != nil {
			return fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := def.Validate(); err != nil {
			return fmt.Errorf("invalid weapon in %q: %w", path, err)
		}
		cat.RegisterWeapon(&def)
		return nil
	}); err != nil {
		return nil, err
	}
	if err := loadDefs(filepath.Join(dir, "armor"), func(data []byte, path string) error {
		var def ArmorDef
		if err := decodeStrict(data, &def); err != nil {
			return fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := def.Validate(); err != nil {
			return fmt.Errorf("invalid armor in %q: %w", path, err)
		}
		cat.RegisterArmor(&def)
		return nil
	}); err != nil {
		return nil, err
	}
	return cat, nil
}

func loadDefs(dir string, decode func(data []byte, path string) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading gear dir %q: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %q: %w", path, err)
		}
		if err := decode(data, path); err != nil {
			return err
		}
	}
	return nil
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}

// BuildLoadout folds an equipped weapon and armor pair into the modifier
// bundle the fight engine consumes. Either def may be nil: a nil weapon
// means bare fists, a nil armor means unarmored.
//
// Postcondition: Returns a Loadout whose AttackBonus is the weapon's damage
// midpoint, whose resistances and proc come from the equipped defs, and
// whose stamina fields combine the weapon's costs with the armor's penalty.
func BuildLoadout(weapon *WeaponDef, armor *ArmorDef) fighter.Loadout {
	var lo fighter.Loadout
	if weapon != nil {
		lo.WeaponName = weapon.Name
		lo.AttackBonus = weapon.AttackBonus()
		lo.StaminaLight = weapon.StaminaLight
		lo.StaminaHeavy = weapon.StaminaHeavy
		if weapon.HasProc() {
			if kind, ok := effect.ParseKind(weapon.ProcEffect); ok {
				lo.ProcEffect = kind
				lo.ProcChance = weapon.ProcChance
				lo.ProcTurns = weapon.ProcTurns
			}
		}
	}
	if armor != nil {
		lo.ArmorName = armor.Name
		lo.DefenseBonus = armor.DefenseBonus
		lo.StaminaCostDelta = armor.StaminaPenalty
		if len(armor.Resistances) > 0 {
			lo.Resistances = make(map[effect.Kind]float64, len(armor.Resistances))
			for label, frac := range armor.Resistances {
				if kind, ok := effect.ParseKind(label); ok {
					lo.Resistances[kind] = frac
				}
			}
		}
	}
	return lo
}

// DefaultCatalog returns the in-code gear catalog used when no content
// directory is supplied.
func DefaultCatalog() *Catalog {
	cat := NewCatalog()
	cat.RegisterWeapon(&WeaponDef{
		ID: "rusty_cleaver", Name: "Rusty Cleaver",
		DamageMin: 3, DamageMax: 7,
		StaminaLight: 12, StaminaHeavy: 25,
		ProcEffect: "bleed", ProcChance: 0.15, ProcTurns: 3,
		Traits: []string{"serrated"},
	})
	cat.RegisterWeapon(&WeaponDef{
		ID: "pit_blade", Name: "Pit Blade",
		DamageMin: 5, DamageMax: 9,
		StaminaLight: 12, StaminaHeavy: 25,
	})
	cat.RegisterWeapon(&WeaponDef{
		ID: "chain_maul", Name: "Chain Maul",
		DamageMin: 8, DamageMax: 14,
		StaminaLight: 15, StaminaHeavy: 30,
		ProcEffect: "concuss", ProcChance: 0.10, ProcTurns: 2,
		Traits: []string{"crushing", "slow"},
	})
	cat.RegisterArmor(&ArmorDef{
		ID: "padded_wraps", Name: "Padded Wraps",
		DefenseBonus: 2, StaminaPenalty: 0,
	})
	cat.RegisterArmor(&ArmorDef{
		ID: "scrap_plate", Name: "Scrap Plate",
		DefenseBonus: 5, StaminaPenalty: 2,
		Resistances: map[string]float64{"bleed": 0.25},
	})
	cat.RegisterArmor(&ArmorDef{
		ID: "lamellar_harness", Name: "Lamellar Harness",
		DefenseBonus: 8, StaminaPenalty: 4,
		Resistances: map[string]float64{"bleed": 0.4, "cripple": 0.25},
	})
	return cat
}
