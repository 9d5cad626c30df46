package wound

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironmark-games/ironmark/internal/game/rng"
)

// Catalog holds all known wound templates keyed by ID and grouped by
// severity.
type Catalog struct {
	byID       map[string]*Template
	bySeverity map[Severity][]*Template
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byID:       make(map[string]*Template),
		bySeverity: make(map[Severity][]*Template),
	}
}

// Register adds t to the catalog. Re-registering an ID replaces the earlier
// entry.
// Precondition: t must not be nil and t.ID must not be empty.
func (c *Catalog) Register(t *Template) {
	if old, ok := c.byID[t.ID]; ok {
		tier := c.bySeverity[old.Severity]
		for i, w := range tier {
			if w.ID == t.ID {
				c.bySeverity[old.Severity] = append(tier[:i], tier[i+1:]...)
				break
			}
		}
	}
	c.byID[t.ID] = t
	c.bySeverity[t.Severity] = append(c.bySeverity[t.Severity], t)
}

// Get returns the Template for id, or (nil, false) if not found.
func (c *Catalog) Get(id string) (*Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// BySeverity returns a snapshot slice of all templates of the given
// severity, in registration order.
func (c *Catalog) BySeverity(s Severity) []*Template {
	tier := c.bySeverity[s]
	out := make([]*Template, len(tier))
	copy(out, tier)
	return out
}

// Len returns the number of registered templates.
func (c *Catalog) Len() int {
	return len(c.byID)
}

// RandomBySeverity returns a uniformly chosen template of the given
// severity.
//
// Precondition: at least one template of that severity is registered.
// Panics with a package-prefixed message otherwise; an empty required tier
// is a content configuration error, not a fight condition.
func (c *Catalog) RandomBySeverity(src rng.Source, s Severity) *Template {
	tier := c.bySeverity[s]
	if len(tier) == 0 {
		panic(fmt.Sprintf("wound: no templates registered for severity %s", s))
	}
	return rng.Pick(src, tier)
}

// templateDoc is the YAML shape of a wound template. Labels are converted
// to the closed enums after a strict decode.
type templateDoc struct {
	ID       string      `yaml:"id"`
	Name     string      `yaml:"name"`
	Severity string      `yaml:"severity"`
	Effects  []effectDoc `yaml:"effects"`
}

type effectDoc struct {
	Type   string `yaml:"type"`
	Amount int    `yaml:"amount"`
}

func (d *templateDoc) toTemplate() (*Template, error) {
	sev, ok := ParseSeverity(d.Severity)
	if !ok {
		return nil, fmt.Errorf("severity %q is not a known severity", d.Severity)
	}
	t := &Template{ID: d.ID, Name: d.Name, Severity: sev}
	for _, e := range d.Effects {
		et, ok := ParseEffectType(e.Type)
		if !ok {
			return nil, fmt.Errorf("effect type %q is not a known effect type", e.Type)
		}
		t.Effects = append(t.Effects, Effect{Type: et, Amount: e.Amount})
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadDirectory reads every *.yaml file in dir, parses each as a wound
// template, and returns a populated Catalog.
// Precondition: dir must be a readable directory.
// Postcondition: Returns a non-nil Catalog, or an error if any file fails
// to parse or validate.
func LoadDirectory(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading wound dir %q: %w", dir, err)
	}
	cat := NewCatalog()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var doc templateDoc
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		t, err := doc.toTemplate()
		if err != nil {
			return nil, fmt.Errorf("invalid wound in %q: %w", path, err)
		}
		cat.Register(t)
	}
	return cat, nil
}

// DefaultCatalog returns the in-code wound catalog used when no content
// directory is supplied. Every severity tier is populated.
func DefaultCatalog() *Catalog {
	cat := NewCatalog()
	for _, t := range []*Template{
		{
			ID: "gashed_brow", Name: "Gashed Brow", Severity: Minor,
			Effects: []Effect{{AccuracyPenalty, 5}, {BleedDOT, 1}},
		},
		{
			ID: "bruised_ribs", Name: "Bruised Ribs", Severity: Minor,
			Effects: []Effect{{StaminaPenalty, 3}},
		},
		{
			ID: "swollen_eye", Name: "Swollen Eye", Severity: Minor,
			Effects: []Effect{{AccuracyPenalty, 8}},
		},
		{
			ID: "torn_shoulder", Name: "Torn Shoulder", Severity: Major,
			Effects: []Effect{{DamagePenalty, 3}, {DefensePenalty, 2}},
		},
		{
			ID: "deep_laceration", Name: "Deep Laceration", Severity: Major,
			Effects: []Effect{{BleedDOT, 3}, {StaminaPenalty, 4}},
		},
		{
			ID: "twisted_knee", Name: "Twisted Knee", Severity: Major,
			Effects: []Effect{{SpeedPenalty, 4}, {DefensePenalty, 2}},
		},
		{
			ID: "shattered_guard_arm", Name: "Shattered Guard Arm", Severity: Critical,
			Effects: []Effect{{DefensePenalty, 6}, {StunChance, 10}},
		},
		{
			ID: "punctured_lung", Name: "Punctured Lung", Severity: Critical,
			Effects: []Effect{{StaminaPenalty, 8}, {BleedDOT, 4}, {FocusPenalty, 10}},
		},
		{
			ID: "cracked_skull", Name: "Cracked Skull", Severity: Critical,
			Effects: []Effect{{AccuracyPenalty, 12}, {StunChance, 15}, {DamagePenalty, 2}},
		},
	} {
		cat.Register(t)
	}
	return cat
}
