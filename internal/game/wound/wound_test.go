package wound_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ironmark-games/ironmark/internal/game/rng"
	"github.com/ironmark-games/ironmark/internal/game/wound"
)

func TestSeverity_ParseRoundTrip(t *testing.T) {
	for _, s := range []wound.Severity{wound.Minor, wound.Major, wound.Critical} {
		parsed, ok := wound.ParseSeverity(s.String())
		require.True(t, ok)
		assert.Equal(t, s, parsed)
	}
	_, ok := wound.ParseSeverity("grievous")
	assert.False(t, ok)
}

func TestThresholds_StrictlyDescending(t *testing.T) {
	require.Len(t, wound.Thresholds, 3)
	for i := 1; i < len(wound.Thresholds); i++ {
		assert.Greater(t, wound.Thresholds[i-1].Percent, wound.Thresholds[i].Percent)
		assert.Greater(t, wound.Thresholds[i].Severity, wound.Thresholds[i-1].Severity,
			"lower thresholds carry higher severities")
	}
}

func TestEffectType_ParseRoundTrip(t *testing.T) {
	for et := wound.DamagePenalty; et <= wound.FocusPenalty; et++ {
		parsed, ok := wound.ParseEffectType(et.String())
		require.True(t, ok, "label %q must parse", et.String())
		assert.Equal(t, et, parsed)
	}
	_, ok := wound.ParseEffectType("mana_penalty")
	assert.False(t, ok)
}

func validTemplate() *wound.Template {
	return &wound.Template{
		ID: "test_gash", Name: "Test Gash", Severity: wound.Minor,
		Effects: []wound.Effect{{Type: wound.BleedDOT, Amount: 2}},
	}
}

func TestTemplate_Validate(t *testing.T) {
	require.NoError(t, validTemplate().Validate())

	cases := []struct {
		name   string
		mutate func(*wound.Template)
	}{
		{"empty id", func(w *wound.Template) { w.ID = "" }},
		{"empty name", func(w *wound.Template) { w.Name = "" }},
		{"bad severity", func(w *wound.Template) { w.Severity = wound.Severity(9) }},
		{"no effects", func(w *wound.Template) { w.Effects = nil }},
		{"bad effect type", func(w *wound.Template) { w.Effects[0].Type = wound.EffectType(42) }},
		{"zero amount", func(w *wound.Template) { w.Effects[0].Amount = 0 }},
		{"stun chance over 100", func(w *wound.Template) {
			w.Effects = []wound.Effect{{Type: wound.StunChance, Amount: 120}}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := validTemplate()
			tc.mutate(w)
			assert.Error(t, w.Validate())
		})
	}
}

func TestSum_Additive(t *testing.T) {
	wounds := []*wound.Template{
		{ID: "a", Name: "A", Severity: wound.Minor,
			Effects: []wound.Effect{{wound.DefensePenalty, 2}, {wound.BleedDOT, 1}}},
		{ID: "b", Name: "B", Severity: wound.Major,
			Effects: []wound.Effect{{wound.DefensePenalty, 3}}},
	}

	assert.Equal(t, 5, wound.Sum(wounds, wound.DefensePenalty))
	assert.Equal(t, 1, wound.Sum(wounds, wound.BleedDOT))
	assert.Equal(t, 0, wound.Sum(wounds, wound.SpeedPenalty))
	assert.Equal(t, 0, wound.Sum(nil, wound.DefensePenalty))
}

func TestTriggerChance(t *testing.T) {
	assert.InDelta(t, 0.15, wound.TriggerChance(wound.TriggerLight, false), 1e-9)
	assert.InDelta(t, 0.30, wound.TriggerChance(wound.TriggerHeavy, false), 1e-9)
	assert.InDelta(t, 0.45, wound.TriggerChance(wound.TriggerCrit, false), 1e-9)
	assert.InDelta(t, 0.35, wound.TriggerChance(wound.TriggerSpecial, false), 1e-9)
	assert.InDelta(t, 0.30, wound.TriggerChance(wound.TriggerLight, true), 1e-9)
	assert.InDelta(t, 0.45, wound.TriggerChance(wound.TriggerHeavy, true), 1e-9)
}

func TestCatalog_RegisterAndGet(t *testing.T) {
	cat := wound.NewCatalog()
	w := validTemplate()
	cat.Register(w)

	got, ok := cat.Get("test_gash")
	require.True(t, ok)
	assert.Equal(t, w, got)
	_, ok = cat.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, cat.Len())
}

func TestCatalog_Register_ReplacesAcrossSeverities(t *testing.T) {
	cat := wound.NewCatalog()
	cat.Register(validTemplate())

	replacement := validTemplate()
	replacement.Severity = wound.Major
	cat.Register(replacement)

	assert.Empty(t, cat.BySeverity(wound.Minor), "re-registering must remove the old tier entry")
	assert.Len(t, cat.BySeverity(wound.Major), 1)
	assert.Equal(t, 1, cat.Len())
}

func TestCatalog_BySeverity_ReturnsCopy(t *testing.T) {
	cat := wound.NewCatalog()
	cat.Register(validTemplate())

	tier := cat.BySeverity(wound.Minor)
	require.Len(t, tier, 1)
	tier[0] = nil
	assert.NotNil(t, cat.BySeverity(wound.Minor)[0],
		"catalog must not be corrupted by mutating the returned slice")
}

func TestCatalog_RandomBySeverity(t *testing.T) {
	cat := wound.DefaultCatalog()
	src := rng.NewSeeded(3)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		got := cat.RandomBySeverity(src, wound.Major)
		assert.Equal(t, wound.Major, got.Severity)
		seen[got.ID] = true
	}
	assert.Greater(t, len(seen), 1, "every template in the tier must be reachable")
}

func TestCatalog_RandomBySeverity_PanicsOnEmptyTier(t *testing.T) {
	cat := wound.NewCatalog()
	assert.Panics(t, func() { cat.RandomBySeverity(rng.NewSeeded(1), wound.Critical) })
}

func TestLoadDirectory_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	doc := `
id: mangled_hand
name: Mangled Hand
severity: major
effects:
  - type: damage_penalty
    amount: 4
  - type: focus_penalty
    amount: 5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mangled_hand.yaml"), []byte(doc), 0644))

	cat, err := wound.LoadDirectory(dir)
	require.NoError(t, err)
	got, ok := cat.Get("mangled_hand")
	require.True(t, ok)
	assert.Equal(t, wound.Major, got.Severity)
	require.Len(t, got.Effects, 2)
	assert.Equal(t, wound.Effect{Type: wound.DamagePenalty, Amount: 4}, got.Effects[0])
}

func TestLoadDirectory_UnknownSeverity_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	doc := `
id: x
name: X
severity: grievous
effects:
  - type: damage_penalty
    amount: 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.yaml"), []byte(doc), 0644))
	_, err := wound.LoadDirectory(dir)
	assert.Error(t, err)
}

func TestLoadDirectory_UnknownField_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	doc := `
id: x
name: X
severity: minor
flavor: gruesome
effects:
  - type: damage_penalty
    amount: 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.yaml"), []byte(doc), 0644))
	_, err := wound.LoadDirectory(dir)
	assert.Error(t, err)
}

func TestLoadDirectory_NonexistentDir_ReturnsError(t *testing.T) {
	_, err := wound.LoadDirectory("/nonexistent/path/that/does/not/exist")
	assert.Error(t, err)
}

func TestDefaultCatalog_EveryTierPopulated(t *testing.T) {
	cat := wound.DefaultCatalog()
	for _, s := range []wound.Severity{wound.Minor, wound.Major, wound.Critical} {
		tier := cat.BySeverity(s)
		require.NotEmpty(t, tier, "severity %s must have templates", s)
		for _, w := range tier {
			assert.NoError(t, w.Validate(), "default wound %q must validate", w.ID)
		}
	}
}

func TestLoadDirectory_ShippedContent(t *testing.T) {
	cat, err := wound.LoadDirectory("../../../content/wounds")
	require.NoError(t, err)
	for _, s := range []wound.Severity{wound.Minor, wound.Major, wound.Critical} {
		assert.NotEmpty(t, cat.BySeverity(s), "shipped content must cover severity %s", s)
	}
}

func TestInjuryFromTemplate(t *testing.T) {
	w := validTemplate()
	a := wound.InjuryFromTemplate(w, "pit brawl")
	b := wound.InjuryFromTemplate(w, "pit brawl")

	assert.Equal(t, "Test Gash", a.Name)
	assert.Equal(t, wound.Minor, a.Severity)
	assert.Equal(t, "pit brawl", a.Source)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID, "each injury gets its own instance ID")
}

func TestPropertySum_NonNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 6).Draw(rt, "wounds")
		var wounds []*wound.Template
		for i := 0; i < n; i++ {
			et := wound.EffectType(rapid.IntRange(int(wound.DamagePenalty), int(wound.FocusPenalty)).Draw(rt, "type"))
			wounds = append(wounds, &wound.Template{
				ID: "w", Name: "W", Severity: wound.Minor,
				Effects: []wound.Effect{{Type: et, Amount: rapid.IntRange(1, 20).Draw(rt, "amount")}},
			})
		}
		for et := wound.DamagePenalty; et <= wound.FocusPenalty; et++ {
			if wound.Sum(wounds, et) < 0 {
				rt.Errorf("sum for %s went negative", et)
			}
		}
	})
}
