package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironmark-games/ironmark/internal/game/combat"
	"github.com/ironmark-games/ironmark/internal/game/wound"
)

// testWoundCatalog returns a catalog with exactly one template per severity
// so scripted picks are unambiguous.
func testWoundCatalog() *wound.Catalog {
	c := wound.NewCatalog()
	c.Register(&wound.Template{
		ID:       "bruised_ribs",
		Name:     "Bruised Ribs",
		Severity: wound.Minor,
		Effects:  []wound.Effect{{Type: wound.StaminaPenalty, Amount: 2}},
	})
	c.Register(&wound.Template{
		ID:       "torn_tendon",
		Name:     "Torn Tendon",
		Severity: wound.Major,
		Effects:  []wound.Effect{{Type: wound.SpeedPenalty, Amount: 3}},
	})
	c.Register(&wound.Template{
		ID:       "shattered_arm",
		Name:     "Shattered Arm",
		Severity: wound.Critical,
		Effects:  []wound.Effect{{Type: wound.DamagePenalty, Amount: 5}},
	})
	return c
}

// TestWounds_ThresholdsAcrossAFight walks an enemy down through the 75% and
// 50% lines: the first crossing is consumed by a failed roll, the second
// lands a major wound off a crit-boosted trigger chance.
func TestWounds_ThresholdsAcrossAFight(t *testing.T) {
	player := testSnapshot("Brakka")
	player.Attack = 28
	// Draws: hit, crit fail, failed 75% roll; then hit, crit, fired 50% roll.
	src := &scriptedSource{floats: []float64{0.0, 0.99, 0.99, 0.0, 0.0, 0.0}}
	s, err := combat.NewSession(combat.Config{
		Player: player,
		Enemy:  testClass(),
		Wounds: testWoundCatalog(),
		Source: src,
	})
	require.NoError(t, err)

	res1, err := s.PlayTurn(combat.Action{Kind: combat.ActionLight, Zone: combat.ZoneBody})
	require.NoError(t, err)
	assert.Equal(t, 25, res1.Damage)
	assert.Equal(t, 75, s.Enemy().CurrentHP)
	assert.True(t, s.Enemy().CrossedThreshold(75), "the failed roll still consumes the line")
	assert.Empty(t, s.Enemy().Wounds)
	require.NoError(t, s.NextTurn())

	_, err = s.PlayTurn(combat.Action{Kind: combat.ActionGuard, Zone: combat.ZoneHead})
	require.NoError(t, err)
	require.NoError(t, s.NextTurn())

	res2, err := s.PlayTurn(combat.Action{Kind: combat.ActionLight, Zone: combat.ZoneBody})
	require.NoError(t, err)
	assert.True(t, res2.Critical)
	assert.Equal(t, 40, res2.Damage, "round(28×1.02×1.5 − 3) with one momentum stack")
	assert.Equal(t, 35, s.Enemy().CurrentHP)

	require.Len(t, s.Enemy().Wounds, 1)
	assert.Equal(t, "torn_tendon", s.Enemy().Wounds[0].ID)
	assert.True(t, s.Enemy().CrossedThreshold(50))
	assert.False(t, s.Enemy().CrossedThreshold(25), "35% HP never reached the last line")
}

// TestWounds_OneBlowCrossesSeveralLines verifies a single enormous hit rolls
// every threshold it crosses, worst line last.
func TestWounds_OneBlowCrossesSeveralLines(t *testing.T) {
	player := testSnapshot("Brakka")
	player.Attack = 80
	src := &scriptedSource{floats: []float64{0.0, 0.99, 0.0, 0.0, 0.0}}
	s, err := combat.NewSession(combat.Config{
		Player: player,
		Enemy:  testClass(),
		Wounds: testWoundCatalog(),
		Source: src,
	})
	require.NoError(t, err)

	res, err := s.PlayTurn(combat.Action{Kind: combat.ActionLight, Zone: combat.ZoneBody})
	require.NoError(t, err)
	assert.Equal(t, 77, res.Damage)
	assert.Equal(t, 23, s.Enemy().CurrentHP)

	require.Len(t, s.Enemy().Wounds, 3)
	assert.Equal(t, wound.Minor, s.Enemy().Wounds[0].Severity)
	assert.Equal(t, wound.Major, s.Enemy().Wounds[1].Severity)
	assert.Equal(t, wound.Critical, s.Enemy().Wounds[2].Severity)
	for _, pct := range []int{75, 50, 25} {
		assert.True(t, s.Enemy().CrossedThreshold(pct))
	}
}

// TestWounds_ConsumedLineNeverRerolls pins the no-re-arm rule: once the 75%
// line is consumed, later hits above the next line draw no wound rolls. The
// script ends with a would-fire draw that a buggy re-roll would consume.
func TestWounds_ConsumedLineNeverRerolls(t *testing.T) {
	player := testSnapshot("Brakka")
	player.Attack = 28
	src := &scriptedSource{floats: []float64{0.0, 0.99, 0.99, 0.0, 0.99, 0.99, 0.0}}
	s, err := combat.NewSession(combat.Config{
		Player: player,
		Enemy:  testClass(),
		Wounds: testWoundCatalog(),
		Source: src,
	})
	require.NoError(t, err)

	_, err = s.PlayTurn(combat.Action{Kind: combat.ActionLight, Zone: combat.ZoneBody})
	require.NoError(t, err)
	require.Equal(t, 75, s.Enemy().CurrentHP)
	require.NoError(t, s.NextTurn())

	_, err = s.PlayTurn(combat.Action{Kind: combat.ActionGuard, Zone: combat.ZoneHead})
	require.NoError(t, err)
	require.NoError(t, s.NextTurn())

	// A leg hit for 23 leaves the enemy at 52%, above the 50% line.
	res, err := s.PlayTurn(combat.Action{Kind: combat.ActionLight, Zone: combat.ZoneLegs})
	require.NoError(t, err)
	assert.Equal(t, 23, res.Damage)
	assert.Equal(t, 52, s.Enemy().CurrentHP)
	assert.Empty(t, s.Enemy().Wounds)
}

// TestWounds_HealingNeverRearms verifies crossing is judged against the
// lowest HP ever reached, so an item heal back above a line does not let it
// fire again.
func TestWounds_HealingNeverRearms(t *testing.T) {
	cls := testClass()
	cls.Stats.Attack = 28
	src := &scriptedSource{floats: []float64{0.0, 0.99, 0.99}}
	s, err := combat.NewSession(combat.Config{
		Player: testSnapshot("Brakka"),
		Enemy:  cls,
		Wounds: testWoundCatalog(),
		Source: src,
	})
	require.NoError(t, err)

	// The enemy opens with a hit that drops the player to exactly 75%.
	_, err = s.PlayTurn(combat.Action{Kind: combat.ActionGuard, Zone: combat.ZoneHead})
	require.NoError(t, err)
	require.NoError(t, s.NextTurn())
	_, err = s.PlayTurn(combat.Action{Kind: combat.ActionLight, Zone: combat.ZoneBody})
	require.NoError(t, err)
	require.Equal(t, 75, s.Player().CurrentHP)
	require.True(t, s.Player().CrossedThreshold(75))
	require.NoError(t, s.NextTurn())

	// The player heals back over the line; the low-water mark stays at 75.
	_, err = s.PlayTurn(combat.Action{Kind: combat.ActionItem, Zone: combat.ZoneBody})
	require.NoError(t, err)
	assert.Equal(t, 100, s.Player().CurrentHP)
	assert.Equal(t, 75, s.Player().LowestHP)
	assert.True(t, s.Player().CrossedThreshold(75))
}
