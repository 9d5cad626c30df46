package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironmark-games/ironmark/internal/game/combat"
)

// TestParry_PerfectTiming verifies a parry inside the window turns the
// attack, counters for half the parrier's attack, and pays out focus and
// hype. The consumed window rejects a second attempt.
func TestParry_PerfectTiming(t *testing.T) {
	src := &scriptedSource{}
	s := newTestSession(t, src)

	require.NoError(t, s.OpenParryWindow())
	require.True(t, s.ParryWindowOpen())

	res, ok, err := s.AttemptParry(combat.SidePlayer, 0.10)
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, res.PerfectParry)
	assert.Equal(t, 8, res.CounterDamage, "round(0.5 × 15)")
	assert.Equal(t, 15, res.FocusGained)
	assert.Equal(t, 6, res.HypeGained)
	assert.Contains(t, res.Message, "turns it aside")

	assert.Equal(t, 92, s.Enemy().CurrentHP)
	assert.InDelta(t, 4.0, s.Enemy().InjuryMeter, 1e-9)
	assert.Equal(t, 1, s.Player().PerfectParries)
	assert.Equal(t, 15, s.Player().CurrentFocus)
	assert.Equal(t, 36, s.Hype())

	assert.False(t, s.ParryWindowOpen())
	_, _, err = s.AttemptParry(combat.SidePlayer, 0.05)
	assert.ErrorIs(t, err, combat.ErrNoParryWindow)
}

// TestParry_TimingMissed verifies a late parry consumes the window and
// changes nothing; the caller resolves the attack normally.
func TestParry_TimingMissed(t *testing.T) {
	src := &scriptedSource{}
	s := newTestSession(t, src)

	require.NoError(t, s.OpenParryWindow())
	res, ok, err := s.AttemptParry(combat.SidePlayer, 0.20)
	require.NoError(t, err)

	assert.False(t, ok)
	assert.Zero(t, res)
	assert.Equal(t, 100, s.Enemy().CurrentHP)
	assert.Equal(t, 0, s.Player().PerfectParries)
	assert.Equal(t, 30, s.Hype())
	assert.False(t, s.ParryWindowOpen())
}

// TestParry_InvalidTiming verifies out-of-range timings error without
// consuming the window.
func TestParry_InvalidTiming(t *testing.T) {
	src := &scriptedSource{}
	s := newTestSession(t, src)
	require.NoError(t, s.OpenParryWindow())

	for _, timing := range []float64{-0.1, 1.5} {
		_, ok, err := s.AttemptParry(combat.SidePlayer, timing)
		assert.Error(t, err)
		assert.False(t, ok)
	}
	assert.True(t, s.ParryWindowOpen(), "a rejected timing leaves the window armed")
}

// TestParry_NoWindow verifies parry attempts without an armed window fail.
func TestParry_NoWindow(t *testing.T) {
	src := &scriptedSource{}
	s := newTestSession(t, src)

	_, ok, err := s.AttemptParry(combat.SidePlayer, 0.0)
	assert.ErrorIs(t, err, combat.ErrNoParryWindow)
	assert.False(t, ok)
}

// TestParry_WindowClosesAtTurnEnd verifies NextTurn discards an unused
// window.
func TestParry_WindowClosesAtTurnEnd(t *testing.T) {
	src := &scriptedSource{}
	s := newTestSession(t, src)

	_, err := s.PlayTurn(combat.Action{Kind: combat.ActionGuard, Zone: combat.ZoneBody})
	require.NoError(t, err)
	require.NoError(t, s.OpenParryWindow())
	require.NoError(t, s.NextTurn())
	assert.False(t, s.ParryWindowOpen())
}

// TestParry_CounterCanDecideTheFight verifies a counter that empties the
// attacker's HP wins the fight for the parrier.
func TestParry_CounterCanDecideTheFight(t *testing.T) {
	src := &scriptedSource{}
	s := newTestSession(t, src)
	s.Enemy().CurrentHP = 5
	s.Enemy().LowestHP = 5

	require.NoError(t, s.OpenParryWindow())
	res, ok, err := s.AttemptParry(combat.SidePlayer, 0.0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 8, res.CounterDamage)

	winner, decided := s.Winner()
	require.True(t, decided)
	assert.Equal(t, combat.SidePlayer, winner)
	assert.ErrorIs(t, s.OpenParryWindow(), combat.ErrFightOver)
	_, _, err = s.AttemptParry(combat.SidePlayer, 0.0)
	assert.ErrorIs(t, err, combat.ErrFightOver)
}

// TestParry_EnemySide verifies the enemy can parry the player's attack
// through the same entry point.
func TestParry_EnemySide(t *testing.T) {
	src := &scriptedSource{}
	s := newTestSession(t, src)

	require.NoError(t, s.OpenParryWindow())
	res, ok, err := s.AttemptParry(combat.SideEnemy, 0.1)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 8, res.CounterDamage)
	assert.Equal(t, 92, s.Player().CurrentHP)
	assert.Equal(t, 1, s.Enemy().PerfectParries)
}
