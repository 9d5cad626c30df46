package combat

import (
	"fmt"
	"math"

	"github.com/ironmark-games/ironmark/internal/game/effect"
)

const (
	// adrenalineHPThreshold is the HP fraction at or under which the
	// player's one adrenaline surge unlocks.
	adrenalineHPThreshold = 0.20

	secondWindHealFraction = 0.30
	secondWindStamina      = 25

	lastStandFatigue = 15
	lastStandTurns   = 3
)

// AdrenalineChoice selects what the player's adrenaline surge does.
type AdrenalineChoice int

const (
	// AdrenalineLastStand buys power now and pays in fatigue: it costs
	// stamina up front and carries its edge as an inspired effect that the
	// following attacks fold in.
	AdrenalineLastStand AdrenalineChoice = iota
	// AdrenalineSecondWind immediately heals a fraction of max HP and
	// restores a flat amount of stamina.
	AdrenalineSecondWind
)

// String returns the snake_case label for the choice.
func (c AdrenalineChoice) String() string {
	switch c {
	case AdrenalineLastStand:
		return "last_stand"
	case AdrenalineSecondWind:
		return "second_wind"
	default:
		return "unknown"
	}
}

// CanTriggerAdrenaline reports whether the player's adrenaline surge is
// available: HP at or under the threshold, not yet spent, fight undecided.
func (s *Session) CanTriggerAdrenaline() bool {
	return !s.winnerSet && !s.adrenalineUsed && s.player.HPFraction() <= adrenalineHPThreshold
}

// UseAdrenaline spends the player's one adrenaline surge. It is not a turn
// action: it costs no phase and may be invoked whenever the surge is
// available.
//
// Postcondition: On success the surge is consumed for the rest of the
// fight; on error nothing changed.
func (s *Session) UseAdrenaline(choice AdrenalineChoice) error {
	if s.winnerSet {
		return ErrFightOver
	}
	if !s.CanTriggerAdrenaline() {
		return ErrAdrenalineUnavailable
	}
	switch choice {
	case AdrenalineLastStand, AdrenalineSecondWind:
	default:
		return fmt.Errorf("combat: unknown adrenaline choice %d", choice)
	}

	s.adrenalineUsed = true
	if choice == AdrenalineSecondWind {
		heal := int(math.Round(secondWindHealFraction * float64(s.player.Snapshot.MaxHP)))
		s.player.Heal(heal)
		s.player.RegainStamina(secondWindStamina)
		s.appendLog("%s gasps out a second wind, recovering %d HP", s.player.Name(), heal)
		return nil
	}
	s.player.SpendStamina(lastStandFatigue)
	_ = s.player.Effects.Apply(effect.Inspired, lastStandTurns, 0)
	s.appendLog("%s plants his feet for a last stand", s.player.Name())
	return nil
}

// AdrenalineUsed reports whether the player's surge has been spent.
func (s *Session) AdrenalineUsed() bool { return s.adrenalineUsed }

// EnrageModifiers describes how an enraged enemy fights. The values are
// exposed as a query rather than folded into the combatant's snapshot; the
// resolver consults them on every roll while the enemy is enraged.
type EnrageModifiers struct {
	// DamageMult multiplies the enemy's outgoing damage.
	DamageMult float64
	// SpeedBonus raises the enemy's effective speed for external
	// consumers; the engine itself orders turns only at fight start.
	SpeedBonus int
	// AccuracyPenalty and DefensePenalty are flat rating reductions.
	AccuracyPenalty int
	DefensePenalty  int
}

// EnrageMods returns the modifier set applied while an enemy is enraged.
func EnrageMods() EnrageModifiers {
	return EnrageModifiers{
		DamageMult:      1.25,
		SpeedBonus:      10,
		AccuracyPenalty: 10,
		DefensePenalty:  5,
	}
}

// EnemyEnraged reports whether the enemy's enrage has fired.
func (s *Session) EnemyEnraged() bool { return s.enemyEnraged }

// checkEnrage fires the enemy's one-shot enrage when its HP fraction drops
// to its class threshold. Once fired it persists for the rest of the fight.
func (s *Session) checkEnrage() {
	if s.enemyEnraged || !s.foe.Alive() {
		return
	}
	if s.foe.HPFraction() <= s.class.EnrageAt() {
		s.enemyEnraged = true
		s.appendLog("%s flies into a rage", s.foe.Name())
	}
}
