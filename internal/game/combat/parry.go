package combat

import (
	"fmt"
	"math"

	"github.com/ironmark-games/ironmark/internal/game/wound"
)

const (
	// parryWindow is the timing fraction under which a parry is perfect.
	parryWindow = 0.15
	// parryFocusReward is the focus granted for a perfect parry.
	parryFocusReward = 15
	// parryCounterFactor scales the parrier's attack into counter damage.
	parryCounterFactor = 0.5
)

// OpenParryWindow arms the parry window for the incoming attack. The engine
// owns no clock; the caller opens the window when its own timing mechanism
// starts and supplies the measured timing to AttemptParry. NextTurn closes
// an unused window.
func (s *Session) OpenParryWindow() error {
	if s.winnerSet {
		return ErrFightOver
	}
	s.parryOpen = true
	return nil
}

// ParryWindowOpen reports whether a parry window is currently armed.
func (s *Session) ParryWindowOpen() bool { return s.parryOpen }

// AttemptParry resolves a parry attempt by side against the incoming
// attack. timing is the caller-measured reaction fraction in [0, 1]; below
// parryWindow the parry is perfect: the attack is considered turned aside
// (the caller must not resolve it), the parrier gains focus and a lifetime
// perfect-parry count, and counter damage of round(0.5 × attack) lands
// directly on the opponent, bypassing guard and defense.
//
// Precondition: A parry window is open and the fight is undecided.
// Postcondition: ok is false when the timing missed; the caller falls back
// to resolving the attack normally. The window is consumed either way.
func (s *Session) AttemptParry(side Side, timing float64) (ActionResult, bool, error) {
	if s.winnerSet {
		return ActionResult{}, false, ErrFightOver
	}
	if !s.parryOpen {
		return ActionResult{}, false, ErrNoParryWindow
	}
	if timing < 0 || timing > 1 {
		return ActionResult{}, false, fmt.Errorf("combat: parry timing must be in [0,1], got %v", timing)
	}
	s.parryOpen = false
	if timing >= parryWindow {
		return ActionResult{}, false, nil
	}

	parrier := s.combatant(side)
	attacker := s.combatant(side.Opponent())

	counter := int(math.Round(parryCounterFactor * float64(parrier.EffectiveAttack())))
	attacker.ApplyDamage(counter)
	attacker.InjuryMeter += injuryPerDamage * float64(counter)
	if attacker.InjuryMeter > 100 {
		attacker.InjuryMeter = 100
	}

	parrier.PerfectParries++
	gained := parrier.GainFocus(parryFocusReward)

	res := ActionResult{
		Success:       true,
		PerfectParry:  true,
		CounterDamage: counter,
		FocusGained:   gained,
		HypeGained:    s.addHype(hypeParry),
		Message:       fmt.Sprintf("%s reads the blow and turns it aside, countering for %d", parrier.Name(), counter),
	}
	s.appendLog("%s", res.Message)

	s.checkForWounds(attacker, wound.TriggerCrit, false)
	if !attacker.Alive() {
		s.setWinner(side)
	}
	s.checkEnrage()
	return res, true, nil
}
