package combat

import (
	"math"

	"github.com/ironmark-games/ironmark/internal/game/effect"
	"github.com/ironmark-games/ironmark/internal/game/wound"
)

const (
	staminaRegenPerTurn = 10
	// Posture recovers each turn, at half rate while holding a guard.
	postureRegenPerTurn  = 8
	postureRegenGuarding = 4
)

// NextTurn runs end-of-turn maintenance for the side that just acted and
// hands the turn over. The round counter advances when the turn returns to
// the player, and both sides' armor erosion decays one stack on that same
// boundary. An unused parry window closes.
//
// Precondition: The session is in PhaseResult.
// Postcondition: Either the session is back in PhaseSelectAction for the
// other side, or a maintenance tick finished the fight and the phase is
// PhaseEnd.
func (s *Session) NextTurn() error {
	if s.winnerSet {
		return ErrFightOver
	}
	if s.phase != PhaseResult {
		return ErrWrongPhase
	}

	c := s.combatant(s.turn)
	s.maintain(c)
	if !c.Alive() {
		s.setWinner(s.turn.Opponent())
		return nil
	}
	s.checkEnrage()

	s.turn = s.turn.Opponent()
	if s.turn == SidePlayer {
		s.round++
		s.player.ArmorBreak.Decay()
		s.foe.ArmorBreak.Decay()
	}
	s.parryOpen = false
	s.phase = PhaseSelectAction
	return nil
}

// maintain applies end-of-turn upkeep to the combatant whose turn is
// closing: stamina and posture regenerate, active effects tick with
// synthetic log entries, wound bleeding lands, a passive turn sheds
// momentum, and a stance not refreshed by guarding clears.
func (s *Session) maintain(c *Combatant) {
	regen := int(math.Round(staminaRegenPerTurn * effect.StaminaRegenFactor(c.Effects)))
	regen -= wound.Sum(c.Wounds, wound.StaminaPenalty)
	if regen > 0 {
		c.RegainStamina(regen)
	}

	if c.GuardActive {
		c.Posture.Regen(postureRegenGuarding)
	} else {
		c.Posture.Regen(postureRegenPerTurn)
	}

	for _, ev := range c.Effects.Tick() {
		if ev.Damage > 0 {
			c.ApplyDamage(ev.Damage)
			s.appendLog("%s loses %d to %s", c.Name(), ev.Damage, ev.Kind)
		}
		if ev.StaminaDrain > 0 {
			c.SpendStamina(ev.StaminaDrain)
			s.appendLog("%s's %s drains %d stamina", c.Name(), ev.Kind, ev.StaminaDrain)
		}
		if ev.Expired {
			s.appendLog("%s's %s fades", c.Name(), ev.Kind)
		}
	}

	if dot := wound.Sum(c.Wounds, wound.BleedDOT); dot > 0 {
		c.ApplyDamage(dot)
		s.appendLog("%s bleeds %d from open wounds", c.Name(), dot)
	}

	// A passive turn pays a second stack on top of the one dropped at
	// resolution.
	if c.LastAction == ActionGuard || c.LastAction == ActionDodge {
		c.Momentum.DropStacks(1)
	}

	if c.LastAction != ActionGuard {
		c.clearGuard()
	}
}
