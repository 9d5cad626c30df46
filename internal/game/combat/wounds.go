package combat

import (
	"github.com/ironmark-games/ironmark/internal/game/rng"
	"github.com/ironmark-games/ironmark/internal/game/wound"
)

// checkForWounds walks the HP thresholds in descending order after target's
// HP changed and rolls a wound for every threshold crossed for the first
// time. Crossing is judged against the lowest HP ever reached, so healing
// back above a line never re-arms it.
//
// Each threshold is marked crossed before its roll; a failed roll still
// consumes the threshold for the rest of the fight. One large hit can cross
// several thresholds and inflict several wounds in a single call.
//
// Postcondition: Returns the wounds inflicted by this check, possibly none;
// every returned wound is already appended to target.Wounds.
func (s *Session) checkForWounds(target *Combatant, trig wound.Trigger, wasCrit bool) []*wound.Template {
	var inflicted []*wound.Template
	lowest := float64(target.LowestHP) / float64(target.Snapshot.MaxHP) * 100
	for _, th := range wound.Thresholds {
		if lowest > float64(th.Percent) {
			continue
		}
		if target.CrossedThreshold(th.Percent) {
			continue
		}
		target.markThreshold(th.Percent)
		if !rng.Chance(s.src, wound.TriggerChance(trig, wasCrit)) {
			continue
		}
		t := s.wounds.RandomBySeverity(s.src, th.Severity)
		target.Wounds = append(target.Wounds, t)
		inflicted = append(inflicted, t)
		s.appendLog("%s takes a %s wound: %s", target.Name(), t.Severity, t.Name)
	}
	return inflicted
}
