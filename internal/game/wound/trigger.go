package wound

// Trigger classifies the hit that may inflict a wound. The fight engine
// passes the attack kind; parry counters use TriggerCrit.
type Trigger int

const (
	TriggerLight Trigger = iota
	TriggerHeavy
	TriggerCrit
	TriggerSpecial
)

// String returns the lowercase label for the trigger.
func (t Trigger) String() string {
	switch t {
	case TriggerLight:
		return "light"
	case TriggerHeavy:
		return "heavy"
	case TriggerCrit:
		return "crit"
	case TriggerSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// critTriggerBonus is added when the triggering hit was a critical.
const critTriggerBonus = 0.15

// TriggerChance returns the probability that a crossed threshold inflicts a
// wound, given the kind of hit that crossed it.
//
// Postcondition: Returns a value in (0, 1).
func TriggerChance(t Trigger, wasCrit bool) float64 {
	var base float64
	switch t {
	case TriggerLight:
		base = 0.15
	case TriggerHeavy:
		base = 0.30
	case TriggerCrit:
		base = 0.45
	case TriggerSpecial:
		base = 0.35
	default:
		base = 0.15
	}
	if wasCrit {
		base += critTriggerBonus
	}
	return base
}
