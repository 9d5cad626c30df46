package effect

// Reducers fold a combatant's active effects into the numbers combat math
// consumes. The resolver queries these on demand; nothing here is applied
// automatically.

// AccuracyShift returns the net hit-chance adjustment from active effects:
// −0.15 while concussed, −0.05 while feared, +0.05 while inspired.
func AccuracyShift(s *Set) float64 {
	shift := 0.0
	if s.Has(Concuss) {
		shift -= 0.15
	}
	if s.Has(Fear) {
		shift -= 0.05
	}
	if s.Has(Inspired) {
		shift += 0.05
	}
	return shift
}

// DamageFactor returns the multiplicative damage adjustment from active
// effects: ×0.75 while disarmed, ×1.10 while inspired or enraged.
//
// Postcondition: Returns > 0.
func DamageFactor(s *Set) float64 {
	factor := 1.0
	if s.Has(Disarmed) {
		factor *= 0.75
	}
	if s.Has(Inspired) {
		factor *= 1.10
	}
	if s.Has(Enraged) {
		factor *= 1.10
	}
	return factor
}

// FocusGainFactor returns the multiplier applied to focus gains: halved
// while feared.
func FocusGainFactor(s *Set) float64 {
	if s.Has(Fear) {
		return 0.5
	}
	return 1.0
}

// StaminaRegenFactor returns the multiplier applied to end-of-turn stamina
// regeneration: halved while stunned.
func StaminaRegenFactor(s *Set) float64 {
	if s.Has(Stun) {
		return 0.5
	}
	return 1.0
}
