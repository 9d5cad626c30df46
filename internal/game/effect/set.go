package effect

import "fmt"

// Per-turn resource drains tied to specific effect kinds.
const (
	// PoisonStaminaDrain is the stamina lost per poison tick on top of its
	// damage.
	PoisonStaminaDrain = 3
	// CrippleStaminaDrain is the stamina lost per turn while crippled.
	CrippleStaminaDrain = 2
)

// Active is one status effect currently applied to a combatant.
type Active struct {
	Kind      Kind
	Remaining int // turns left; decremented by Tick (Stun: by the skip instead)
	Power     int // per-tick damage for Bleed/Poison; unused otherwise
}

// Set tracks all effects active on one combatant. It is not safe for
// concurrent use; the fight engine owns it single-threaded.
type Set struct {
	active map[Kind]*Active
}

// NewSet creates an empty effect Set.
func NewSet() *Set {
	return &Set{active: make(map[Kind]*Active)}
}

// Apply adds or refreshes an effect. Re-applying keeps the longer remaining
// duration and the higher power; effects do not stack counts.
//
// Precondition: kind must be valid and turns >= 1.
// Postcondition: Has(kind) is true; Remaining(kind) >= turns held before.
func (s *Set) Apply(kind Kind, turns, power int) error {
	if !kind.Valid() {
		return fmt.Errorf("effect: cannot apply invalid kind %d", kind)
	}
	if turns < 1 {
		return fmt.Errorf("effect: cannot apply %s for %d turns", kind, turns)
	}
	if existing, ok := s.active[kind]; ok {
		if turns > existing.Remaining {
			existing.Remaining = turns
		}
		if power > existing.Power {
			existing.Power = power
		}
		return nil
	}
	s.active[kind] = &Active{Kind: kind, Remaining: turns, Power: power}
	return nil
}

// Has reports whether kind is currently active.
func (s *Set) Has(kind Kind) bool {
	_, ok := s.active[kind]
	return ok
}

// Remaining returns the turns left on kind, or 0 when not active.
func (s *Set) Remaining(kind Kind) int {
	if a, ok := s.active[kind]; ok {
		return a.Remaining
	}
	return 0
}

// Power returns the per-tick power of kind, or 0 when not active.
func (s *Set) Power(kind Kind) int {
	if a, ok := s.active[kind]; ok {
		return a.Power
	}
	return 0
}

// Remove deletes kind from the set. Removing an absent kind is a no-op.
func (s *Set) Remove(kind Kind) {
	delete(s.active, kind)
}

// DecrementStun consumes one turn of stun and returns the turns remaining.
// Stun is decremented here, by the skipped action that consumes it, never by
// Tick; a 2-turn stun therefore swallows exactly two actions.
//
// Postcondition: Returns >= 0; the stun is removed when it reaches 0.
func (s *Set) DecrementStun() int {
	a, ok := s.active[Stun]
	if !ok {
		return 0
	}
	a.Remaining--
	if a.Remaining <= 0 {
		delete(s.active, Stun)
		return 0
	}
	return a.Remaining
}

// TickEvent records what one effect did during end-of-turn maintenance.
type TickEvent struct {
	Kind         Kind
	Damage       int  // HP lost to the tick (Bleed, Poison)
	StaminaDrain int  // stamina lost to the tick (Poison, Cripple)
	Expired      bool // true when the effect ran out this tick
}

// Tick advances every active effect by one turn in a fixed kind order,
// collecting periodic damage and drains, and removes expired effects.
// Stun does not decrement here (see DecrementStun).
//
// Postcondition: Returns one TickEvent per effect that was active, in
// deterministic order; expired effects are no longer in the set.
func (s *Set) Tick() []TickEvent {
	var events []TickEvent
	for _, kind := range allKinds {
		a, ok := s.active[kind]
		if !ok {
			continue
		}
		ev := TickEvent{Kind: kind}
		switch kind {
		case Bleed:
			ev.Damage = a.Power
		case Poison:
			ev.Damage = a.Power
			ev.StaminaDrain = PoisonStaminaDrain
		case Cripple:
			ev.StaminaDrain = CrippleStaminaDrain
		}
		if kind != Stun {
			a.Remaining--
			if a.Remaining <= 0 {
				ev.Expired = true
				delete(s.active, kind)
			}
		}
		events = append(events, ev)
	}
	return events
}

// ActiveKinds returns the currently active kinds in deterministic order.
func (s *Set) ActiveKinds() []Kind {
	var kinds []Kind
	for _, kind := range allKinds {
		if _, ok := s.active[kind]; ok {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// Len returns the number of active effects.
func (s *Set) Len() int {
	return len(s.active)
}
