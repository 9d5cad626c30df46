package combat

import "math"

const (
	// DefaultMaxPosture is the guard reservoir every fighter starts with.
	DefaultMaxPosture = 60
	// postureBreakRefill is the fraction of max posture restored after a
	// guard break.
	postureBreakRefill = 0.6
)

// Posture is the guard-durability reservoir. Blocked hits deplete it;
// reaching zero breaks the guard.
//
// Invariant: current stays within [0, max].
type Posture struct {
	current int
	max     int
}

// NewPosture creates a full reservoir of the given capacity.
// Precondition: max >= 1.
func NewPosture(max int) Posture {
	return Posture{current: max, max: max}
}

// Current returns the remaining posture.
func (p *Posture) Current() int { return p.current }

// Max returns the reservoir capacity.
func (p *Posture) Max() int { return p.max }

// Damage depletes the reservoir and reports whether the guard broke. On a
// break the reservoir refills to round(0.6 × max); the caller applies the
// stun.
//
// Precondition: amount >= 0.
// Postcondition: Returns true iff amount >= the posture held before the
// call; current is the refill value after a break.
func (p *Posture) Damage(amount int) bool {
	if amount < p.current {
		p.current -= amount
		return false
	}
	p.current = int(math.Round(postureBreakRefill * float64(p.max)))
	return true
}

// Regen restores posture, capped at max.
// Precondition: amount >= 0.
func (p *Posture) Regen(amount int) {
	p.current += amount
	if p.current > p.max {
		p.current = p.max
	}
}
