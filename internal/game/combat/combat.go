// Package combat implements the fight-resolution engine for Ironmark. A
// Session owns one fight between the player's fighter and an enemy: it
// resolves one chosen action at a time, advances the accumulating fight
// state (wounds, posture, momentum, armor erosion, adrenaline, enrage), and
// detects victory. The engine performs no I/O; callers drive the state
// machine explicitly and randomness flows through an injected rng.Source.
package combat

import "errors"

var (
	// ErrFightOver rejects calls made after a winner has been decided.
	ErrFightOver = errors.New("combat: fight already decided")
	// ErrWrongPhase rejects calls that do not match the current phase.
	ErrWrongPhase = errors.New("combat: call does not match the current phase")
	// ErrNoParryWindow rejects parry attempts while no window is open.
	ErrNoParryWindow = errors.New("combat: no parry window is open")
	// ErrAdrenalineUnavailable rejects adrenaline use above the HP
	// threshold or after it has been spent.
	ErrAdrenalineUnavailable = errors.New("combat: adrenaline is not available")
)

// Side identifies one of the two fight participants.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// String returns the lowercase label for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}

// Zone is the targeting dimension of an attack or guard.
type Zone int

const (
	ZoneHead Zone = iota
	ZoneBody
	ZoneLegs
)

// String returns the lowercase label for the zone.
func (z Zone) String() string {
	switch z {
	case ZoneHead:
		return "head"
	case ZoneBody:
		return "body"
	case ZoneLegs:
		return "legs"
	default:
		return "unknown"
	}
}

// DamageMult returns the zone's damage multiplier.
func (z Zone) DamageMult() float64 {
	switch z {
	case ZoneHead:
		return 1.2
	case ZoneLegs:
		return 0.9
	default:
		return 1.0
	}
}

// CritBonus returns the additive crit chance bonus for striking the zone.
func (z Zone) CritBonus() float64 {
	if z == ZoneHead {
		return 0.05
	}
	return 0
}

// Phase is the step of the per-turn state machine.
type Phase int

const (
	PhaseSelectAction Phase = iota
	PhaseSelectTarget
	PhaseExecute
	PhaseResult
	PhaseEnd
)

// String returns the snake_case label for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSelectAction:
		return "select_action"
	case PhaseSelectTarget:
		return "select_target"
	case PhaseExecute:
		return "execute"
	case PhaseResult:
		return "result"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// LogEntry is one line of the fight's ordered log.
type LogEntry struct {
	// Round is the round the entry was appended in.
	Round int
	// Actor is the side whose turn produced the entry.
	Actor Side
	// Message is the human-readable narration.
	Message string
}
