// Package effect defines the closed set of status effects a combatant can
// carry during a fight and the reducers that fold them into combat math.
// Kinds are a fixed enum, not string keys: adding an effect means adding a
// constant here and teaching the reducers about it, so the compiler sees
// every dispatch site.
package effect

// Kind identifies one status effect. The zero value (None) is intentionally
// not a valid active effect.
type Kind int

const (
	None Kind = iota
	Bleed
	Poison
	Stun
	Cripple
	Concuss
	Fear
	Disarmed
	Inspired
	Enraged
)

// allKinds lists every valid Kind in a fixed order. Set iteration walks this
// slice so that tick and log order is deterministic across runs.
var allKinds = []Kind{Bleed, Poison, Stun, Cripple, Concuss, Fear, Disarmed, Inspired, Enraged}

// String returns the human-readable effect label.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Bleed:
		return "bleed"
	case Poison:
		return "poison"
	case Stun:
		return "stun"
	case Cripple:
		return "cripple"
	case Concuss:
		return "concuss"
	case Fear:
		return "fear"
	case Disarmed:
		return "disarmed"
	case Inspired:
		return "inspired"
	case Enraged:
		return "enraged"
	default:
		return "unknown"
	}
}

// Valid reports whether k names a real effect (None excluded).
func (k Kind) Valid() bool {
	return k > None && k <= Enraged
}

// ParseKind maps a catalog label to its Kind. Unknown labels return
// (None, false) so loaders can fail loudly on content typos.
func ParseKind(label string) (Kind, bool) {
	for _, k := range allKinds {
		if k.String() == label {
			return k, true
		}
	}
	return None, false
}
