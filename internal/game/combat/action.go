package combat

// ActionKind identifies what a combatant does on their turn.
// The zero value (ActionNone) is intentionally invalid as a choice; it also
// marks "no prior action" in Combatant.LastAction.
type ActionKind int

const (
	ActionNone ActionKind = iota // zero value; intentionally invalid
	ActionLight
	ActionHeavy
	ActionGuard
	ActionDodge
	ActionSpecial
	ActionItem
)

// String returns the snake_case name of the ActionKind.
func (k ActionKind) String() string {
	switch k {
	case ActionLight:
		return "light_attack"
	case ActionHeavy:
		return "heavy_attack"
	case ActionGuard:
		return "guard"
	case ActionDodge:
		return "dodge"
	case ActionSpecial:
		return "special"
	case ActionItem:
		return "item"
	case ActionNone:
		return "none"
	default:
		return "unknown"
	}
}

// Valid reports whether k is a choosable action.
func (k ActionKind) Valid() bool {
	return k > ActionNone && k <= ActionItem
}

// Offensive reports whether the action is an attack.
func (k ActionKind) Offensive() bool {
	return k == ActionLight || k == ActionHeavy || k == ActionSpecial
}

// Action is one chosen action with its parameters. Zone matters for
// attacks and guard; ItemID names the consumable for ActionItem.
type Action struct {
	Kind   ActionKind
	Zone   Zone
	ItemID string
}

// Baseline stamina costs, used when the loadout carries no weapon costs.
const (
	baseStaminaLight = 12
	baseStaminaHeavy = 25
	baseStaminaDodge = 8
	baseStaminaGuard = 5
)

// specialFocusCost is the focus price of a signature move.
const specialFocusCost = 30

// staminaCost returns the stamina price of kind for the given combatant,
// folding the weapon's own attack costs and the armor's penalty. Actions
// with a zero base cost stay free.
//
// Postcondition: Returns >= 0; >= 1 for actions with a nonzero base cost.
func staminaCost(kind ActionKind, c *Combatant) int {
	var base int
	switch kind {
	case ActionLight:
		base = baseStaminaLight
		if c.Loadout.StaminaLight > 0 {
			base = c.Loadout.StaminaLight
		}
	case ActionHeavy:
		base = baseStaminaHeavy
		if c.Loadout.StaminaHeavy > 0 {
			base = c.Loadout.StaminaHeavy
		}
	case ActionDodge:
		base = baseStaminaDodge
	case ActionGuard:
		base = baseStaminaGuard
	default:
		return 0
	}
	cost := base + c.Loadout.StaminaCostDelta
	if cost < 1 {
		cost = 1
	}
	return cost
}

// accuracyMult returns the to-hit multiplier for an attack kind. Heavy
// swings trade accuracy for damage.
func accuracyMult(kind ActionKind) float64 {
	if kind == ActionHeavy {
		return 0.85
	}
	return 1.0
}

// damageMult returns the attack kind's damage multiplier.
func damageMult(kind ActionKind) float64 {
	switch kind {
	case ActionHeavy:
		return 1.8
	case ActionSpecial:
		return 2.0
	default:
		return 1.0
	}
}

// focusGain returns the base focus credited for executing kind. The head
// zone bonus and the guard streak bonus are folded by the resolver.
func focusGain(kind ActionKind) int {
	switch kind {
	case ActionLight:
		return 8
	case ActionHeavy:
		return 12
	case ActionDodge:
		return 6
	default:
		return 0
	}
}

// Crowd hype adjustments.
const (
	hypeLight     = 2
	hypeHeavy     = 4
	hypeSpecial   = 8
	hypeItem      = -2
	hypeMiss      = -1
	hypeCrit      = 5
	hypeGuardBrk  = 8
	hypeParry     = 6
	hypeFocusFail = -5
)

// hypeGain returns the base hype adjustment for a landed action of kind.
func hypeGain(kind ActionKind) int {
	switch kind {
	case ActionLight:
		return hypeLight
	case ActionHeavy:
		return hypeHeavy
	case ActionSpecial:
		return hypeSpecial
	case ActionItem:
		return hypeItem
	default:
		return 0
	}
}
