package combat

import (
	"fmt"
	"math"

	"github.com/ironmark-games/ironmark/internal/game/effect"
	"github.com/ironmark-games/ironmark/internal/game/rng"
	"github.com/ironmark-games/ironmark/internal/game/wound"
)

// Formula constants for action resolution.
const (
	momentumHitBonus     = 0.02
	momentumDamageBonus  = 0.02
	momentumCritBonus    = 0.01
	specialMomentumBonus = 0.03

	crippledLegsBonus  = 0.10
	lightFollowupBonus = 0.10
	heavyFollowupBonus = 0.05
	synergyCritChance  = 0.10

	blockFactor        = 0.6
	postureHeavyFactor = 0.8
	postureOtherFactor = 0.4
	defenseFactor      = 0.3

	guardBreakStunTurns = 2

	injuryPerDamage = 0.5
	injuryCritBonus = 10

	zoneStatusChance    = 0.2
	zoneStatusCritBonus = 0.1
	zoneStatusTurns     = 3

	legStaminaShred = 5
	headFocusBonus  = 5

	guardFocusPerStreak = 4
	guardFocusStreakCap = 3

	defaultProcPower = 2
	itemHeal         = 25

	specialSpreadLo = 0.9
	specialSpreadHi = 1.2
)

// ActionResult holds the immutable outcome of one resolved action.
type ActionResult struct {
	// Kind is the action that was attempted.
	Kind ActionKind
	// Success is true when an attack landed or a non-attack executed;
	// false on a miss, a stun skip, or a resource rejection.
	Success bool
	// Damage is the HP removed from the target after block and defense.
	Damage int
	// DamageBlocked is the portion absorbed by a matching guard.
	DamageBlocked int
	// TargetZone is the zone the action addressed.
	TargetZone Zone
	// Critical is true when the hit was promoted to a critical.
	Critical bool
	// PerfectParry is true only for results produced by AttemptParry.
	PerfectParry bool
	// CounterDamage is the damage a perfect parry returned to the attacker.
	CounterDamage int
	// StatusApplied lists effects inflicted on the target by this action.
	StatusApplied []effect.Kind
	// StaminaCost is the stamina actually deducted from the actor.
	StaminaCost int
	// FocusGained and FocusSpent are this action's focus movements.
	FocusGained int
	FocusSpent  int
	// HypeGained is the net crowd hype change, after clamping.
	HypeGained int
	// Message is the human-readable narration of the outcome.
	Message string
}

// resolveFunc is the uniform signature every action kind resolves through.
type resolveFunc func(s *Session, actor, target *Combatant, act Action) ActionResult

// resolvers dispatches an action kind to its resolution function.
var resolvers = map[ActionKind]resolveFunc{
	ActionLight:   resolveAttack,
	ActionHeavy:   resolveAttack,
	ActionGuard:   resolveGuard,
	ActionDodge:   resolveDodge,
	ActionSpecial: resolveSpecial,
	ActionItem:    resolveItem,
}

// resolveAction resolves one action for actor against target, mutating both
// in place.
//
// Order of checks: a stunned actor skips entirely (stun timer consumed,
// nothing spent, turn used); insufficient stamina fails with an exhausted
// message and spends nothing; a special without the focus fails and spends
// nothing. Only then is stamina deducted and the kind dispatched.
//
// Precondition: act.Kind is valid and the fight is undecided.
// Postcondition: Returns the result and whether the turn was used. Resource
// rejections leave the turn unused so the caller can re-prompt; the winner
// is set iff a side reached 0 HP.
func (s *Session) resolveAction(actor, target *Combatant, act Action) (ActionResult, bool) {
	if actor.Effects.Has(effect.Stun) {
		actor.Effects.DecrementStun()
		actor.LastAction = ActionNone
		res := ActionResult{
			Kind:       act.Kind,
			TargetZone: act.Zone,
			Message:    fmt.Sprintf("%s is stunned and cannot act", actor.Name()),
		}
		s.appendLog("%s", res.Message)
		return res, true
	}

	cost := staminaCost(act.Kind, actor)
	if actor.CurrentStamina < cost {
		actor.LastAction = ActionNone
		res := ActionResult{
			Kind:       act.Kind,
			TargetZone: act.Zone,
			Message:    fmt.Sprintf("%s is too exhausted for a %s", actor.Name(), act.Kind),
		}
		s.appendLog("%s", res.Message)
		return res, false
	}

	if act.Kind == ActionSpecial && actor.CurrentFocus < specialFocusCost {
		actor.LastAction = ActionNone
		res := ActionResult{
			Kind:       act.Kind,
			TargetZone: act.Zone,
			HypeGained: s.addHype(hypeFocusFail),
			Message:    fmt.Sprintf("%s lacks the focus for a signature move", actor.Name()),
		}
		s.appendLog("%s", res.Message)
		return res, false
	}

	actor.SpendStamina(cost)
	res := resolvers[act.Kind](s, actor, target, act)
	res.StaminaCost = cost
	actor.LastAction = act.Kind

	if !target.Alive() {
		s.setWinner(actor.Side)
	} else if !actor.Alive() {
		s.setWinner(target.Side)
	}
	return res, true
}

// hitChance computes the chance of act landing, folding evasion, status
// shifts, momentum, follow-up bonuses, and the enrage accuracy penalty.
func hitChance(s *Session, actor, target *Combatant, act Action) float64 {
	chance := accuracyMult(act.Kind) * float64(actor.EffectiveAccuracy()) / 100
	if target.LastAction == ActionDodge {
		chance -= float64(target.Snapshot.Evasion) / 100
	}
	chance += effect.AccuracyShift(actor.Effects)
	if target.Effects.Has(effect.Cripple) && act.Zone == ZoneLegs {
		chance += crippledLegsBonus
	}
	chance += momentumHitBonus * float64(actor.Momentum.Stacks())
	if act.Kind == ActionLight && actor.LastAction == ActionGuard {
		chance += lightFollowupBonus
	}
	if act.Kind == ActionHeavy && actor.LastAction == ActionDodge {
		chance += heavyFollowupBonus
	}
	if actor.Side == SideEnemy && s.enemyEnraged {
		chance -= float64(EnrageMods().AccuracyPenalty) / 100
	}
	return chance
}

// zoneStatus returns the status effect linked to striking a zone.
func zoneStatus(z Zone) (effect.Kind, bool) {
	switch z {
	case ZoneHead:
		return effect.Concuss, true
	case ZoneLegs:
		return effect.Cripple, true
	default:
		return effect.None, false
	}
}

// procPower returns the periodic power carried by a weapon-proc effect.
func procPower(kind effect.Kind) int {
	if kind == effect.Bleed || kind == effect.Poison {
		return defaultProcPower
	}
	return 0
}

// resolveAttack handles light and heavy attacks.
//
// Draw order is fixed for replay: hit roll, crit roll, synergy roll, zone
// status roll, weapon proc roll, wound stagger roll, then wound threshold
// rolls.
func resolveAttack(s *Session, actor, target *Combatant, act Action) ActionResult {
	res := ActionResult{Kind: act.Kind, TargetZone: act.Zone}

	if !rng.Chance(s.src, hitChance(s, actor, target, act)) {
		actor.Momentum.DropStacks(1)
		res.HypeGained = s.addHype(hypeMiss)
		res.Message = fmt.Sprintf("%s swings at %s's %s and misses", actor.Name(), target.Name(), act.Zone)
		s.appendLog("%s", res.Message)
		return res
	}

	dmg := float64(actor.EffectiveAttack()) * damageMult(act.Kind) * act.Zone.DamageMult()
	dmg *= 1 + momentumDamageBonus*float64(actor.Momentum.Stacks())
	dmg *= effect.DamageFactor(actor.Effects)
	if actor.Side == SidePlayer {
		dmg *= s.zoneWeakness(act.Zone)
	}
	if actor.Side == SideEnemy && s.enemyEnraged {
		dmg *= EnrageMods().DamageMult
	}

	critChance := float64(actor.Snapshot.CritChance)/100 + act.Zone.CritBonus() +
		momentumCritBonus*float64(actor.Momentum.Stacks())
	crit := rng.Chance(s.src, critChance)
	if !crit && (actor.LastAction == ActionDodge || actor.LastAction == ActionGuard) {
		crit = rng.Chance(s.src, synergyCritChance)
	}
	if crit {
		dmg *= float64(actor.Snapshot.CritDamage) / 100
	}

	var blocked int
	var broke bool
	remaining := dmg
	if target.GuardActive && target.GuardZone == act.Zone {
		blocked = int(math.Round(dmg * blockFactor))
		remaining = dmg - float64(blocked)
		factor := postureOtherFactor
		if act.Kind == ActionHeavy {
			factor = postureHeavyFactor
		}
		if target.Posture.Damage(int(math.Round(factor * remaining))) {
			broke = true
		}
	}

	def := float64(target.EffectiveDefense())
	if target.Side == SideEnemy && s.enemyEnraged {
		def -= float64(EnrageMods().DefensePenalty)
		if def < 0 {
			def = 0
		}
	}
	final := int(math.Round(remaining - def*defenseFactor))
	if final < 1 {
		final = 1
	}

	target.ApplyDamage(final)
	target.InjuryMeter += injuryPerDamage * float64(final)
	if crit {
		target.InjuryMeter += injuryCritBonus
	}
	if target.InjuryMeter > 100 {
		target.InjuryMeter = 100
	}
	if act.Kind == ActionHeavy {
		n := 1
		if crit {
			n = 2
		}
		target.ArmorBreak.Add(n)
	}

	verb := "strikes"
	if crit {
		verb = "critically strikes"
	}
	res.Message = fmt.Sprintf("%s %s %s's %s for %d", actor.Name(), verb, target.Name(), act.Zone, final)
	if blocked > 0 {
		res.Message += fmt.Sprintf(" (%d blocked)", blocked)
	}
	s.appendLog("%s", res.Message)

	if broke {
		_ = target.Effects.Apply(effect.Stun, guardBreakStunTurns, 0)
		target.clearGuard()
		res.StatusApplied = append(res.StatusApplied, effect.Stun)
		res.HypeGained += s.addHype(hypeGuardBrk)
		s.appendLog("%s's guard shatters", target.Name())
	}

	if kind, ok := zoneStatus(act.Zone); ok {
		chance := zoneStatusChance
		if crit {
			chance += zoneStatusCritBonus
		}
		chance *= 1 - target.Loadout.Resistance(kind)
		if rng.Chance(s.src, chance) {
			_ = target.Effects.Apply(kind, zoneStatusTurns, 0)
			res.StatusApplied = append(res.StatusApplied, kind)
			s.appendLog("%s is %sed", target.Name(), kind)
		}
	}
	if act.Zone == ZoneLegs {
		target.SpendStamina(legStaminaShred)
	}

	if actor.Loadout.ProcEffect != effect.None {
		chance := actor.Loadout.ProcChance * (1 - target.Loadout.Resistance(actor.Loadout.ProcEffect))
		if rng.Chance(s.src, chance) {
			kind := actor.Loadout.ProcEffect
			_ = target.Effects.Apply(kind, actor.Loadout.ProcTurns, procPower(kind))
			res.StatusApplied = append(res.StatusApplied, kind)
			s.appendLog("%s's %s leaves %s %sing", actor.Name(), actor.Loadout.WeaponName, target.Name(), kind)
		}
	}

	if pct := wound.Sum(target.Wounds, wound.StunChance); pct > 0 {
		if rng.Chance(s.src, float64(pct)/100) {
			_ = target.Effects.Apply(effect.Stun, 1, 0)
			res.StatusApplied = append(res.StatusApplied, effect.Stun)
			s.appendLog("%s staggers from old wounds", target.Name())
		}
	}

	gain := focusGain(act.Kind)
	if act.Zone == ZoneHead {
		gain += headFocusBonus
	}
	res.FocusGained = actor.GainFocus(gain)
	res.HypeGained += s.addHype(hypeGain(act.Kind))
	if crit {
		res.HypeGained += s.addHype(hypeCrit)
	}

	actor.Momentum.GainStacks(1)
	target.Momentum.DropStacks(1)

	trig := wound.TriggerLight
	if act.Kind == ActionHeavy {
		trig = wound.TriggerHeavy
	}
	s.checkForWounds(target, trig, crit)

	res.Success = true
	res.Damage = final
	res.DamageBlocked = blocked
	res.Critical = crit
	return res
}

// resolveGuard sets the guard stance and pays out the streak focus.
func resolveGuard(s *Session, actor, _ *Combatant, act Action) ActionResult {
	actor.GuardActive = true
	actor.GuardZone = act.Zone
	actor.ConsecutiveGuards++
	streak := actor.ConsecutiveGuards
	if streak > guardFocusStreakCap {
		streak = guardFocusStreakCap
	}
	gained := actor.GainFocus(guardFocusPerStreak * streak)
	actor.Momentum.DropStacks(1)

	res := ActionResult{
		Kind:        ActionGuard,
		Success:     true,
		TargetZone:  act.Zone,
		FocusGained: gained,
		Message:     fmt.Sprintf("%s raises a guard over his %s", actor.Name(), act.Zone),
	}
	s.appendLog("%s", res.Message)
	return res
}

// resolveDodge drops any guard and arms the evasion bonus the opponent's
// next attack consults through LastAction.
func resolveDodge(s *Session, actor, _ *Combatant, act Action) ActionResult {
	actor.clearGuard()
	actor.Momentum.DropStacks(1)
	gained := actor.GainFocus(focusGain(ActionDodge))

	res := ActionResult{
		Kind:        ActionDodge,
		Success:     true,
		TargetZone:  act.Zone,
		FocusGained: gained,
		Message:     fmt.Sprintf("%s slips into a dodging stance", actor.Name()),
	}
	s.appendLog("%s", res.Message)
	return res
}

// resolveSpecial executes a signature move. It always hits, ignores guard
// and posture, and spreads its damage by a uniform roll.
func resolveSpecial(s *Session, actor, target *Combatant, act Action) ActionResult {
	res := ActionResult{Kind: ActionSpecial, TargetZone: act.Zone}

	actor.CurrentFocus -= specialFocusCost
	res.FocusSpent = specialFocusCost

	dmg := float64(actor.EffectiveAttack()) * damageMult(ActionSpecial)
	dmg *= 1 + specialMomentumBonus*float64(actor.Momentum.Stacks())
	dmg *= effect.DamageFactor(actor.Effects)
	if actor.Side == SidePlayer {
		dmg *= s.zoneWeakness(act.Zone)
	}
	if actor.Side == SideEnemy && s.enemyEnraged {
		dmg *= EnrageMods().DamageMult
	}
	dmg *= rng.Between(s.src, specialSpreadLo, specialSpreadHi)

	def := float64(target.EffectiveDefense())
	if target.Side == SideEnemy && s.enemyEnraged {
		def -= float64(EnrageMods().DefensePenalty)
		if def < 0 {
			def = 0
		}
	}
	final := int(math.Round(dmg - def*defenseFactor))
	if final < 1 {
		final = 1
	}

	target.ApplyDamage(final)
	target.InjuryMeter += injuryPerDamage * float64(final)
	if target.InjuryMeter > 100 {
		target.InjuryMeter = 100
	}
	target.ArmorBreak.Add(2)

	actor.SignatureUses++
	actor.Momentum.GainStacks(2)
	target.Momentum.DropStacks(2)

	res.Message = fmt.Sprintf("%s unleashes a signature move on %s for %d", actor.Name(), target.Name(), final)
	s.appendLog("%s", res.Message)
	res.HypeGained = s.addHype(hypeSpecial)

	s.checkForWounds(target, wound.TriggerSpecial, false)

	res.Success = true
	res.Damage = final
	return res
}

// resolveItem applies a flat heal and resets the actor's momentum.
func resolveItem(s *Session, actor, _ *Combatant, act Action) ActionResult {
	before := actor.CurrentHP
	actor.Heal(itemHeal)
	actor.Momentum.Reset()

	name := act.ItemID
	if name == "" {
		name = "a tonic"
	}
	res := ActionResult{
		Kind:       ActionItem,
		Success:    true,
		TargetZone: act.Zone,
		HypeGained: s.addHype(hypeItem),
		Message:    fmt.Sprintf("%s swigs %s and recovers %d", actor.Name(), name, actor.CurrentHP-before),
	}
	s.appendLog("%s", res.Message)
	return res
}
