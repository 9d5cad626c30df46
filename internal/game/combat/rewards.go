package combat

import (
	"math"

	"github.com/ironmark-games/ironmark/internal/game/rng"
	"github.com/ironmark-games/ironmark/internal/game/wound"
)

// Reward scaling. League tier multiplies the base take; the crowd's final
// hype adds up to half again on top.
const (
	rewardBaseGold = 25
	rewardBaseFame = 10
	rewardBaseXP   = 40

	loserGoldFactor = 0.25
	loserFameFactor = 0.25
	loserXPFactor   = 0.5
)

// Injury-roll shaping. Winners only risk a persistent injury in proportion
// to how badly the fight chewed them up; losers always carry one out.
const (
	winnerInjuryChanceCap = 0.5
	winnerMajorMeter      = 75
	loserCriticalMeter    = 90
)

// Rewards is the post-fight payout handed to the progression layer.
type Rewards struct {
	Gold int
	Fame int
	XP   int
}

// CalculateRewards computes the player's payout for the decided fight,
// scaled by league tier and final hype. Losing still pays a cut.
//
// Precondition: The fight is decided; tier >= 1 (lower values read as 1).
func (s *Session) CalculateRewards(tier int) (Rewards, error) {
	if !s.winnerSet {
		return Rewards{}, ErrWrongPhase
	}
	if tier < 1 {
		tier = 1
	}
	mult := float64(tier) * (1 + float64(s.hype)/(2*maxHype))

	gold := rewardBaseGold * mult
	fame := rewardBaseFame * mult
	xp := rewardBaseXP * mult
	if s.winner != SidePlayer {
		gold *= loserGoldFactor
		fame *= loserFameFactor
		xp *= loserXPFactor
	}
	return Rewards{
		Gold: int(math.Round(gold)),
		Fame: int(math.Round(fame)),
		XP:   int(math.Round(xp)),
	}, nil
}

// RollForInjury rolls whether side carries a persistent injury out of the
// decided fight. The loser always does, critical when the fight was
// brutal; the winner's odds and severity scale with the accumulated injury
// meter, and nil means they walked away clean.
//
// Precondition: The fight is decided.
func (s *Session) RollForInjury(side Side) (*wound.Injury, error) {
	if !s.winnerSet {
		return nil, ErrWrongPhase
	}
	c := s.combatant(side)
	source := s.combatant(side.Opponent()).Name()

	if side == s.winner {
		chance := c.InjuryMeter / 100 * winnerInjuryChanceCap
		if !rng.Chance(s.src, chance) {
			return nil, nil
		}
		severity := wound.Minor
		if c.InjuryMeter >= winnerMajorMeter {
			severity = wound.Major
		}
		t := s.wounds.RandomBySeverity(s.src, severity)
		inj := wound.InjuryFromTemplate(t, source)
		return &inj, nil
	}

	severity := wound.Major
	if c.InjuryMeter >= loserCriticalMeter {
		severity = wound.Critical
	}
	t := s.wounds.RandomBySeverity(s.src, severity)
	inj := wound.InjuryFromTemplate(t, source)
	return &inj, nil
}
