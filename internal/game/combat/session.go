package combat

import (
	"fmt"

	"github.com/ironmark-games/ironmark/internal/game/enemy"
	"github.com/ironmark-games/ironmark/internal/game/fighter"
	"github.com/ironmark-games/ironmark/internal/game/rng"
	"github.com/ironmark-games/ironmark/internal/game/wound"
)

const (
	// baseHype is the crowd's investment when the fighters step in.
	baseHype = 30
	// maxHype caps the crowd meter.
	maxHype = 100
)

// Recorder receives every log entry as the session appends it. Recorders
// observe; they must not drive the session from inside Record.
type Recorder interface {
	Record(LogEntry)
}

// Config assembles everything one fight needs.
type Config struct {
	// Player is the managed fighter's stat snapshot, before loadout.
	Player        fighter.Snapshot
	PlayerLoadout fighter.Loadout

	// Enemy supplies the opposing stats, zone weaknesses, and the enrage
	// threshold. Required.
	Enemy        *enemy.Class
	EnemyLoadout fighter.Loadout

	// Wounds is the template catalog thresholds draw from. Defaults to the
	// built-in catalog when nil.
	Wounds *wound.Catalog

	// Source drives every chance roll. Required; fix the seed to replay a
	// fight.
	Source rng.Source

	// Recorder, when set, is tapped for every log entry.
	Recorder Recorder

	// BaseHype overrides the starting crowd hype when > 0.
	BaseHype int
}

// Session is the aggregate root of one fight. It owns both combatant
// states and the turn machinery, and lives exactly one fight; abandon it
// between turns with no teardown.
//
// Invariant: once a winner is set the phase is PhaseEnd permanently and
// every mutating call fails with ErrFightOver.
type Session struct {
	player *Combatant
	foe    *Combatant
	class  *enemy.Class

	src      rng.Source
	wounds   *wound.Catalog
	recorder Recorder

	round int
	turn  Side
	phase Phase
	hype  int

	log        []LogEntry
	lastResult ActionResult

	parryOpen bool

	winnerSet bool
	winner    Side

	adrenalineUsed bool
	enemyEnraged   bool
}

// NewSession builds the fight-start state for both sides and picks the
// first turn by comparing speed, ties favoring the player.
//
// Postcondition: The session is in PhaseSelectAction, round 1, with the
// opening entry already logged.
func NewSession(cfg Config) (*Session, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("combat: rng source is required")
	}
	if cfg.Enemy == nil {
		return nil, fmt.Errorf("combat: enemy class is required")
	}
	if err := cfg.Player.Validate(); err != nil {
		return nil, fmt.Errorf("combat: player: %w", err)
	}
	foeSnap := cfg.Enemy.Snapshot()
	if err := foeSnap.Validate(); err != nil {
		return nil, fmt.Errorf("combat: enemy: %w", err)
	}

	wounds := cfg.Wounds
	if wounds == nil {
		wounds = wound.DefaultCatalog()
	}
	hype := baseHype
	if cfg.BaseHype > 0 {
		hype = cfg.BaseHype
		if hype > maxHype {
			hype = maxHype
		}
	}

	s := &Session{
		player:   newCombatant(SidePlayer, cfg.Player, cfg.PlayerLoadout),
		foe:      newCombatant(SideEnemy, foeSnap, cfg.EnemyLoadout),
		class:    cfg.Enemy,
		src:      cfg.Source,
		wounds:   wounds,
		recorder: cfg.Recorder,
		round:    1,
		phase:    PhaseSelectAction,
		hype:     hype,
	}
	if s.foe.EffectiveSpeed() > s.player.EffectiveSpeed() {
		s.turn = SideEnemy
	}
	s.appendLog("%s steps into the pit against %s", s.player.Name(), s.foe.Name())
	return s, nil
}

// PlayTurn resolves one chosen action for the side whose turn it is,
// walking the per-turn phases in one synchronous call. The target zone
// rides on the Action, so the select-target step reduces to validating it.
//
// An executed or stun-skipped turn lands in PhaseResult; call NextTurn to
// run end-of-turn maintenance and hand the turn over. A resource rejection
// returns to PhaseSelectAction so the same side can pick again.
//
// Precondition: The session is in PhaseSelectAction and undecided.
func (s *Session) PlayTurn(act Action) (ActionResult, error) {
	if s.winnerSet {
		return ActionResult{}, ErrFightOver
	}
	if s.phase != PhaseSelectAction {
		return ActionResult{}, ErrWrongPhase
	}
	if !act.Kind.Valid() {
		return ActionResult{}, fmt.Errorf("combat: invalid action kind %d", act.Kind)
	}

	s.phase = PhaseSelectTarget
	if act.Zone < ZoneHead || act.Zone > ZoneLegs {
		s.phase = PhaseSelectAction
		return ActionResult{}, fmt.Errorf("combat: invalid target zone %d", act.Zone)
	}

	s.phase = PhaseExecute
	actor := s.combatant(s.turn)
	target := s.combatant(s.turn.Opponent())
	res, used := s.resolveAction(actor, target, act)
	s.lastResult = res
	s.checkEnrage()
	if !s.winnerSet {
		if used {
			s.phase = PhaseResult
		} else {
			s.phase = PhaseSelectAction
		}
	}
	return res, nil
}

// combatant returns the state for side.
func (s *Session) combatant(side Side) *Combatant {
	if side == SidePlayer {
		return s.player
	}
	return s.foe
}

// Player returns the player's combatant state.
func (s *Session) Player() *Combatant { return s.player }

// Enemy returns the enemy's combatant state.
func (s *Session) Enemy() *Combatant { return s.foe }

// Round returns the current round, starting at 1.
func (s *Session) Round() int { return s.round }

// Turn returns the side whose turn it is.
func (s *Session) Turn() Side { return s.turn }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Hype returns the crowd hype, always within [0, maxHype].
func (s *Session) Hype() int { return s.hype }

// Winner returns the winning side and whether the fight is decided.
func (s *Session) Winner() (Side, bool) { return s.winner, s.winnerSet }

// LastResult returns the most recently resolved action result.
func (s *Session) LastResult() ActionResult { return s.lastResult }

// Log returns a copy of the fight log so far.
func (s *Session) Log() []LogEntry {
	out := make([]LogEntry, len(s.log))
	copy(out, s.log)
	return out
}

// appendLog records one narration line, tagged with the current round and
// turn owner, and taps the recorder when one is attached.
func (s *Session) appendLog(format string, args ...any) {
	entry := LogEntry{Round: s.round, Actor: s.turn, Message: fmt.Sprintf(format, args...)}
	s.log = append(s.log, entry)
	if s.recorder != nil {
		s.recorder.Record(entry)
	}
}

// addHype shifts the crowd meter by delta, clamped into [0, maxHype].
//
// Postcondition: Returns the shift actually applied after clamping.
func (s *Session) addHype(delta int) int {
	next := s.hype + delta
	if next > maxHype {
		next = maxHype
	}
	if next < 0 {
		next = 0
	}
	applied := next - s.hype
	s.hype = next
	return applied
}

// setWinner decides the fight. The first call wins; later calls are
// no-ops, so a winner never changes once set.
//
// Postcondition: The phase is PhaseEnd permanently.
func (s *Session) setWinner(side Side) {
	if s.winnerSet {
		return
	}
	s.winnerSet = true
	s.winner = side
	s.phase = PhaseEnd
	loser := s.combatant(side.Opponent())
	s.appendLog("%s falls; %s takes the fight", loser.Name(), s.combatant(side).Name())
}

// zoneWeakness returns the enemy-class damage multiplier for the player
// striking zone. Unset weaknesses read as 1.0.
func (s *Session) zoneWeakness(z Zone) float64 {
	var w float64
	switch z {
	case ZoneHead:
		w = s.class.Weaknesses.Head
	case ZoneBody:
		w = s.class.Weaknesses.Body
	case ZoneLegs:
		w = s.class.Weaknesses.Legs
	}
	if w == 0 {
		return 1.0
	}
	return w
}

// Summary is the end-of-fight digest handed to the progression layer.
type Summary struct {
	Winner Side
	Rounds int
	Hype   int

	PlayerWounds []*wound.Template
	EnemyWounds  []*wound.Template

	PlayerArmorBreak int
	EnemyArmorBreak  int
	PlayerMomentum   int
	EnemyMomentum    int

	PlayerInjuryMeter float64
	EnemyInjuryMeter  float64

	AdrenalineUsed bool
	SignatureUses  int
	PerfectParries int
}

// Summary digests the decided fight for the save and progression layer.
//
// Precondition: The fight is decided.
func (s *Session) Summary() (Summary, error) {
	if !s.winnerSet {
		return Summary{}, ErrWrongPhase
	}
	return Summary{
		Winner:            s.winner,
		Rounds:            s.round,
		Hype:              s.hype,
		PlayerWounds:      append([]*wound.Template(nil), s.player.Wounds...),
		EnemyWounds:       append([]*wound.Template(nil), s.foe.Wounds...),
		PlayerArmorBreak:  s.player.ArmorBreak.Stacks(),
		EnemyArmorBreak:   s.foe.ArmorBreak.Stacks(),
		PlayerMomentum:    s.player.Momentum.Points(),
		EnemyMomentum:     s.foe.Momentum.Points(),
		PlayerInjuryMeter: s.player.InjuryMeter,
		EnemyInjuryMeter:  s.foe.InjuryMeter,
		AdrenalineUsed:    s.adrenalineUsed,
		SignatureUses:     s.player.SignatureUses,
		PerfectParries:    s.player.PerfectParries,
	}, nil
}
