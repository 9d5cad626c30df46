// Package main provides the seeded fight simulator. It wires together
// configuration, the content catalogs, and the combat engine, then drives a
// batch of fights with a small scripted action picker standing in for the
// game's real action-selection layer.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/ironmark-games/ironmark/internal/config"
	"github.com/ironmark-games/ironmark/internal/game/combat"
	"github.com/ironmark-games/ironmark/internal/game/effect"
	"github.com/ironmark-games/ironmark/internal/game/enemy"
	"github.com/ironmark-games/ironmark/internal/game/fighter"
	"github.com/ironmark-games/ironmark/internal/game/gear"
	"github.com/ironmark-games/ironmark/internal/game/rng"
	"github.com/ironmark-games/ironmark/internal/game/wound"
	"github.com/ironmark-games/ironmark/internal/observability"
)

// maxTurns caps a single fight so a stalled matchup cannot hang the run.
const maxTurns = 400

// Scripted-picker thresholds.
const (
	signatureFocus = 30
	lowStamina     = 15
	fightTonics    = 2
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/sim.yaml", "path to configuration file")
	woundsDir := flag.String("wounds-dir", "", "wound template YAML directory (overrides config)")
	enemiesDir := flag.String("enemies-dir", "", "enemy class YAML directory (overrides config)")
	gearDir := flag.String("gear-dir", "", "gear YAML directory (overrides config)")
	fights := flag.Int("fights", 0, "number of fights to run (overrides config)")
	seed := flag.Int64("seed", 0, "base seed for the run (overrides config; 0 draws one)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if *woundsDir != "" {
		cfg.Content.WoundsDir = *woundsDir
	}
	if *enemiesDir != "" {
		cfg.Content.EnemiesDir = *enemiesDir
	}
	if *gearDir != "" {
		cfg.Content.GearDir = *gearDir
	}
	if *fights > 0 {
		cfg.Sim.Fights = *fights
	}
	if *seed != 0 {
		cfg.Sim.Seed = *seed
	}

	// Load catalogs; an empty directory path selects the built-in catalog.
	wounds := wound.DefaultCatalog()
	if cfg.Content.WoundsDir != "" {
		if wounds, err = wound.LoadDirectory(cfg.Content.WoundsDir); err != nil {
			logger.Fatal("loading wound catalog", zap.Error(err))
		}
	}
	classes := enemy.DefaultClasses()
	if cfg.Content.EnemiesDir != "" {
		if classes, err = enemy.LoadClasses(cfg.Content.EnemiesDir); err != nil {
			logger.Fatal("loading enemy classes", zap.Error(err))
		}
	}
	gearCat := gear.DefaultCatalog()
	if cfg.Content.GearDir != "" {
		if gearCat, err = gear.LoadDirectory(cfg.Content.GearDir); err != nil {
			logger.Fatal("loading gear catalog", zap.Error(err))
		}
	}
	if len(classes) == 0 {
		logger.Fatal("no enemy classes available")
	}

	// Catalog maps iterate in arbitrary order; sort so a seed replays the
	// same matchups.
	weapons := gearCat.Weapons()
	sort.Slice(weapons, func(i, j int) bool { return weapons[i].ID < weapons[j].ID })
	armors := gearCat.Armors()
	sort.Slice(armors, func(i, j int) bool { return armors[i].ID < armors[j].ID })
	if len(weapons) == 0 || len(armors) == 0 {
		logger.Fatal("gear catalog must hold at least one weapon and one armor")
	}

	logger.Info("catalogs loaded",
		zap.Int("wounds", wounds.Len()),
		zap.Int("enemy_classes", len(classes)),
		zap.Int("weapons", len(weapons)),
		zap.Int("armor", len(armors)),
	)

	baseSeed := cfg.Sim.Seed
	if baseSeed == 0 {
		if baseSeed, err = rng.NewSeed(); err != nil {
			logger.Fatal("drawing run seed", zap.Error(err))
		}
	}
	logger.Info("starting simulation",
		zap.Int("fights", cfg.Sim.Fights),
		zap.Int64("seed", baseSeed),
		zap.Int("tier", cfg.Sim.Tier),
	)

	var t tally
	for i := 0; i < cfg.Sim.Fights; i++ {
		// One offset per fight keeps the whole run replayable from the
		// base seed alone.
		fightSeed := baseSeed + int64(i)
		class := classes[i%len(classes)]
		weapon := weapons[i%len(weapons)]
		armor := armors[i%len(armors)]

		var src rng.Source = rng.NewSeeded(fightSeed)
		if cfg.Logging.Level == "debug" {
			src = rng.NewLogged(src, logger)
		}
		enemyWeapon, _ := gearCat.Weapon(class.WeaponID)
		enemyArmor, _ := gearCat.Armor(class.ArmorID)

		fight := combat.Config{
			Player:        playerSnapshot(),
			PlayerLoadout: gear.BuildLoadout(weapon, armor),
			Enemy:         class,
			EnemyLoadout:  gear.BuildLoadout(enemyWeapon, enemyArmor),
			Wounds:        wounds,
			Source:        src,
			Recorder:      &zapRecorder{logger: logger},
			BaseHype:      cfg.Sim.BaseHype,
		}

		// The driver draws decisions from its own stream so it never
		// perturbs the engine's.
		out, err := runFight(fight, rng.NewSeeded(^fightSeed), cfg.Sim.Tier)
		if err != nil {
			logger.Fatal("running fight", zap.Int("fight", i+1), zap.Error(err))
		}
		if out.stalled {
			t.stalled++
			logger.Warn("fight stalled",
				zap.Int("fight", i+1),
				zap.Int64("seed", fightSeed),
				zap.String("enemy", class.Name),
			)
			continue
		}

		t.fold(out)
		logger.Info("fight decided",
			zap.Int("fight", i+1),
			zap.Int64("seed", fightSeed),
			zap.String("enemy", class.Name),
			zap.String("weapon", weapon.Name),
			zap.String("winner", out.summary.Winner.String()),
			zap.Int("rounds", out.summary.Rounds),
			zap.Int("hype", out.summary.Hype),
			zap.Int("gold", out.rewards.Gold),
			zap.Int("fame", out.rewards.Fame),
			zap.Int("xp", out.rewards.XP),
			zap.Int("player_wounds", len(out.summary.PlayerWounds)),
			zap.Int("perfect_parries", out.summary.PerfectParries),
			zap.Bool("adrenaline", out.summary.AdrenalineUsed),
		)
		logInjury(logger, "player", out.playerInjury)
		logInjury(logger, "enemy", out.enemyInjury)
	}

	decided := t.playerWins + t.enemyWins
	avgRounds := 0.0
	if decided > 0 {
		avgRounds = float64(t.rounds) / float64(decided)
	}
	logger.Info("simulation complete",
		zap.Int("fights", cfg.Sim.Fights),
		zap.Int("player_wins", t.playerWins),
		zap.Int("enemy_wins", t.enemyWins),
		zap.Int("stalled", t.stalled),
		zap.Float64("avg_rounds", avgRounds),
		zap.Int("total_gold", t.gold),
		zap.Int("total_fame", t.fame),
		zap.Int("total_xp", t.xp),
		zap.Int("perfect_parries", t.parries),
		zap.Int("injuries", t.injuries),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// playerSnapshot is the simulator's baseline managed fighter. The real game
// supplies snapshots from the roster; the simulator pits one fixed veteran
// against the whole enemy book.
func playerSnapshot() fighter.Snapshot {
	return fighter.Snapshot{
		Name:       "Mara Flint",
		MaxHP:      100,
		MaxStamina: 100,
		MaxFocus:   100,
		Attack:     15,
		Defense:    10,
		Speed:      10,
		Accuracy:   90,
		Evasion:    10,
		CritChance: 10,
		CritDamage: 150,
	}
}

// zapRecorder streams every session log entry to the debug log as the
// engine appends it.
type zapRecorder struct {
	logger *zap.Logger
}

func (r *zapRecorder) Record(e combat.LogEntry) {
	r.logger.Debug("fight log",
		zap.Int("round", e.Round),
		zap.String("actor", e.Actor.String()),
		zap.String("message", e.Message),
	)
}

// outcome is the per-fight digest folded into the run tally.
type outcome struct {
	summary      combat.Summary
	rewards      combat.Rewards
	playerInjury *wound.Injury
	enemyInjury  *wound.Injury
	stalled      bool
}

// runFight plays one fight to its decision and settles the payout.
func runFight(cfg combat.Config, decisions rng.Source, tier int) (outcome, error) {
	s, err := combat.NewSession(cfg)
	if err != nil {
		return outcome{}, fmt.Errorf("creating session: %w", err)
	}
	d := &driver{s: s, src: decisions, tonics: fightTonics}

	for turns := 0; turns < maxTurns; turns++ {
		if _, over := s.Winner(); over {
			break
		}
		if err := d.playTurn(s.Turn()); err != nil {
			return outcome{}, fmt.Errorf("turn %d: %w", turns, err)
		}
	}
	if _, over := s.Winner(); !over {
		return outcome{stalled: true}, nil
	}

	var out outcome
	if out.summary, err = s.Summary(); err != nil {
		return outcome{}, err
	}
	if out.rewards, err = s.CalculateRewards(tier); err != nil {
		return outcome{}, err
	}
	if out.playerInjury, err = s.RollForInjury(combat.SidePlayer); err != nil {
		return outcome{}, err
	}
	if out.enemyInjury, err = s.RollForInjury(combat.SideEnemy); err != nil {
		return outcome{}, err
	}
	return out, nil
}

// driver plays both sides of one fight. Action selection is external to
// the engine, so the simulator carries its own small policy here.
type driver struct {
	s      *combat.Session
	src    rng.Source
	tonics int
}

// playTurn resolves one full turn for side: the adrenaline check, the
// player's parry read on incoming attacks, the chosen action, and the
// turn handover.
func (d *driver) playTurn(side combat.Side) error {
	if side == combat.SidePlayer && d.s.CanTriggerAdrenaline() {
		choice := combat.AdrenalineLastStand
		if d.s.Player().CurrentStamina < 40 {
			choice = combat.AdrenalineSecondWind
		}
		if err := d.s.UseAdrenaline(choice); err != nil {
			return err
		}
	}

	act := d.pick(side)

	// The player reads incoming attacks for a parry; a turned-aside swing
	// leaves the foe covering up instead of striking.
	if side == combat.SideEnemy && act.Kind.Offensive() && !d.s.Player().Effects.Has(effect.Stun) {
		if err := d.s.OpenParryWindow(); err != nil {
			return err
		}
		_, parried, err := d.s.AttemptParry(combat.SidePlayer, d.src.Float64())
		if err != nil {
			return err
		}
		if parried {
			if _, over := d.s.Winner(); over {
				return nil
			}
			act = combat.Action{Kind: combat.ActionGuard, Zone: act.Zone}
		}
	}

	if _, err := d.s.PlayTurn(act); err != nil {
		return err
	}

	// A resource rejection leaves the phase at select_action; fall back to
	// cheaper picks. Items cost nothing, so the chain always terminates.
	for _, fallback := range []combat.Action{
		{Kind: combat.ActionGuard, Zone: combat.ZoneBody},
		{Kind: combat.ActionItem, Zone: combat.ZoneBody, ItemID: "smelling_salts"},
	} {
		if d.s.Phase() != combat.PhaseSelectAction {
			break
		}
		if _, err := d.s.PlayTurn(fallback); err != nil {
			return err
		}
	}

	if d.s.Phase() == combat.PhaseResult {
		return d.s.NextTurn()
	}
	return nil
}

// pick chooses the next action for side from the session's visible state.
func (d *driver) pick(side combat.Side) combat.Action {
	c := d.s.Player()
	if side == combat.SideEnemy {
		c = d.s.Enemy()
	}
	zone := combat.Zone(d.src.Intn(3))

	if c.CurrentFocus >= signatureFocus {
		return combat.Action{Kind: combat.ActionSpecial, Zone: zone}
	}
	if side == combat.SidePlayer && d.tonics > 0 && c.HPFraction() < 0.35 {
		d.tonics--
		return combat.Action{Kind: combat.ActionItem, Zone: zone, ItemID: "crimson_tonic"}
	}
	if c.CurrentStamina < lowStamina {
		return combat.Action{Kind: combat.ActionGuard, Zone: zone}
	}

	switch roll := d.src.Float64(); {
	case roll < 0.15:
		return combat.Action{Kind: combat.ActionDodge, Zone: zone}
	case roll < 0.30:
		return combat.Action{Kind: combat.ActionGuard, Zone: zone}
	case roll < 0.65:
		return combat.Action{Kind: combat.ActionLight, Zone: zone}
	default:
		return combat.Action{Kind: combat.ActionHeavy, Zone: zone}
	}
}

// logInjury reports a carried-out injury; nil means that side walked away
// clean.
func logInjury(logger *zap.Logger, side string, inj *wound.Injury) {
	if inj == nil {
		return
	}
	logger.Info("injury carried out of the pit",
		zap.String("side", side),
		zap.String("injury", inj.Name),
		zap.String("severity", inj.Severity.String()),
		zap.String("source", inj.Source),
	)
}

// tally accumulates run-level aggregates across fights.
type tally struct {
	playerWins int
	enemyWins  int
	stalled    int
	rounds     int
	gold       int
	fame       int
	xp         int
	parries    int
	injuries   int
}

func (t *tally) fold(out outcome) {
	if out.summary.Winner == combat.SidePlayer {
		t.playerWins++
	} else {
		t.enemyWins++
	}
	t.rounds += out.summary.Rounds
	t.gold += out.rewards.Gold
	t.fame += out.rewards.Fame
	t.xp += out.rewards.XP
	t.parries += out.summary.PerfectParries
	if out.playerInjury != nil {
		t.injuries++
	}
	if out.enemyInjury != nil {
		t.injuries++
	}
}
