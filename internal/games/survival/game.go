package survival

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/grid-survival/internal/config"
	"github.com/vovakirdan/grid-survival/internal/core"
	"github.com/vovakirdan/grid-survival/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "survival"

// feedSize is how many recent event messages the status area keeps.
const feedSize = 3

var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger routes game events to l. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts the survival engine to the platform driver.
type Game struct {
	cfg   config.SurvivalConfig
	rng   *rand.Rand
	state *GameState
	seed  int64
	runID string

	paused   bool
	tooSmall bool
	screenW  int
	screenH  int

	feed []string
}

// NewGame creates an unstarted game; call Reset before Step.
func NewGame() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return NewGame()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Grid Survival"
}

// Reset starts a new run with a fresh map generated from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	scfg, err := config.LoadSurvival(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
		scfg = config.DefaultSurvivalConfig()
	}

	g.cfg = scfg
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.state = New(g.rng, optionsFromConfig(scfg))
	g.runID = uuid.NewString()
	g.paused = false
	g.feed = g.feed[:0]
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	logger.Info("run started",
		"run", g.runID,
		"seed", g.seed,
		"grid", scfg.Grid.Size,
		"obstacles", scfg.Spawn.Obstacles,
		"enemies", scfg.Spawn.Enemies,
	)
}

// optionsFromConfig maps the YAML configuration onto engine options.
func optionsFromConfig(c config.SurvivalConfig) Options {
	return Options{
		GridSize:       c.Grid.Size,
		PlayerName:     c.Player.Name,
		Start:          GridPos{Row: c.Player.StartRow, Col: c.Player.StartCol},
		MaxHealth:      c.Player.MaxHealth,
		Obstacles:      c.Spawn.Obstacles,
		Enemies:        c.Spawn.Enemies,
		MedicineChance: c.Spawn.MedicineChance,
	}
}

// Resize updates the screen dimensions without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minSize()
	g.tooSmall = w < minW || h < minH
}

// minSize returns the smallest screen that fits the HUD, grid, status line
// and a full event feed.
func (g *Game) minSize() (int, int) {
	n := g.cfg.Grid.Size
	return 2*n + 3, hudHeight + n + 3 + feedSize
}

// Step advances the game by one turn.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.state.Over() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.state.Over() {
		g.paused = !g.paused
	}

	if g.state.Over() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	dir := directionFor(in.Latest(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight))
	if err := g.state.Tick(dir); err != nil {
		logger.Error("tick failed", "run", g.runID, "turn", g.state.Turn(), "err", err)
	}
	g.record(g.state.Events())

	return core.StepResult{State: g.State()}
}

// directionFor maps a platform action to a movement direction.
func directionFor(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

// record logs drained events and keeps the latest messages for display.
func (g *Game) record(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventPlayerMoved, EventMoveBlocked, EventEnemyRelocated:
			logger.Debug(ev.Message(), "run", g.runID, "turn", ev.Turn, "pos", ev.Pos)
		case EventGameOver:
			stats := g.state.Stats()
			logger.Info(ev.Message(), "run", g.runID, "turns", g.state.Turn(),
				"hits", stats.HitsTaken, "medicine", stats.MedicineCollected)
		default:
			logger.Info(ev.Message(), "run", g.runID, "turn", ev.Turn, "health", ev.Health)
		}

		if ev.Kind == EventPlayerMoved || ev.Kind == EventMoveBlocked {
			continue
		}
		g.feed = append(g.feed, ev.Message())
		if len(g.feed) > feedSize {
			g.feed = g.feed[len(g.feed)-feedSize:]
		}
	}
}

// State returns the platform view of the run. The score is the number of
// turns survived.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Turn(),
		GameOver: g.state.Over(),
		Paused:   g.paused,
	}
}

// Observe returns a snapshot of the board for spectators.
func (g *Game) Observe() any {
	return g.state.Snapshot()
}

// Report summarizes the run for the score store.
func (g *Game) Report() core.RunReport {
	stats := g.state.Stats()
	return core.RunReport{
		RunID:             g.runID,
		Seed:              g.seed,
		Turns:             g.state.Turn(),
		HitsTaken:         stats.HitsTaken,
		MedicineCollected: stats.MedicineCollected,
	}
}

// Snapshot returns the engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}
