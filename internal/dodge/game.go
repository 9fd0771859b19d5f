// Package dodge is the playable obstacle-dodging game: it owns a simulation
// world per session, maps platform actions to simulation intents, and draws
// the world into a screen buffer. Pure logic, no Bubble Tea.
package dodge

import (
	"github.com/astrelin/tui-dodge/internal/config"
	"github.com/astrelin/tui-dodge/internal/core"
	"github.com/astrelin/tui-dodge/internal/sim"
)

// Game wraps a sim.World for one session. Reset discards the world and
// builds a fresh one; a dead world is never ticked again.
type Game struct {
	cfg      config.Config
	runtime  core.RuntimeConfig
	world    *sim.World
	gameOver bool
	paused   bool
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge"
}

// Reset starts a fresh session: a new world seeded from the runtime config,
// with the previous world (if any) discarded.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.world = sim.New(g.params(), rt.Seed)
	g.gameOver = false
	g.paused = false
}

// params converts the YAML configuration to simulation constants.
func (g *Game) params() sim.Params {
	return sim.Params{
		Width:      g.cfg.Field.Width,
		Height:     g.cfg.Field.Height,
		SpawnDelay: g.cfg.Obstacles.SpawnDelay,
		BatchMin:   g.cfg.Obstacles.BatchMin,
		BatchMax:   g.cfg.Obstacles.BatchMax,
		SizeMin:    g.cfg.Obstacles.SizeMin,
		SizeMax:    g.cfg.Obstacles.SizeMax,
		PlayerW:    g.cfg.Player.Width,
		PlayerH:    g.cfg.Player.Height,
		QueueHint:  g.cfg.Obstacles.QueueHint,
	}
}

// Apply feeds a platform action into the game. Directional actions set the
// world's pending intent, most recent wins; Pause toggles pause. Restart,
// Confirm, and Quit are session-level and handled by the platform.
func (g *Game) Apply(a core.Action) {
	if g.gameOver {
		return
	}

	switch a {
	case core.ActionLeft:
		g.world.SetIntent(sim.IntentLeft)
	case core.ActionRight:
		g.world.SetIntent(sim.IntentRight)
	case core.ActionUp:
		g.world.SetIntent(sim.IntentUp)
	case core.ActionDown:
		g.world.SetIntent(sim.IntentDown)
	case core.ActionPause:
		g.paused = !g.paused
	}
}

// Step advances the simulation by one tick. A paused or finished game does
// not tick: the world stays untouched until resume or Reset.
func (g *Game) Step() core.GameState {
	if g.gameOver || g.paused {
		return g.State()
	}

	if !g.world.Tick() {
		g.gameOver = true
	}
	return g.State()
}

// State reports the current session status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Points:   g.world.Points(),
		Ticks:    g.world.Ticks(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// World exposes the underlying simulation for tests.
func (g *Game) World() *sim.World {
	return g.world
}
