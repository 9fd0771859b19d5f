package sim

import (
	"math/rand"

	"github.com/astrelin/tui-dodge/internal/core"
)

// Intent is the single most-recent directional request pending application
// on the next tick.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
	IntentUp
	IntentDown
)

// Params are the simulation constants. Zero values are not usable; start
// from DefaultParams and override from configuration.
type Params struct {
	Width      int // Field width; player x stays in [0, Width]
	Height     int // Field height; player y stays in [0, Height]
	SpawnDelay int // Ticks between spawn batches
	BatchMin   int // Minimum obstacles per spawn batch (inclusive)
	BatchMax   int // Maximum obstacles per spawn batch (exclusive)
	SizeMin    int // Minimum obstacle width/height (inclusive)
	SizeMax    int // Maximum obstacle width/height (exclusive)
	PlayerW    int // Player bounding box width
	PlayerH    int // Player bounding box height
	QueueHint  int // Obstacle queue pre-allocation hint, not a cap
}

// DefaultParams returns the reference sizing: a 480x480 field, a 5x5 player,
// a spawn batch of 2-9 obstacles sized 5-31 every 150 ticks.
func DefaultParams() Params {
	return Params{
		Width:      480,
		Height:     480,
		SpawnDelay: 150,
		BatchMin:   2,
		BatchMax:   10,
		SizeMin:    5,
		SizeMax:    32,
		PlayerW:    5,
		PlayerH:    5,
		QueueHint:  512,
	}
}

type obstacle struct {
	pos Position
	cov Coverage
}

// World is the simulation state: the player, the obstacle queue ordered by
// spawn time (oldest first), the pending intent, and the tick counter.
// A World is created once per session and discarded on restart; it is
// mutated exclusively by Tick and is not safe for concurrent use.
type World struct {
	params    Params
	obstacles []obstacle
	playerPos Position
	playerCov Coverage
	intent    Intent
	ticks     int
	rng       *rand.Rand
}

// New creates a world with an owned random source seeded from seed.
// The player starts at a random position in the upper-left quadrant.
func New(params Params, seed int64) *World {
	rng := rand.New(rand.NewSource(seed))
	return &World{
		params:    params,
		obstacles: make([]obstacle, 0, params.QueueHint),
		playerPos: Position{
			X: rng.Intn(params.Width / 2),
			Y: rng.Intn(params.Height / 2),
		},
		playerCov: Coverage{Width: params.PlayerW, Height: params.PlayerH},
		rng:       rng,
	}
}

// SetIntent records the most recent directional request, overwriting any
// unconsumed prior one. Bounds are enforced at application time, not here.
func (w *World) SetIntent(in Intent) {
	w.intent = in
}

// Tick advances the world by one step and reports whether the player is
// still alive. Once it returns false the world is terminal; construct a
// fresh one to restart. The order of operations is load-bearing: intent
// application precedes the first collision check, and obstacles neither
// move nor spawn on the tick that kills the player.
func (w *World) Tick() bool {
	w.ticks++

	switch w.intent {
	case IntentLeft:
		w.playerPos.Left()
	case IntentRight:
		w.playerPos.Right(w.params.Width)
	case IntentUp:
		w.playerPos.Up()
	case IntentDown:
		w.playerPos.Down(w.params.Height)
	}
	w.intent = IntentNone

	if w.collided() {
		return false
	}

	for i := range w.obstacles {
		w.obstacles[i].pos.DriftLeft()
	}

	w.cleanup()

	if w.ticks%w.params.SpawnDelay == 0 {
		w.spawn()
	}

	if w.collided() {
		return false
	}

	return true
}

// collided reports whether any obstacle's anchor point lies within the
// player's bounding box (closed on both edges). This is deliberately an
// asymmetric point-in-rect test, not full rectangle intersection; it is the
// collision model this game has always had and changing it would change
// gameplay.
func (w *World) collided() bool {
	for _, o := range w.obstacles {
		if w.playerPos.X <= o.pos.X && o.pos.X <= w.playerPos.X+w.playerCov.Width &&
			w.playerPos.Y <= o.pos.Y && o.pos.Y <= w.playerPos.Y+w.playerCov.Height {
			return true
		}
	}
	return false
}

// cleanup removes the maximal prefix of obstacles whose right edge has fully
// crossed the left boundary. Leftward motion guarantees the front of the
// queue is the most expired, so removal from the front preserves order.
func (w *World) cleanup() {
	n := 0
	for n < len(w.obstacles) && w.obstacles[n].pos.X+w.obstacles[n].cov.Width <= 0 {
		n++
	}
	if n > 0 {
		w.obstacles = append(w.obstacles[:0], w.obstacles[n:]...)
	}
}

// spawn appends a random batch of obstacles at the right edge.
func (w *World) spawn() {
	n := w.params.BatchMin + w.rng.Intn(w.params.BatchMax-w.params.BatchMin)
	for i := 0; i < n; i++ {
		w.obstacles = append(w.obstacles, obstacle{
			pos: Position{
				X: w.params.Width,
				Y: w.rng.Intn(w.params.Height),
			},
			cov: Coverage{
				Width:  w.params.SizeMin + w.rng.Intn(w.params.SizeMax-w.params.SizeMin),
				Height: w.params.SizeMin + w.rng.Intn(w.params.SizeMax-w.params.SizeMin),
			},
		})
	}
}

// Ticks returns the number of ticks elapsed since construction.
func (w *World) Ticks() int {
	return w.ticks
}

// Points returns the score: ticks survived divided by the spawn delay.
func (w *World) Points() float64 {
	return float64(w.ticks) / float64(w.params.SpawnDelay)
}

// ObstacleCount returns the number of live obstacles in the queue.
func (w *World) ObstacleCount() int {
	return len(w.obstacles)
}

// Params returns the simulation constants this world was built with.
func (w *World) Params() Params {
	return w.params
}

// drawRect converts an entity to its drawable rectangle. Coordinates are
// clamped to be non-negative for drawing; an obstacle partially off the left
// edge keeps its true (negative) x internally until cleanup removes it.
func drawRect(p Position, c Coverage) core.Rect {
	return core.NewRect(core.Max(p.X, 0), core.Max(p.Y, 0), c.Width, c.Height)
}

// PlayerRect returns the player's current bounding rectangle for drawing.
func (w *World) PlayerRect() core.Rect {
	return drawRect(w.playerPos, w.playerCov)
}

// EachObstacle passes every obstacle's drawable rectangle, front of the
// queue first, to draw. The first draw error aborts the walk and is
// returned, so a failed frame stops as the renderer reports it.
func (w *World) EachObstacle(draw func(core.Rect) error) error {
	for _, o := range w.obstacles {
		if err := draw(drawRect(o.pos, o.cov)); err != nil {
			return err
		}
	}
	return nil
}

// DrawPlayer passes the player's drawable rectangle to draw.
func (w *World) DrawPlayer(draw func(core.Rect) error) error {
	return draw(w.PlayerRect())
}
