// Package sim implements the obstacle-dodging simulation engine: a bounded
// integer plane, a player entity moved by directional intents, and a queue of
// obstacles that spawn at the right edge and drift left. The engine performs
// no I/O and owns its random source, so worlds are cheap to create and fully
// deterministic under a fixed seed.
//
// It depends only on internal/core for rectangle geometry; everything else
// (input mapping, pacing, rendering) lives in the layers above.
package sim

// Position is a point on the plane. Coordinates are signed: obstacle
// positions may go negative while an obstacle is partially off the left edge.
type Position struct {
	X, Y int
}

// Left moves one unit left, clamped at 0.
func (p *Position) Left() {
	if p.X > 0 {
		p.X--
	}
}

// Right moves one unit right, clamped at maxX.
func (p *Position) Right(maxX int) {
	if p.X < maxX {
		p.X++
	}
}

// Up moves one unit up, clamped at 0.
func (p *Position) Up() {
	if p.Y > 0 {
		p.Y--
	}
}

// Down moves one unit down, clamped at maxY.
func (p *Position) Down(maxY int) {
	if p.Y < maxY {
		p.Y++
	}
}

// DriftLeft moves one unit left without clamping. Used for obstacles, whose
// x may go negative until cleanup reclaims them.
func (p *Position) DriftLeft() {
	p.X--
}

// Coverage is the width and height of an entity's axis-aligned bounding box,
// anchored at the entity's Position (top-left corner).
type Coverage struct {
	Width, Height int
}
