package sim

import "testing"

func TestPositionClampedMoves(t *testing.T) {
	const bound = 480

	tests := []struct {
		name  string
		start Position
		move  func(*Position)
		want  Position
	}{
		{"left interior", Position{X: 10, Y: 10}, func(p *Position) { p.Left() }, Position{X: 9, Y: 10}},
		{"left at wall is no-op", Position{X: 0, Y: 10}, func(p *Position) { p.Left() }, Position{X: 0, Y: 10}},
		{"right interior", Position{X: 10, Y: 10}, func(p *Position) { p.Right(bound) }, Position{X: 11, Y: 10}},
		{"right at wall is no-op", Position{X: bound, Y: 10}, func(p *Position) { p.Right(bound) }, Position{X: bound, Y: 10}},
		{"up interior", Position{X: 10, Y: 10}, func(p *Position) { p.Up() }, Position{X: 10, Y: 9}},
		{"up at wall is no-op", Position{X: 10, Y: 0}, func(p *Position) { p.Up() }, Position{X: 10, Y: 0}},
		{"down interior", Position{X: 10, Y: 10}, func(p *Position) { p.Down(bound) }, Position{X: 10, Y: 11}},
		{"down at wall is no-op", Position{X: 10, Y: bound}, func(p *Position) { p.Down(bound) }, Position{X: 10, Y: bound}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.start
			tc.move(&p)
			if p != tc.want {
				t.Errorf("got %+v, want %+v", p, tc.want)
			}
		})
	}
}

func TestPositionClampedStaysInBounds(t *testing.T) {
	const bound = 16

	// From every valid position, every clamped move must land in bounds.
	for x := 0; x <= bound; x++ {
		for y := 0; y <= bound; y++ {
			moves := []func(*Position){
				func(p *Position) { p.Left() },
				func(p *Position) { p.Right(bound) },
				func(p *Position) { p.Up() },
				func(p *Position) { p.Down(bound) },
			}
			for i, move := range moves {
				p := Position{X: x, Y: y}
				move(&p)
				if p.X < 0 || p.X > bound || p.Y < 0 || p.Y > bound {
					t.Fatalf("move %d from (%d,%d) left bounds: %+v", i, x, y, p)
				}
			}
		}
	}
}

func TestPositionDriftLeftUnclamped(t *testing.T) {
	p := Position{X: 1, Y: 5}

	for want := 0; want >= -3; want-- {
		p.DriftLeft()
		if p.X != want {
			t.Errorf("DriftLeft: got x=%d, want %d", p.X, want)
		}
	}
	if p.Y != 5 {
		t.Errorf("DriftLeft changed y: got %d, want 5", p.Y)
	}
}
