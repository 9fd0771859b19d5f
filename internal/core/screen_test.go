package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3,2) = %q, want 'X'", got)
	}

	// Out-of-bounds writes are ignored, reads return space.
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	s.Set(0, 5, 'Y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, '▓', ColorRed)
	cell := s.GetCell(1, 1)
	if cell.Rune != '▓' || cell.Color != ColorRed {
		t.Errorf("GetCell = %+v, want red ▓", cell)
	}

	if got := s.GetCell(99, 99); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v", got)
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 3, 3, 2), '#', ColorCyan)

	for y := 3; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if cell := s.GetCell(x, y); cell.Rune != '#' || cell.Color != ColorCyan {
				t.Errorf("cell (%d,%d) = %+v, want cyan #", x, y, cell)
			}
		}
	}
	if s.Get(1, 3) != ' ' || s.Get(5, 3) != ' ' {
		t.Error("FillRect leaked outside the rectangle")
	}
}

func TestScreenFillRectClipsAtBounds(t *testing.T) {
	s := NewScreen(4, 4)
	// Partially off-screen fills must clip, not panic.
	s.FillRect(NewRect(2, 2, 10, 10), '#', ColorRed)

	if s.Get(3, 3) != '#' {
		t.Error("in-bounds part of clipped rect not drawn")
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawText(3, 0, "hello")

	if got := s.Row(0); got != "   he" {
		t.Errorf("Row(0) = %q, want %q", got, "   he")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, 'A')
	s.Set(5, 3, 'B')

	s.Resize(4, 3)
	if s.Get(1, 1) != 'A' {
		t.Error("resize dropped in-range content")
	}
	if s.Width() != 4 || s.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", s.Width(), s.Height())
	}

	s.Resize(8, 5)
	if s.Get(1, 1) != 'A' {
		t.Error("grow dropped content")
	}
	if s.Get(5, 3) != ' ' {
		t.Error("content outside the shrunken area survived")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Count(s.String(), "\n") != 1 {
		t.Error("String() row separator count wrong")
	}
}
