package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 5, 7)

	if r.Right() != 15 {
		t.Errorf("Right() = %d, want 15", r.Right())
	}
	if r.Bottom() != 27 {
		t.Errorf("Bottom() = %d, want 27", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.val, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min broken")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max broken")
	}
}
