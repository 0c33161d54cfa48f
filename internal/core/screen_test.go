package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Fatalf("size = %dx%d, want 20x5", s.Width(), s.Height())
	}

	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen cell (%d,%d) = %+v, want blank", x, y, c)
			}
		}
	}
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	s.Set(-1, 0, 'A')
	s.Set(4, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 4, 'A')

	if strings.ContainsRune(s.String(), 'A') {
		t.Error("out-of-bounds Set should be ignored")
	}
	if s.Get(10, 10) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(5, 1)
	s.SetColored(2, 0, '8', ColorTile8)

	got := s.GetCell(2, 0)
	if got.Rune != '8' || got.Color != ColorTile8 {
		t.Errorf("GetCell(2, 0) = %+v, want {'8' ColorTile8}", got)
	}

	// Plain Set resets the color
	s.Set(2, 0, 'x')
	if got := s.GetCell(2, 0); got.Color != ColorDefault {
		t.Errorf("Set should use ColorDefault, got %d", got.Color)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawText(2, 0, "Score")

	if got := s.Row(0); got != "  Score " {
		t.Errorf("Row(0) = %q, want %q", got, "  Score ")
	}

	// Clipped at the right edge
	s.DrawText(6, 0, "XYZ")
	if got := s.Row(0); got != "  ScorXY" {
		t.Errorf("Row(0) after clip = %q, want %q", got, "  ScorXY")
	}
}

func TestScreenDrawTextColoredMultibyte(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawTextColored(0, 0, "─┼─", ColorGrid)

	if got := s.Row(0); got != "─┼─ " {
		t.Errorf("Row(0) = %q, want %q", got, "─┼─ ")
	}
	if s.GetCell(1, 0).Color != ColorGrid {
		t.Error("colored text should carry its color")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "2048")

	if got := s.Row(0); got != "   2048   " {
		t.Errorf("Row(0) = %q, want %q", got, "   2048   ")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3))

	want := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != want {
		t.Errorf("DrawBox:\n%s\nwant\n%s", got, want)
	}
}

func TestScreenDrawRectAndClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawRect(NewRect(1, 0, 2, 2), '#')

	if got := s.String(); got != " ##\n ##" {
		t.Errorf("DrawRect = %q", got)
	}

	s.Clear()
	if got := s.String(); got != "   \n   " {
		t.Errorf("Clear = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(3, 3)
	s.Set(0, 0, 'X')
	s.Resize(5, 2)

	if s.Width() != 5 || s.Height() != 2 {
		t.Fatalf("size after Resize = %dx%d, want 5x2", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize should clear the buffer")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 2, 3, 3)

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 2, true},
		{4, 4, true},
		{5, 4, false},
		{1, 3, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(10, 5, 6, 4)
	if r != (Rect{X: 7, Y: 3, W: 6, H: 4}) {
		t.Errorf("CenteredRect = %+v", r)
	}
}
