package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected X/red", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return an uncolored cell")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(12, 3)
	s.DrawText(1, 0, "SKI")
	s.DrawTextCentered(1, "GO", ColorGreen)
	s.DrawText(10, 2, "clipped")

	if got := s.Row(0); got != " SKI        " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(1); got != "     GO     " {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(5, 1).Color != ColorGreen {
		t.Error("centered text should keep its color")
	}
	if got := s.Row(2); got != "          cl" {
		t.Errorf("Row(2) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(0, 0, 4, 3, ColorWhite)

	expected := strings.Join([]string{"┌──┐", "│  │", "└──┘"}, "\n")
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(4, 4)
	s.Fill('#', ColorGray)
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("Resize() = %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Errorf("Resize() should clear the buffer, got %q", s.Get(0, 0))
	}
}
