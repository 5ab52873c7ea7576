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
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes must be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(2, 3, '@', ColorGreen)
	cell := s.GetCell(2, 3)
	if cell.Rune != '@' || cell.Color != ColorGreen {
		t.Errorf("GetCell(2, 3) = %+v, expected {'@' ColorGreen}", cell)
	}

	// Plain Set uses the default color
	s.Set(2, 3, '#')
	if s.GetCell(2, 3).Color != ColorDefault {
		t.Error("Set should reset color to default")
	}

	if s.GetCell(-1, -1).Rune != ' ' {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("Clear left %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(3, 3, 'A')
	s.Set(9, 9, 'B')

	s.Resize(5, 5)

	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("Resize to 5x5 gave %dx%d", s.Width(), s.Height())
	}
	if s.Get(3, 3) != 'A' {
		t.Error("Resize should preserve content inside the new bounds")
	}

	s.Resize(12, 12)
	if s.Get(3, 3) != 'A' {
		t.Error("Growing resize should preserve content")
	}
	if s.Get(9, 9) != ' ' {
		t.Error("Content lost in a shrink should not reappear")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello")
	if s.Row(1) != "  hello             " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}

	// Clipping at the right edge must not panic
	s.DrawText(17, 2, "world")
	if s.Get(19, 2) != 'r' {
		t.Errorf("Clipped text wrong, got %q at (19, 2)", s.Get(19, 2))
	}

	s.DrawTextCentered(3, "hi")
	if s.Get(9, 3) != 'h' || s.Get(10, 3) != 'i' {
		t.Error("DrawTextCentered misplaced text")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 6, 4))

	if s.Get(1, 1) != '┌' || s.Get(6, 1) != '┐' {
		t.Error("Box top corners wrong")
	}
	if s.Get(1, 4) != '└' || s.Get(6, 4) != '┘' {
		t.Error("Box bottom corners wrong")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Box edges wrong")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	out := s.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() has %d lines, expected 2", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", out)
	}
}
