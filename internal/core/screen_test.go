package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'x')
	if got := s.Get(3, 2); got != 'x' {
		t.Errorf("Get(3, 2) = %q, expected 'x'", got)
	}

	// Out-of-bounds writes are ignored, reads return space
	s.Set(-1, 0, 'y')
	s.Set(10, 0, 'y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1, 0) = %q, expected space", got)
	}
	if got := s.Get(10, 0); got != ' ' {
		t.Errorf("Get(10, 0) = %q, expected space", got)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(4, 2)

	s.SetColored(1, 1, '#', ColorGreen)

	cell := s.GetCell(1, 1)
	if cell.Rune != '#' {
		t.Errorf("GetCell rune = %q, expected '#'", cell.Rune)
	}
	if cell.Color != ColorGreen {
		t.Errorf("GetCell color = %v, expected ColorGreen", cell.Color)
	}

	// Clear resets color too
	s.Clear()
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset cell color")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if row := s.Row(1); row != "  hello   " {
		t.Errorf("Row(1) = %q, expected %q", row, "  hello   ")
	}

	// Text extending past the edge is clipped
	s.DrawText(8, 0, "abc")
	if row := s.Row(0); row != "        ab" {
		t.Errorf("Row(0) = %q, expected %q", row, "        ab")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'x')

	s.Resize(20, 10)
	if got := s.Get(2, 2); got != 'x' {
		t.Errorf("after grow, Get(2, 2) = %q, expected 'x'", got)
	}

	s.Resize(3, 3)
	if got := s.Get(2, 2); got != 'x' {
		t.Errorf("after shrink, Get(2, 2) = %q, expected 'x'", got)
	}
	if s.Width() != 3 || s.Height() != 3 {
		t.Errorf("size = %dx%d, expected 3x3", s.Width(), s.Height())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	str := s.String()
	lines := strings.Split(str, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " {
		t.Errorf("line 0 = %q, expected %q", lines[0], "a  ")
	}
	if lines[1] != "  b" {
		t.Errorf("line 1 = %q, expected %q", lines[1], "  b")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawHLine(1, 1, 3, '-', ColorYellow)

	if row := s.Row(1); row != " --- " {
		t.Errorf("Row(1) = %q, expected %q", row, " --- ")
	}
	if s.GetCell(2, 1).Color != ColorYellow {
		t.Error("DrawHLine should set the color")
	}
}
