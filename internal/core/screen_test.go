package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColorAndGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, '@', ColorGreen)
	if c := s.GetCell(5, 5); c.Rune != '@' || c.Color != ColorGreen {
		t.Errorf("GetCell(5, 5) = %+v, expected '@' in green", c)
	}

	// Set keeps the color already in place.
	s.Set(5, 5, 'o')
	if c := s.GetCell(5, 5); c.Rune != 'o' || c.Color != ColorGreen {
		t.Errorf("Set should keep color, got %+v", c)
	}

	// Out of bounds writes are ignored and reads return a blank.
	s.SetColor(-1, 0, 'A', ColorRed)
	s.Set(100, 0, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

// paint covers the whole screen with one colored rune.
func paint(s *Screen, r rune, c Color) {
	for y, h := 0, s.Height(); y < h; y++ {
		for x, w := 0, s.Width(); x < w; x++ {
			s.SetColor(x, y, r, c)
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	paint(s, '.', ColorGray)

	if c := s.GetCell(4, 4); c.Rune != '.' || c.Color != ColorGray {
		t.Errorf("after paint got %+v", c)
	}

	s.Clear()
	if c := s.GetCell(4, 4); c != blankCell {
		t.Errorf("after Clear got %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Score", ColorYellow)

	for i, ch := range "Score" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorYellow {
			t.Errorf("DrawTextColor: expected %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	s.DrawText(18, 0, "Hello") // Only "He" fits
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}

	s.DrawTextCentered(3, "Hi")
	if s.Get(9, 3) != 'H' || s.Get(10, 3) != 'i' {
		t.Error("DrawTextCentered placed text at the wrong column")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	paint(s, 'x', ColorRed)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 2) != ' ' {
		t.Error("box interior should be blanked")
	}
	if s.Get(0, 0) != 'x' {
		t.Error("DrawBox should not touch the outside")
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawHLine(0, 2, 5, '─', ColorGray)

	if got, want := s.String(), "AAAAA\nBBBBB\n─────"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
	if s.Row(-1) != "     " {
		t.Errorf("out of bounds row should be spaces, got %q", s.Row(-1))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize got %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should survive enlarging, row 0 = %q", s.Row(0))
	}
	if s.Get(14, 7) != ' ' {
		t.Error("new area should be blank")
	}
}
