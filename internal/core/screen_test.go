package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("dimensions = %dx%d, expected 40x12", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("empty screen String() = %q", s.String())
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(3, 4, '█', ColorGreen)
	c := s.GetCell(3, 4)
	if c.Rune != '█' || c.Color != ColorGreen {
		t.Errorf("GetCell(3, 4) = %+v, expected green block", c)
	}

	s.Set(3, 4, 'x')
	if s.GetCell(3, 4).Color != ColorDefault {
		t.Error("Set should reset the cell color to default")
	}

	// Out of bounds writes are ignored and reads return blank
	s.SetColor(-1, 0, 'A', ColorRed)
	s.SetColor(0, 100, 'A', ColorRed)
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawRectColor(NewRect(0, 0, 6, 3), '#', ColorRed)
	s.Clear()

	if strings.Contains(s.String(), "#") {
		t.Error("Clear should remove every drawn rune")
	}
	if s.GetCell(2, 2).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Score")

	if !strings.HasPrefix(s.Row(1), "  Score") {
		t.Errorf("Row(1) = %q, expected text at x=2", s.Row(1))
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(21, 3)
	banner := "GAME OVER — 10"
	s.DrawTextCentered(1, banner)

	// 14 runes in 21 columns starts at column 3
	if s.Get(3, 1) != 'G' {
		t.Errorf("centered text should start at x=3, row = %q", s.Row(1))
	}
	if s.Get(13, 1) != '—' {
		t.Errorf("expected em dash at x=13, got %q", s.Get(13, 1))
	}
	if !s.Contains(banner) {
		t.Error("Contains should find the banner")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRectColor(NewRect(2, 2, 3, 3), '#', ColorCyan)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorCyan {
				t.Errorf("DrawRectColor: cell (%d, %d) = %+v", x, y, c)
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.r {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}

	// Degenerate boxes draw nothing
	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 5))
	if strings.TrimSpace(s.String()) != "" {
		t.Error("a box narrower than 2 should not be drawn")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
	if lines := s.Lines(); len(lines) != 3 || lines[1] != "BBBBB" {
		t.Errorf("Lines() = %q", lines)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorYellow)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize dimensions = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorYellow {
		t.Error("colors should survive a resize")
	}
	if s.Row(7) != strings.Repeat(" ", 15) {
		t.Errorf("new rows should be blank, got %q", s.Row(7))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)
	if got := s.Row(-1); got != "          " {
		t.Errorf("out of bounds row should be spaces, got %q", got)
	}
}
