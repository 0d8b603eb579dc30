package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Score: 90")
	for x := 2; x < 6; x++ {
		s.SetColored(x, 1, '#', core.ColorGold)
	}

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Score: 90") {
		t.Errorf("uncoloured row = %q", lines[0])
	}
	if !strings.Contains(lines[1], "####") {
		t.Errorf("coloured row lost its text: %q", lines[1])
	}
}

func TestEveryColorHasAStyle(t *testing.T) {
	for c := core.ColorOrange; c <= core.ColorBrightYellow; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for colour %d", c)
		}
	}
}
