package theme

import (
	"testing"

	"git.lost.host/meutraa/bms/internal/game"
)

func TestNoteColor(t *testing.T) {
	tests := []struct {
		denom    int
		expected Color
	}{
		{1, Color{236, 30, 0}},
		{4, Color{236, 195, 0}},
		{48, Color{110, 147, 89}},
		{5, Color{106, 106, 106}},
		{0, Color{106, 106, 106}},
	}
	for _, test := range tests {
		if c := NoteColor(test.denom); c != test.expected {
			t.Log("denom", test.denom, "expected", test.expected, "got", c)
			t.Fail()
		}
	}
}

func TestRender(t *testing.T) {
	plain := &DefaultTheme{}
	color := &DefaultTheme{Color: true}

	tests := []struct {
		got, expected string
	}{
		{plain.RenderNote(2), "⬤"},
		{plain.RenderLongEnd(2), "▬"},
		{plain.RenderBomb(10), "⨯"},
		{plain.RenderBomb(game.MaxDamage), "☠"},
		{plain.RenderEmpty(), " "},
		{color.RenderNote(1), "\033[38;2;236;30;0m⬤\033[0m"},
		{color.RenderNote(2), "\033[38;2;0;118;236m⬤\033[0m"},
		{color.RenderInvisible(), "\033[38;2;106;106;106m·\033[0m"},
	}
	for i, test := range tests {
		if test.got != test.expected {
			t.Logf("%d: expected %q, got %q", i, test.expected, test.got)
			t.Fail()
		}
	}
}
