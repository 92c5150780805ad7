package theme

import (
	"fmt"

	"git.lost.host/meutraa/bms/internal/game"
)

// DefaultTheme colors notes by their snap. Without Color the symbols are
// written bare, for pipes and files.
type DefaultTheme struct {
	Color bool
}

func (t *DefaultTheme) paint(c Color, sym string) string {
	if !t.Color {
		return sym
	}
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, sym)
}

func (t *DefaultTheme) RenderNote(denom int) string {
	return t.paint(NoteColor(denom), noteSym)
}

func (t *DefaultTheme) RenderLongEnd(denom int) string {
	return t.paint(NoteColor(denom), endSym)
}

func (t *DefaultTheme) RenderInvisible() string {
	return t.paint(noteColors[-1], invisibleSym)
}

func (t *DefaultTheme) RenderBomb(damage int) string {
	// Instant kills stand out from partial damage
	if damage == game.MaxDamage {
		return t.paint(noteColors[1], killSym)
	}
	return t.paint(noteColors[1], bombSym)
}

func (t *DefaultTheme) RenderEmpty() string {
	return " "
}

const (
	noteSym      = "⬤"
	endSym       = "▬"
	invisibleSym = "·"
	bombSym      = "⨯"
	killSym      = "☠"
)

var noteColors = map[int]Color{
	1:  {236, 30, 0},    // 1/4 red
	2:  {0, 118, 236},   // 1/8 blue
	3:  {106, 0, 236},   // 1/12 purple
	4:  {236, 195, 0},   // 1/16 yellow
	6:  {236, 0, 106},   // 1/24 pink
	8:  {236, 128, 0},   // 1/32 orange
	12: {173, 236, 236}, // 1/48 light blue
	16: {0, 236, 128},   // 1/64 green
	48: {110, 147, 89},  // 1/192 olive
	-1: {106, 106, 106}, // other grey
}

// NoteColor returns the color for a snap denominator, grey for uncommon snaps.
func NoteColor(denom int) Color {
	col, ok := noteColors[denom]
	if !ok {
		return noteColors[-1]
	}
	return col
}
