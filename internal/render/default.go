package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"git.lost.host/meutraa/bms/internal/game"
	"git.lost.host/meutraa/bms/internal/theme"
	"golang.org/x/term"
)

// Lines in the order they sit on a controller, scratch first.
var lanes = [...]int{6, 1, 2, 3, 4, 5, 8, 9}

type DefaultRenderer struct {
	Theme theme.Theme
	Width int // Columns per row, zero detects the terminal width

	buffer strings.Builder
}

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); nil == err && w > 0 {
			return w
		}
	}
	return 80
}

type row struct {
	measure int
	time    float64
	cells   [2][len(lanes)]string
	bgm     int
	bmp     int
}

func (r *DefaultRenderer) cell(o game.Object) (player, line int, s string) {
	switch p := o.Payload.(type) {
	case game.Note:
		if p.End {
			return p.Player, p.Line, r.Theme.RenderLongEnd(o.Denom)
		}
		return p.Player, p.Line, r.Theme.RenderNote(o.Denom)
	case game.Invisible:
		return p.Player, p.Line, r.Theme.RenderInvisible()
	case game.Bomb:
		return p.Player, p.Line, r.Theme.RenderBomb(p.Damage)
	}
	return 0, 0, ""
}

func lane(line int) int {
	for i, l := range lanes {
		if l == line {
			return i
		}
	}
	return -1
}

func (r *DefaultRenderer) rows(c *game.Chart) []*row {
	rows := []*row{}
	var current *row
	last := -1.0
	for _, o := range c.Objects {
		if nil == current || o.Position != last {
			current = &row{measure: o.Measure(), time: o.Time}
			for p := range current.cells {
				for i := range current.cells[p] {
					current.cells[p][i] = r.Theme.RenderEmpty()
				}
			}
			rows = append(rows, current)
			last = o.Position
		}
		switch o.Payload.(type) {
		case game.BGM:
			current.bgm++
			continue
		case game.BMP:
			current.bmp++
			continue
		}
		player, line, s := r.cell(o)
		if i := lane(line); i >= 0 && player >= 1 && player <= 2 {
			current.cells[player-1][i] = s
		}
	}
	return rows
}

func (r *DefaultRenderer) Render(w io.Writer, c *game.Chart) error {
	width := r.Width
	if width <= 0 {
		width = TerminalWidth()
	}
	players := 1
	if c.Type == game.Dual {
		players = 2
	}

	for _, row := range r.rows(c) {
		head := fmt.Sprintf("%03d %7.3fs |", row.measure, row.time)
		r.buffer.WriteString(head)
		cols := len(head)
		for p := 0; p < players; p++ {
			for _, s := range row.cells[p] {
				r.buffer.WriteString(s)
			}
			r.buffer.WriteString("|")
			cols += len(lanes) + 1
		}

		extras := ""
		if row.bgm > 0 {
			extras += fmt.Sprintf(" bgm:%d", row.bgm)
		}
		if row.bmp > 0 {
			extras += fmt.Sprintf(" bmp:%d", row.bmp)
		}
		if room := width - cols; room < len(extras) {
			if room < 0 {
				room = 0
			}
			extras = strings.TrimRight(extras[:room], " ")
		}
		r.buffer.WriteString(extras)
		r.buffer.WriteString("\n")
	}
	return r.flush(w)
}

func (r *DefaultRenderer) flush(w io.Writer) error {
	_, err := io.WriteString(w, r.buffer.String())
	r.buffer.Reset()
	return err
}
