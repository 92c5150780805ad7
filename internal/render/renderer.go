package render

import (
	"io"

	"git.lost.host/meutraa/bms/internal/game"
)

// Renderer writes a resolved chart as text, one row per occupied position.
type Renderer interface {
	Render(w io.Writer, c *game.Chart) error
}
