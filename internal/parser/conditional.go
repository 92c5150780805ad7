package parser

import (
	"fmt"

	"git.lost.host/meutraa/bms/internal/game"
)

type frame struct {
	skip   bool
	parent bool // Whether the enclosing block was already skipping
}

// conditional tracks #RANDOM / #IF / #ELSE / #ENDIF nesting. The bottom
// frame is never popped and never skips.
type conditional struct {
	random func(n int) int
	draw   int
	drawn  bool
	stack  []frame
}

func newConditional(random func(n int) int) *conditional {
	return &conditional{
		random: random,
		stack:  []frame{{}},
	}
}

// Skipping reports whether the current line belongs to an inactive branch.
func (c *conditional) Skipping() bool {
	return c.stack[len(c.stack)-1].skip
}

// Random draws a value in [1, n]. Nothing is drawn inside an inactive branch.
func (c *conditional) Random(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: #RANDOM %d", game.ErrMalformedNumeric, n)
	}
	if c.Skipping() {
		return nil
	}
	c.draw = c.random(n)
	c.drawn = true
	return nil
}

func (c *conditional) SetRandom(n int) {
	if c.Skipping() {
		return
	}
	c.draw = n
	c.drawn = true
}

// If opens a block that is active only when the last draw equals n. Without
// any draw the block is skipped.
func (c *conditional) If(n int) {
	parent := c.Skipping()
	c.stack = append(c.stack, frame{
		skip:   parent || !c.drawn || c.draw != n,
		parent: parent,
	})
}

func (c *conditional) Else() error {
	if len(c.stack) == 1 {
		return fmt.Errorf("%w: #ELSE", game.ErrUnmatchedConditional)
	}
	top := &c.stack[len(c.stack)-1]
	top.skip = top.parent || !top.skip
	return nil
}

func (c *conditional) EndIf() error {
	if len(c.stack) == 1 {
		return fmt.Errorf("%w: #ENDIF", game.ErrUnmatchedConditional)
	}
	c.stack = c.stack[:len(c.stack)-1]
	return nil
}

// Depth is the number of open #IF blocks.
func (c *conditional) Depth() int {
	return len(c.stack) - 1
}
