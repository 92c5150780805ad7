package parser

import (
	"log"

	"git.lost.host/meutraa/bms/internal/game"
)

type Parser interface {
	Parse(file string) (*game.Chart, error)
}

type Options struct {
	Seed     int64           // Seeds #RANDOM when Random is nil
	Random   func(n int) int // Returns a value in [1, n], replaces the seeded source
	Encoding Encoding
	Cascade  bool        // Look for sibling extensions of missing assets
	Logger   *log.Logger // Defaults to the standard logger
}
