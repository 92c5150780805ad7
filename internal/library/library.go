package library

import (
	"time"

	"git.lost.host/meutraa/bms/internal/game"
)

type Library interface {
	Init(path string) error
	Deinit()

	// Save the resolved chart, replacing an earlier entry with the same sum
	Save(chart *game.Chart) (*Entry, error)

	// Load a chart entry by its sum
	Load(sum string) (*Entry, error)

	List() ([]Entry, error)
}

type Entry struct {
	ID        string        `json:"id"`
	Sum       string        `json:"sum"`
	Path      string        `json:"path"`
	Title     string        `json:"title"`
	Artist    string        `json:"artist"`
	Genre     string        `json:"genre"`
	PlayLevel int           `json:"playLevel"`
	BPM       float64       `json:"bpm"`
	Length    time.Duration `json:"length"`
	NoteCount int           `json:"noteCount"`
	Indexed   time.Time     `json:"indexed"`

	// The chart as JSON, only filled by Load
	Data []byte `json:"-"`
}
