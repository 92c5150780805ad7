package export

import (
	"io"
	"math"

	"git.lost.host/meutraa/bms/internal/game"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/exp/slices"
)

const (
	// Tempo of the exported file. Chart tempo changes and stops are already
	// folded into the object times, so one tempo is enough.
	tempo          = 120.0
	resolution     = 960
	ticksPerSecond = resolution * tempo / 60

	noteChannel = 9 // General MIDI percussion
	bgmChannel  = 0
	velocity    = 100
	gate        = resolution / 8 // Ticks a note is held for
)

type event struct {
	tick uint32
	msg  midi.Message
}

func tick(seconds float64) uint32 {
	if seconds < 0 {
		return 0
	}
	return uint32(math.Round(seconds * ticksPerSecond))
}

// Key maps a lane to a percussion key, 36 upward for player 1 and 48 upward
// for player 2.
func Key(player, line int) uint8 {
	return uint8(36 + (player-1)*12 + line)
}

func events(c *game.Chart) []event {
	evs := []event{}
	add := func(channel, key uint8, t float64) {
		on := tick(t)
		evs = append(evs,
			event{on, midi.NoteOn(channel, key, velocity)},
			event{on + gate, midi.NoteOff(channel, key)},
		)
	}
	for _, o := range c.Objects {
		switch p := o.Payload.(type) {
		case game.Note:
			add(noteChannel, Key(p.Player, p.Line), o.Time)
		case game.BGM:
			add(bgmChannel, uint8(p.Key%128), o.Time)
		case game.BMP, game.Invisible, game.Bomb:
		}
	}
	slices.SortStableFunc(evs, func(a, b event) bool {
		return a.tick < b.tick
	})
	return evs
}

// WriteMIDI writes playable notes and background samples of a resolved
// chart as a single track standard MIDI file.
func WriteMIDI(w io.Writer, c *game.Chart) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(resolution)

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(c.Title))
	tr.Add(0, smf.MetaTempo(tempo))

	var last uint32
	for _, ev := range events(c) {
		tr.Add(ev.tick-last, ev.msg)
		last = ev.tick
	}
	tr.Close(0)

	if err := s.Add(tr); nil != err {
		return err
	}
	_, err := s.WriteTo(w)
	return err
}
