package parser

import (
	"fmt"
	"log"
	"math"
	"math/big"
	"strconv"

	"git.lost.host/meutraa/bms/internal/game"
)

// Channels, as base-36 values of their two character identifiers.
const (
	channelBGM       = 1 // 01
	channelBPM       = 3 // 03, hexadecimal BPM inline
	channelBGA       = 4 // 04
	channelPoor      = 6 // 06
	channelLayer     = 7 // 07
	channelBPMTable  = 8 // 08, #BPMxx reference
	channelStopTable = 9 // 09, #STOPxx reference

	groupNote      = 1  // 11-19, 21-29
	groupInvisible = 3  // 31-39, 41-49
	groupLongNote  = 5  // 51-59, 61-69
	groupBomb      = 13 // D1-D9, E1-E9
)

type tempoKind int

const (
	tempoChange tempoKind = iota
	tempoStop
)

// tempoEvent is a BPM change or stop waiting for the sector pass.
type tempoEvent struct {
	kind     tempoKind
	position float64
	value    float64 // BPM, or the stop length in measures
}

// decoder turns channel data lines into objects and tempo events. Positions
// are set, times are resolved later.
type decoder struct {
	bpms   map[int]float64
	stops  map[int]float64
	lnobj  map[int]bool
	open   map[int]bool // Long note state per channel
	logger *log.Logger

	objects []game.Object
	events  []tempoEvent
}

func newDecoder(logger *log.Logger) *decoder {
	return &decoder{
		bpms:   make(map[int]float64),
		stops:  make(map[int]float64),
		lnobj:  make(map[int]bool),
		open:   make(map[int]bool),
		logger: logger,
	}
}

// lane splits a lane channel into player and line. group is the channel
// group of player 1, player 2 follows it.
func lane(channel, group int) (player int, line int, ok bool) {
	player = channel/36 - group + 1
	line = channel % 36
	if player != 1 && player != 2 {
		return 0, 0, false
	}
	switch line {
	case 1, 2, 3, 4, 5, 6, 8, 9:
		return player, line, true
	}
	return 0, 0, false
}

// toggle flips the long note state of a channel and returns the state it had.
func (d *decoder) toggle(channel int) bool {
	was, ok := d.open[channel]
	if !ok {
		was = false
	}
	d.open[channel] = !was
	return was
}

func (d *decoder) emit(position float64, denom int, p game.Payload) {
	d.objects = append(d.objects, game.Object{
		Position: position,
		Time:     math.NaN(),
		Denom:    denom,
		Payload:  p,
	})
}

func known(channel int) bool {
	switch channel {
	case channelBGM, channelBPM, channelBGA, channelPoor, channelLayer, channelBPMTable, channelStopTable:
		return true
	}
	for _, group := range []int{groupNote, groupInvisible, groupLongNote, groupBomb} {
		if _, _, ok := lane(channel, group); ok {
			return true
		}
	}
	return false
}

// Decode handles one #mmmcc:data line. Unknown channels are ignored.
func (d *decoder) Decode(measure, channel int, data string) error {
	if !known(channel) {
		return nil
	}
	l := len(data) / 2
	for i := 0; i < l; i++ {
		cell := data[i*2 : i*2+2]
		key, err := game.ParseKey(cell)
		if nil != err {
			return err
		}
		if key == 0 {
			continue
		}

		position := float64(measure) + float64(i)/float64(l)
		denom := int(big.NewRat(int64(i*4), int64(l)).Denom().Int64())

		if err := d.cell(channel, position, denom, cell, key); nil != err {
			return err
		}
	}
	return nil
}

func (d *decoder) cell(channel int, position float64, denom int, cell string, key int) error {
	switch channel {
	case channelBGM:
		d.emit(position, denom, game.BGM{Key: key})
		return nil
	case channelBPM:
		bpm, err := strconv.ParseUint(cell, 16, 8)
		if nil != err {
			return fmt.Errorf("%w: hexadecimal BPM %q", game.ErrMalformedNumeric, cell)
		}
		d.events = append(d.events, tempoEvent{tempoChange, position, float64(bpm)})
		return nil
	case channelBGA:
		d.emit(position, denom, game.BMP{Key: key, Layer: game.LayerBase})
		return nil
	case channelPoor:
		d.emit(position, denom, game.BMP{Key: key, Layer: game.LayerPoor})
		return nil
	case channelLayer:
		d.emit(position, denom, game.BMP{Key: key, Layer: game.LayerFront})
		return nil
	case channelBPMTable:
		bpm, ok := d.bpms[key]
		if !ok {
			d.logger.Printf("undefined #BPM%s at %.3f, ignored", cell, position)
			return nil
		}
		d.events = append(d.events, tempoEvent{tempoChange, position, bpm})
		return nil
	case channelStopTable:
		stop, ok := d.stops[key]
		if !ok {
			d.logger.Printf("undefined #STOP%s at %.3f, ignored", cell, position)
			return nil
		}
		d.events = append(d.events, tempoEvent{tempoStop, position, stop})
		return nil
	}

	if player, line, ok := lane(channel, groupNote); ok {
		end := d.lnobj[key]
		d.emit(position, denom, game.Note{Player: player, Line: line, Key: key, End: end})
		if end {
			// The closing key still sounds
			d.emit(position, denom, game.BGM{Key: key})
		}
	} else if player, line, ok := lane(channel, groupInvisible); ok {
		d.emit(position, denom, game.Invisible{Player: player, Line: line, Key: key})
	} else if player, line, ok := lane(channel, groupLongNote); ok {
		d.emit(position, denom, game.Note{Player: player, Line: line, Key: key, End: d.toggle(channel)})
	} else if player, line, ok := lane(channel, groupBomb); ok {
		damage := key
		if damage > game.MaxDamage {
			damage = game.MaxDamage
		}
		d.emit(position, denom, game.Bomb{Player: player, Line: line, Damage: damage})
	}
	return nil
}
