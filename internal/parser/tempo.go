package parser

import (
	"git.lost.host/meutraa/bms/internal/game"
	"golang.org/x/exp/slices"
)

// buildSectors lays the tempo events over the base tempo. Events at the same
// position keep their source order.
func buildSectors(bpm float64, signatures *game.Signatures, events []tempoEvent) []game.Sector {
	slices.SortStableFunc(events, func(a, b tempoEvent) bool {
		return a.position < b.position
	})

	sectors := make([]game.Sector, 1, len(events)*2+1)
	sectors[0] = game.Sector{Position: 0, Time: 0, BPM: bpm, Inclusive: true}

	for _, ev := range events {
		active := game.ActiveSector(sectors, ev.position)
		elapsed := active.TimeAt(signatures, ev.position)

		switch ev.kind {
		case tempoChange:
			sectors = append(sectors, game.Sector{
				Position:  ev.position,
				Time:      elapsed,
				BPM:       ev.value,
				Inclusive: true,
			})
		case tempoStop:
			resume := elapsed
			if active.BPM > 0 {
				resume += ev.value * 240 / active.BPM
			}
			sectors = append(sectors,
				game.Sector{Position: ev.position, Time: elapsed, BPM: 0, Inclusive: true},
				game.Sector{Position: ev.position, Time: resume, BPM: active.BPM, Inclusive: false},
			)
		}
	}
	return sectors
}

// resolve stamps every object with its time and orders them by position.
func resolve(c *game.Chart, objects []game.Object) []game.Object {
	for i := range objects {
		objects[i].Time = c.PositionToTime(objects[i].Position)
	}
	slices.SortStableFunc(objects, func(a, b game.Object) bool {
		return a.Position < b.Position
	})
	return objects
}
