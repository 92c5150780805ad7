package game

// Sector anchors the tempo timeline: from Position onward, starting at Time,
// the chart scrolls at BPM.
type Sector struct {
	Position  float64 `json:"position"`  // Unresolved position the sector starts at
	Time      float64 `json:"time"`      // Seconds from the chart start
	BPM       float64 `json:"bpm"`       // 0 while stopped
	Inclusive bool    `json:"inclusive"` // Whether an object exactly at Position belongs to this sector
}

// TimeAt is the time of a position at or after the sector start.
func (s Sector) TimeAt(signatures *Signatures, position float64) float64 {
	if s.BPM <= 0 {
		return s.Time
	}
	return s.Time + signatures.Diff(s.Position, position)*240/s.BPM
}

// ActiveSector returns the sector in effect at position. Sectors are searched
// from the most recently appended backward, so among sectors sharing a
// position the last one that admits the position wins. The first sector is
// returned for positions before every sector.
func ActiveSector(sectors []Sector, position float64) Sector {
	for i := len(sectors) - 1; i >= 0; i-- {
		s := sectors[i]
		if s.Position < position || (s.Inclusive && s.Position == position) {
			return s
		}
	}
	if len(sectors) == 0 {
		return Sector{Inclusive: true}
	}
	return sectors[0]
}

// sectorAtTime is ActiveSector keyed by time instead of position.
func sectorAtTime(sectors []Sector, time float64) Sector {
	for i := len(sectors) - 1; i >= 0; i-- {
		s := sectors[i]
		if s.Time < time || (s.Inclusive && s.Time == time) {
			return s
		}
	}
	if len(sectors) == 0 {
		return Sector{Inclusive: true}
	}
	return sectors[0]
}
