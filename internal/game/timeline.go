package game

// ResolveSignatures returns the signature weighted length from the chart start
// to position, in nominal four beat measures.
func (c *Chart) ResolveSignatures(position float64) float64 {
	return c.Signatures.Diff(0, position)
}

// PositionToTime returns the seconds from the chart start at which position is reached.
func (c *Chart) PositionToTime(position float64) float64 {
	return ActiveSector(c.Sectors, position).TimeAt(&c.Signatures, position)
}

// TimeToFraction converts a time to a resolved fraction, see ResolveSignatures.
// During a stop the fraction holds at the stop position.
func (c *Chart) TimeToFraction(t float64) float64 {
	s := sectorAtTime(c.Sectors, t)
	return c.ResolveSignatures(s.Position) + (t-s.Time)*s.BPM/240
}

// TimeToPosition is the inverse of PositionToTime.
func (c *Chart) TimeToPosition(t float64) float64 {
	return c.Signatures.Unresolve(c.TimeToFraction(t))
}
