package game

import (
	"fmt"
	"math"
)

// MeasureCount bounds the measure index, charts address measures 000 to 999.
const MeasureCount = 1000

// Signatures holds per measure length multipliers. A measure without an
// override spans 1.0, four beats. The zero value has no overrides.
type Signatures struct {
	overrides map[int]float64
}

func (s *Signatures) Set(measure int, value float64) error {
	if measure < 0 || measure >= MeasureCount {
		return fmt.Errorf("%w: measure %d", ErrIndexOutOfRange, measure)
	}
	if nil == s.overrides {
		s.overrides = make(map[int]float64)
	}
	s.overrides[measure] = value
	return nil
}

// Get returns the multiplier of a measure, 1.0 unless overridden.
func (s *Signatures) Get(measure int) float64 {
	if v, ok := s.overrides[measure]; ok {
		return v
	}
	return 1
}

// Diff is the signature weighted length between two unresolved positions,
// negative when b is before a.
func (s *Signatures) Diff(a, b float64) float64 {
	negative := a > b
	if negative {
		a, b = b, a
	}
	am, bm := math.Floor(a), math.Floor(b)
	af, bf := a-am, b-bm
	ai, bi := int(am), int(bm)

	var result float64
	if ai == bi {
		result = (bf - af) * s.Get(ai)
	} else {
		result = (1-af)*s.Get(ai) + bf*s.Get(bi)
		for i := ai + 1; i < bi; i++ {
			result += s.Get(i)
		}
	}
	if negative {
		return -result
	}
	return result
}

// Unresolve maps a signature weighted length from position 0 back to an
// unresolved position. Zero length measures are stepped over.
func (s *Signatures) Unresolve(resolved float64) float64 {
	if resolved <= 0 {
		return resolved
	}
	for m := 0; m < MeasureCount; m++ {
		w := s.Get(m)
		if w <= 0 {
			continue
		}
		if resolved < w {
			return float64(m) + resolved/w
		}
		resolved -= w
	}
	return MeasureCount + resolved
}

// Overrides returns a copy of the non default measures.
func (s *Signatures) Overrides() map[int]float64 {
	out := make(map[int]float64, len(s.overrides))
	for k, v := range s.overrides {
		out[k] = v
	}
	return out
}

func (s Signatures) MarshalJSON() ([]byte, error) {
	return marshal(s.Overrides())
}
