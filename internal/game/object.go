package game

import (
	"encoding/json"
	"time"
)

type Kind uint8

const (
	KindBGM Kind = iota
	KindBMP
	KindNote
	KindInvisible
	KindBomb
)

func (k Kind) String() string {
	switch k {
	case KindBGM:
		return "bgm"
	case KindBMP:
		return "bmp"
	case KindNote:
		return "note"
	case KindInvisible:
		return "invisible"
	case KindBomb:
		return "bomb"
	}
	return "unknown"
}

// Layer selects which image plane a BMP object targets.
type Layer int

const (
	LayerPoor  Layer = -1 // Shown on a miss
	LayerBase  Layer = 0
	LayerFront Layer = 1
)

// Payload is one of BGM, BMP, Note, Invisible or Bomb. The set is closed,
// only this package can add members.
type Payload interface {
	Kind() Kind
	payload()
}

type BGM struct {
	Key int // WAV index
}

type BMP struct {
	Key   int // BMP index
	Layer Layer
}

type Note struct {
	Player int
	Line   int
	Key    int  // WAV index
	End    bool // Closes a long note
}

type Invisible struct {
	Player int
	Line   int
	Key    int // WAV index
}

type Bomb struct {
	Player int
	Line   int
	Damage int // 1295 is the maximum
}

func (BGM) Kind() Kind       { return KindBGM }
func (BMP) Kind() Kind       { return KindBMP }
func (Note) Kind() Kind      { return KindNote }
func (Invisible) Kind() Kind { return KindInvisible }
func (Bomb) Kind() Kind      { return KindBomb }

func (BGM) payload()       {}
func (BMP) payload()       {}
func (Note) payload()      {}
func (Invisible) payload() {}
func (Bomb) payload()      {}

// MaxDamage caps the damage of a bomb.
const MaxDamage = KeyCount - 1

type Object struct {
	Position float64 // Unresolved position, measure + offset within the measure
	Time     float64 // Seconds from the chart start, NaN until the chart is built
	Denom    int     // Snap within a beat, 1 = quarter, 2 = eighth, 4 = sixteenth
	Payload  Payload
}

func (o Object) Kind() Kind {
	return o.Payload.Kind()
}

func (o Object) Measure() int {
	return int(o.Position)
}

func (o Object) Duration() time.Duration {
	return time.Duration(o.Time * float64(time.Second))
}

func (o Object) MarshalJSON() ([]byte, error) {
	return marshal(struct {
		Kind     string  `json:"kind"`
		Position float64 `json:"position"`
		Time     float64 `json:"time"`
		Denom    int     `json:"denom"`
		Payload  Payload `json:"payload"`
	}{o.Kind().String(), o.Position, o.Time, o.Denom, o.Payload})
}

func marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}
