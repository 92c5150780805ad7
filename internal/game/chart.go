package game

import "time"

type Type int

const (
	// 7K1S, lanes 16 11 12 13 14 15 18 19
	Single Type = iota
	// 14K2S, both sides
	Dual
)

func (t Type) String() string {
	if t == Dual {
		return "dual"
	}
	return "single"
}

// DefaultBPM is used when the chart does not declare #BPM.
const DefaultBPM = 130

// DefaultRank is used when the chart does not declare #RANK, 2 = normal.
const DefaultRank = 2

type Metadata struct {
	Player     int     `json:"player"`
	Genre      string  `json:"genre"`
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	Subtitle   string  `json:"subtitle"`
	Subartist  string  `json:"subartist"`
	StageFile  string  `json:"stagefile"`
	Banner     string  `json:"banner"`
	PlayLevel  int     `json:"playLevel"`
	Difficulty int     `json:"difficulty"` // 1 easy, 2 normal, 3 hyper, 4 another, 5 insane
	Total      float64 `json:"total"`
	Rank       int     `json:"rank"` // 0 very hard, 1 hard, 2 normal, 3 easy
}

// Chart is a fully resolved chart. It is built once by a parser and only read afterwards.
type Chart struct {
	Metadata
	Type Type   `json:"type"`
	Path string `json:"path"`
	Sum  string `json:"sum"` // SHA-256 of the source bytes

	WAVs       KeyTable   `json:"wavs"`
	BMPs       KeyTable   `json:"bmps"`
	Signatures Signatures `json:"signatures"`

	Objects []Object `json:"objects"` // Sorted by position
	Sectors []Sector `json:"sectors"` // In construction order, Sectors[0] is at position 0

	NoteCount     int `json:"noteCount"`
	LongNoteCount int `json:"longNoteCount"`
	BombCount     int `json:"bombCount"`
}

func (c *Chart) BPM() float64 {
	if len(c.Sectors) == 0 {
		return DefaultBPM
	}
	return c.Sectors[0].BPM
}

// Length is the time of the last object.
func (c *Chart) Length() time.Duration {
	var last float64
	for _, o := range c.Objects {
		if o.Time > last {
			last = o.Time
		}
	}
	return time.Duration(last * float64(time.Second))
}
