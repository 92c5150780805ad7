package audio

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"git.lost.host/meutraa/bms/internal/game"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// SampleLength decodes the header of a keysound and returns how long it plays.
func SampleLength(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		f.Close()
		return 0, fmt.Errorf("unsupported audio format: %v", path)
	}
	if err != nil {
		f.Close()
		return 0, err
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// Probe caches sample lengths by path.
type Probe struct {
	mu      sync.Mutex
	lengths map[string]time.Duration
}

func (p *Probe) Length(path string) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if nil == p.lengths {
		p.lengths = map[string]time.Duration{}
	}
	if d, ok := p.lengths[path]; ok {
		return d
	}
	d, err := SampleLength(path)
	if nil != err {
		log.Println("unable to probe", path, err)
	}
	p.lengths[path] = d
	return d
}

// PlayLength is the time at which the last keysound of a resolved chart
// finishes. Keys without a registered sample only count their start time.
func (p *Probe) PlayLength(c *game.Chart) time.Duration {
	var end time.Duration
	for _, o := range c.Objects {
		key := -1
		switch v := o.Payload.(type) {
		case game.BGM:
			key = v.Key
		case game.Note:
			key = v.Key
		}
		if key < 0 {
			continue
		}
		t := o.Duration()
		if path, ok := c.WAVs.Get(key); ok {
			t += p.Length(path)
		}
		if t > end {
			end = t
		}
	}
	return end
}
