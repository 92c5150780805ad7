package parser

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"git.lost.host/meutraa/bms/internal/game"
	"github.com/pkg/errors"
)

type DefaultParser struct {
	Options
}

var (
	randomRe    = regexp.MustCompile(`(?i)^\s*#RANDOM\s*(\d+)\s*$`)
	setRandomRe = regexp.MustCompile(`(?i)^\s*#SETRANDOM\s*(\d+)\s*$`)
	endRandomRe = regexp.MustCompile(`(?i)^\s*#ENDRANDOM\s*$`)
	ifRe        = regexp.MustCompile(`(?i)^\s*#IF\s*(\d+)\s*$`)
	elseRe      = regexp.MustCompile(`(?i)^\s*#ELSE\s*$`)
	endifRe     = regexp.MustCompile(`(?i)^\s*#ENDIF\s*$`)

	// Title (Subtitle), Title [Subtitle], Title -Subtitle- ... The last
	// bracketed group is the subtitle.
	nestedSubtitleRe = regexp.MustCompile(`^(.+)\s*[(\[～<"\-](.+)[)\]～>"\-]$`)
)

type directive struct {
	re    *regexp.Regexp
	apply func(b *builder, m []string) error
}

func re(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^\s*#` + pattern + `\s*$`)
}

// Matched in order, the first match wins.
var directives = []directive{
	{re(`PLAYER\s*(\d+)`), func(b *builder, m []string) (err error) {
		b.chart.Player, err = atoi(m[1])
		return
	}},
	{re(`GENRE\s*(.*?)`), func(b *builder, m []string) error {
		b.chart.Genre = m[1]
		return nil
	}},
	{re(`TITLE\s*(.*?)`), func(b *builder, m []string) error {
		b.chart.Title = m[1]
		if n := nestedSubtitleRe.FindStringSubmatch(m[1]); nil != n {
			b.chart.Title = strings.TrimSpace(n[1])
			b.chart.Subtitle = "[" + n[2] + "]"
		}
		return nil
	}},
	{re(`ARTIST\s*(.*?)`), func(b *builder, m []string) error {
		b.chart.Artist = m[1]
		return nil
	}},
	{re(`SUBTITLE\s*(.*?)`), func(b *builder, m []string) error {
		b.chart.Subtitle = m[1]
		return nil
	}},
	{re(`SUBARTIST\s*(.*?)`), func(b *builder, m []string) error {
		b.chart.Subartist = m[1]
		return nil
	}},
	{re(`STAGEFILE\s*(.*?)`), func(b *builder, m []string) error {
		b.chart.StageFile = b.asset(m[1])
		return nil
	}},
	{re(`BANNER\s*(.*?)`), func(b *builder, m []string) error {
		b.chart.Banner = b.asset(m[1])
		return nil
	}},
	{re(`PLAYLEVEL\s*(\d+)`), func(b *builder, m []string) (err error) {
		b.chart.PlayLevel, err = atoi(m[1])
		return
	}},
	{re(`DIFFICULTY\s*(\d+)`), func(b *builder, m []string) (err error) {
		b.chart.Difficulty, err = atoi(m[1])
		return
	}},
	{re(`TOTAL\s*(\d+(?:\.\d+)?)`), func(b *builder, m []string) (err error) {
		b.chart.Total, err = atof(m[1])
		return
	}},
	{re(`RANK\s*(\d+)`), func(b *builder, m []string) (err error) {
		b.chart.Rank, err = atoi(m[1])
		return
	}},
	{re(`WAV([0-9A-Z]{2})\s*(.+?)`), func(b *builder, m []string) error {
		key, err := game.ParseKey(m[1])
		if nil != err {
			return err
		}
		return b.chart.WAVs.Set(key, b.asset(m[2]))
	}},
	{re(`BMP([0-9A-Z]{2})\s*(.+?)`), func(b *builder, m []string) error {
		key, err := game.ParseKey(m[1])
		if nil != err {
			return err
		}
		return b.chart.BMPs.Set(key, b.asset(m[2]))
	}},
	{re(`BPM\s*(\d+(?:\.\d+)?(?:E\+\d+)?)`), func(b *builder, m []string) (err error) {
		b.bpm, err = atof(m[1])
		return
	}},
	{re(`LNOBJ\s*([0-9A-Z]{2})`), func(b *builder, m []string) error {
		key, err := game.ParseKey(m[1])
		if nil != err {
			return err
		}
		b.decoder.lnobj[key] = true
		return nil
	}},
	{re(`BPM([0-9A-Z]{2})\s*(\S+)`), func(b *builder, m []string) error {
		key, err := game.ParseKey(m[1])
		if nil != err {
			return err
		}
		bpm, err := atof(m[2])
		if nil != err {
			return err
		}
		if bpm < 0 {
			return fmt.Errorf("%w: negative BPM %q", game.ErrMalformedNumeric, m[2])
		}
		b.decoder.bpms[key] = bpm
		return nil
	}},
	{re(`STOP([0-9A-Z]{2})\s*(\S+)`), func(b *builder, m []string) error {
		key, err := game.ParseKey(m[1])
		if nil != err {
			return err
		}
		stop, err := atof(m[2])
		if nil != err {
			return err
		}
		// In 1/192 of a measure
		b.decoder.stops[key] = stop / 192
		return nil
	}},
	{re(`(\d{3})02:(\S*)`), func(b *builder, m []string) error {
		measure, err := atoi(m[1])
		if nil != err {
			return err
		}
		value, err := atof(m[2])
		if nil != err {
			return err
		}
		return b.chart.Signatures.Set(measure, value)
	}},
	{re(`(\d{3})([0-9A-Z]{2}):(.*?)`), func(b *builder, m []string) error {
		measure, err := atoi(m[1])
		if nil != err {
			return err
		}
		channel, err := game.ParseKey(m[2])
		if nil != err {
			return err
		}
		return b.decoder.Decode(measure, channel, m[3])
	}},
}

func atoi(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if nil != err {
		return 0, fmt.Errorf("%w: %q", game.ErrMalformedNumeric, s)
	}
	return v, nil
}

func atof(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if nil != err || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", game.ErrMalformedNumeric, s)
	}
	return v, nil
}

type builder struct {
	chart   *game.Chart
	bpm     float64
	dir     string
	cascade bool
	logger  *log.Logger

	cond    *conditional
	decoder *decoder
}

func newBuilder(dir string, opts Options) *builder {
	logger := opts.Logger
	if nil == logger {
		logger = log.Default()
	}
	random := opts.Random
	if nil == random {
		src := rand.New(rand.NewSource(opts.Seed))
		random = func(n int) int {
			return src.Intn(n) + 1
		}
	}

	chart := &game.Chart{}
	chart.Player = 1
	chart.Rank = game.DefaultRank

	return &builder{
		chart:   chart,
		bpm:     game.DefaultBPM,
		dir:     dir,
		cascade: opts.Cascade,
		logger:  logger,
		cond:    newConditional(random),
		decoder: newDecoder(logger),
	}
}

func (b *builder) asset(name string) string {
	p := assetPath(b.dir, name)
	if !b.cascade {
		return p
	}
	resolved, ok := cascade(p)
	if !ok {
		b.logger.Println("unable to find asset", p)
	}
	return resolved
}

// control handles the conditional directives, which are seen even inside
// skipped blocks.
func (b *builder) control(line string) (bool, error) {
	if m := randomRe.FindStringSubmatch(line); nil != m {
		n, err := atoi(m[1])
		if nil != err {
			return true, err
		}
		return true, b.cond.Random(n)
	}
	if m := setRandomRe.FindStringSubmatch(line); nil != m {
		n, err := atoi(m[1])
		if nil != err {
			return true, err
		}
		b.cond.SetRandom(n)
		return true, nil
	}
	if m := ifRe.FindStringSubmatch(line); nil != m {
		n, err := atoi(m[1])
		if nil != err {
			return true, err
		}
		b.cond.If(n)
		return true, nil
	}
	if elseRe.MatchString(line) {
		return true, b.cond.Else()
	}
	if endifRe.MatchString(line) {
		return true, b.cond.EndIf()
	}
	return endRandomRe.MatchString(line), nil
}

func (b *builder) line(line string) error {
	handled, err := b.control(line)
	if handled || nil != err {
		return err
	}
	if b.cond.Skipping() {
		return nil
	}
	for _, d := range directives {
		if m := d.re.FindStringSubmatch(line); nil != m {
			return d.apply(b, m)
		}
	}
	return nil
}

func (b *builder) finish() *game.Chart {
	c := b.chart
	if depth := b.cond.Depth(); depth > 0 {
		b.logger.Println(depth, "unclosed #IF blocks at end of chart")
	}

	c.Sectors = buildSectors(b.bpm, &c.Signatures, b.decoder.events)
	c.Objects = resolve(c, b.decoder.objects)
	if nil == c.Objects {
		c.Objects = []game.Object{}
	}

	for _, o := range c.Objects {
		player := 0
		switch p := o.Payload.(type) {
		case game.Note:
			if p.End {
				c.LongNoteCount++
			} else {
				c.NoteCount++
			}
			player = p.Player
		case game.Invisible:
			player = p.Player
		case game.Bomb:
			c.BombCount++
			player = p.Player
		case game.BGM, game.BMP:
		}
		if player == 2 {
			c.Type = game.Dual
		}
	}
	return c
}

// Parse reads and resolves a chart file. Assets are relative to its directory.
func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("%w: %v", game.ErrFileNotFound, err)
	}
	c, err := p.ParseBytes(filepath.Dir(file), data)
	if nil != err {
		return nil, errors.Wrap(err, file)
	}
	c.Path = file
	return c, nil
}

// ParseBytes resolves a chart from its raw bytes, assets are joined to dir.
func (p *DefaultParser) ParseBytes(dir string, data []byte) (*game.Chart, error) {
	text, err := decodeText(data, p.Encoding)
	if nil != err {
		return nil, err
	}

	b := newBuilder(dir, p.Options)
	scanner := bufio.NewScanner(bytes.NewReader(text))
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for n := 1; scanner.Scan(); n++ {
		if err := b.line(scanner.Text()); nil != err {
			return nil, errors.Wrapf(err, "line %d", n)
		}
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}

	c := b.finish()
	sum := sha256.Sum256(data)
	c.Sum = hex.EncodeToString(sum[:])
	return c, nil
}
