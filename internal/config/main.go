package config

import (
	"runtime"
	"strconv"
	"time"

	"git.lost.host/meutraa/bms/internal/parser"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("bms", "Resolve BMS charts into timed event timelines")

	Seed     = app.Flag("seed", "Seed for #RANDOM draws, 0 uses the clock").Default("0").Short('s').Int64()
	Encoding = app.Flag("encoding", "Chart text encoding").Default("auto").Short('e').Enum("auto", "sjis", "utf8")
	Cascade  = app.Flag("cascade", "Look for sibling extensions of missing assets").Default("true").Bool()
	Database = app.Flag("db", "Library database").Default("bms.db").String()
	Width    = app.Flag("width", "Render width, 0 detects the terminal").Default("0").Short('w').Int()
	Color    = app.Flag("color", "Color notes by snap").Default("true").Bool()

	Info       = app.Command("info", "Print chart metadata and statistics")
	InfoChart  = Info.Arg("chart", "Chart file").Required().ExistingFile()
	ProbeAudio = Info.Flag("probe-audio", "Decode keysounds to measure the play length").Bool()

	Timeline      = app.Command("timeline", "Print the resolved timeline as lanes")
	TimelineChart = Timeline.Arg("chart", "Chart file").Required().ExistingFile()
	JSON          = Timeline.Flag("json", "Print the resolved chart as JSON").Bool()

	Export      = app.Command("export", "Write the timeline as a standard MIDI file")
	ExportChart = Export.Arg("chart", "Chart file").Required().ExistingFile()
	ExportFile  = Export.Arg("out", "MIDI file to write").Required().String()

	Index          = app.Command("index", "Parse every chart below a directory into the library")
	IndexDirectory = Index.Arg("directory", "Song directory").Required().ExistingDir()
	Workers        = Index.Flag("workers", "Charts parsed at once").Default(strconv.Itoa(runtime.NumCPU())).Short('j').Int()

	Serve  = app.Command("serve", "Serve the library over HTTP")
	Listen = Serve.Flag("listen", "Listen address").Default(":8080").Short('l').String()
)

func init() {
	app.Version("0.3.0")
}

// Parse reads the command line and returns the selected command.
func Parse(args []string) (string, error) {
	return app.Parse(args)
}

func ParserOptions() parser.Options {
	seed := *Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	encoding, _ := parser.ParseEncoding(*Encoding)
	return parser.Options{
		Seed:     seed,
		Encoding: encoding,
		Cascade:  *Cascade,
	}
}
