package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"git.lost.host/meutraa/bms/internal/audio"
	"git.lost.host/meutraa/bms/internal/config"
	"git.lost.host/meutraa/bms/internal/export"
	"git.lost.host/meutraa/bms/internal/library"
	"git.lost.host/meutraa/bms/internal/parser"
	"git.lost.host/meutraa/bms/internal/render"
	"git.lost.host/meutraa/bms/internal/server"
	"git.lost.host/meutraa/bms/internal/theme"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/remeh/sizedwaitgroup"
	"golang.org/x/exp/slices"
	"golang.org/x/term"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	cmd, err := config.Parse(os.Args[1:])
	if nil != err {
		return err
	}

	// Ensure our Default implementations are used as interfaces
	var psr parser.Parser = &parser.DefaultParser{Options: config.ParserOptions()}
	var lib library.Library = &library.DefaultLibrary{}

	switch cmd {
	case config.Info.FullCommand():
		return info(psr, *config.InfoChart)
	case config.Timeline.FullCommand():
		return timeline(psr, *config.TimelineChart)
	case config.Export.FullCommand():
		return exportMIDI(psr, *config.ExportChart, *config.ExportFile)
	case config.Index.FullCommand():
		return index(psr, lib, *config.IndexDirectory)
	case config.Serve.FullCommand():
		return serve(lib)
	}
	return fmt.Errorf("unknown command %v", cmd)
}

func info(psr parser.Parser, file string) error {
	c, err := psr.Parse(file)
	if nil != err {
		return err
	}
	stat, err := os.Stat(file)
	if nil != err {
		return err
	}

	title := c.Title
	if c.Subtitle != "" {
		title += " " + c.Subtitle
	}
	fmt.Printf("%v\n", title)
	fmt.Printf("  Artist:      %v\n", c.Artist)
	fmt.Printf("  Genre:       %v\n", c.Genre)
	fmt.Printf("  Type:        %v\n", c.Type)
	fmt.Printf("  Level:       %v\n", c.PlayLevel)
	fmt.Printf("  BPM:         %v\n", c.BPM())
	fmt.Printf("  Notes:       %v (%v long, %v bombs)\n",
		humanize.Comma(int64(c.NoteCount)), humanize.Comma(int64(c.LongNoteCount)), c.BombCount)
	fmt.Printf("  Tempo:       %v sectors\n", len(c.Sectors))
	fmt.Printf("  Samples:     %v wav, %v bmp\n", c.WAVs.Len(), c.BMPs.Len())
	fmt.Printf("  Length:      %v\n", durafmt.Parse(c.Length()).LimitFirstN(2))
	if *config.ProbeAudio {
		var probe audio.Probe
		fmt.Printf("  Play length: %v\n", durafmt.Parse(probe.PlayLength(c)).LimitFirstN(2))
	}
	fmt.Printf("  Size:        %v\n", humanize.Bytes(uint64(stat.Size())))
	fmt.Printf("  SHA-256:     %v\n", c.Sum)
	return nil
}

func timeline(psr parser.Parser, file string) error {
	c, err := psr.Parse(file)
	if nil != err {
		return err
	}
	if *config.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	}

	th := &theme.DefaultTheme{Color: *config.Color && term.IsTerminal(int(os.Stdout.Fd()))}
	var r render.Renderer = &render.DefaultRenderer{Theme: th, Width: *config.Width}
	return r.Render(os.Stdout, c)
}

func exportMIDI(psr parser.Parser, file, out string) error {
	c, err := psr.Parse(file)
	if nil != err {
		return err
	}
	f, err := os.Create(out)
	if nil != err {
		return fmt.Errorf("unable to create %v: %w", out, err)
	}
	if err := export.WriteMIDI(f, c); nil != err {
		f.Close()
		return fmt.Errorf("unable to write midi: %w", err)
	}
	return f.Close()
}

var chartExtensions = []string{".bms", ".bme", ".bml", ".pms"}

func isChart(path string) bool {
	return slices.Contains(chartExtensions, strings.ToLower(filepath.Ext(path)))
}

func index(psr parser.Parser, lib library.Library, dir string) error {
	if err := lib.Init(*config.Database); nil != err {
		return fmt.Errorf("unable to open library: %w", err)
	}
	defer lib.Deinit()

	var mu sync.Mutex
	saved, failed := 0, 0
	wg := sizedwaitgroup.New(*config.Workers)
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if nil != err {
			return err
		}
		if d.IsDir() || !isChart(p) {
			return nil
		}
		wg.Add()
		go func() {
			defer wg.Done()
			c, err := psr.Parse(p)
			if nil == err {
				_, err = lib.Save(c)
			}
			mu.Lock()
			defer mu.Unlock()
			if nil != err {
				log.Println("unable to index", err)
				failed++
				return
			}
			saved++
		}()
		return nil
	})
	wg.Wait()
	if nil != err {
		return fmt.Errorf("unable to walk song directory: %w", err)
	}

	log.Printf("indexed %v charts, %v failed\n", humanize.Comma(int64(saved)), failed)
	return nil
}

func serve(lib library.Library) error {
	if err := lib.Init(*config.Database); nil != err {
		return fmt.Errorf("unable to open library: %w", err)
	}
	defer lib.Deinit()

	log.Println("listening on", *config.Listen)
	return http.ListenAndServe(*config.Listen, server.Handler(lib))
}
