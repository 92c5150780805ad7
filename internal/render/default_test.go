package render

import (
	"io"
	"log"
	"strings"
	"testing"

	"git.lost.host/meutraa/bms/internal/game"
	"git.lost.host/meutraa/bms/internal/parser"
	"git.lost.host/meutraa/bms/internal/testdata"
	"git.lost.host/meutraa/bms/internal/theme"
)

func chart(t *testing.T, content string) *game.Chart {
	p := parser.DefaultParser{Options: parser.Options{Logger: log.New(io.Discard, "", 0)}}
	c, err := p.ParseBytes("", []byte(content))
	if nil != err {
		t.Fatal(err)
	}
	return c
}

func render(t *testing.T, c *game.Chart, width int) []string {
	r := &DefaultRenderer{Theme: &theme.DefaultTheme{}, Width: width}
	var b strings.Builder
	if err := r.Render(&b, c); nil != err {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
}

func compare(t *testing.T, expected, got []string) {
	if len(expected) != len(got) {
		t.Logf("expected %d rows, got %d: %q", len(expected), len(got), got)
		t.FailNow()
	}
	for i := range expected {
		if expected[i] != got[i] {
			t.Logf("row %d: expected %q, got %q", i, expected[i], got[i])
			t.Fail()
		}
	}
}

func TestRenderSingle(t *testing.T) {
	compare(t, []string{
		"000   0.000s |        | bgm:1 bmp:1",
		"000   0.923s | ⬤      |",
		"001   2.308s | ⬤      |",
		"001   2.538s |  ⬤     |",
	}, render(t, chart(t, testdata.TempoChange), 80))
}

func TestRenderDual(t *testing.T) {
	compare(t, []string{
		"000   0.000s |⬤☠      |  ⨯    ⬤| bmp:2",
	}, render(t, chart(t, testdata.Dual), 80))
}

func TestRenderWidth(t *testing.T) {
	rows := render(t, chart(t, testdata.TempoChange), 30)
	compare(t, []string{"000   0.000s |        | bgm:1"}, rows[:1])

	rows = render(t, chart(t, testdata.TempoChange), 10)
	compare(t, []string{"000   0.000s |        |"}, rows[:1])
}

func TestRenderLongNote(t *testing.T) {
	rows := render(t, chart(t, testdata.LongNote), 80)
	if !strings.Contains(strings.Join(rows, "\n"), "▬") {
		t.Log("no long note end in", rows)
		t.Fail()
	}
}
