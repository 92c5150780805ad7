package testdata

import (
	"os"
	"path/filepath"
)

// TempoChange starts at 130 BPM and doubles at the start of measure 1.
const TempoChange = `
#PLAYER 1
#GENRE Test
#TITLE Tempo Change [Hyper]
#ARTIST eotw
#PLAYLEVEL 7
#DIFFICULTY 3
#TOTAL 300.5
#BPM 130
#WAV01 kick.wav
#WAV02 snare.wav
#BMP01 back.bmp
#BPM02 260

#00001:01
#00004:01
#00011:0001
#00108:02000000
#00111:0002
#00112:00000001
`

// Stop freezes for one measure at the start of measure 1.
const Stop = `
#BPM 120
#STOP01 192
#00109:01
#00111:01
#00111:0001
#00211:01
`

// LongNote mixes the LNOBJ and long note channel encodings.
const LongNote = `
#BPM 120
#LNOBJ ZZ
#WAV01 a.wav
#WAVZZ release.wav
#00011:01ZZ
#00051:0101
#00151:01
#00251:0101
#00152:01
#00252:01
`

// Random has one branch per draw of #RANDOM 2.
const Random = `
#BPM 120
#RANDOM 2
#IF 1
#TITLE One
#00011:01
#ELSE
#TITLE Two
#00012:01
#ENDIF
#00013:01
`

// Dual uses both sides, bombs and invisible notes.
const Dual = `
#BPM 150
#00016:01
#00029:01
#00031:01
#000D1:ZZ
#000E2:10
#00007:02
#00006:03
#00003:96
`

// Signature shortens measure 1 to three beats.
const Signature = `
#BPM 120
#00102:0.75
#00211:01
`

// Write stores a chart in dir and returns its path.
func Write(dir, name, content string) (string, error) {
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0644); nil != err {
		return "", err
	}
	return p, nil
}
