package parser

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

type Encoding int

const (
	// EncodingAuto keeps valid UTF-8 and decodes anything else as Shift-JIS.
	EncodingAuto Encoding = iota
	EncodingShiftJIS
	EncodingUTF8
)

func (e Encoding) String() string {
	switch e {
	case EncodingShiftJIS:
		return "sjis"
	case EncodingUTF8:
		return "utf8"
	}
	return "auto"
}

// ParseEncoding accepts the names returned by Encoding.String.
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "", "auto":
		return EncodingAuto, nil
	case "sjis", "shift-jis", "shift_jis":
		return EncodingShiftJIS, nil
	case "utf8", "utf-8":
		return EncodingUTF8, nil
	}
	return EncodingAuto, fmt.Errorf("unknown encoding %q", s)
}

var bom = []byte{0xEF, 0xBB, 0xBF}

func decodeText(data []byte, enc Encoding) ([]byte, error) {
	if bytes.HasPrefix(data, bom) {
		return data[len(bom):], nil
	}
	switch enc {
	case EncodingUTF8:
		return data, nil
	case EncodingAuto:
		if utf8.Valid(data) {
			return data, nil
		}
	}
	out, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), data)
	if nil != err {
		return nil, fmt.Errorf("unable to decode shift-jis: %w", err)
	}
	return out, nil
}
