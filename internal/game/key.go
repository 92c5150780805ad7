package game

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// KeyCount is the size of the two character base-36 key space, 00 to ZZ.
const KeyCount = 36 * 36

// ParseKey decodes a two character base-36 key such as "0A" or "zz".
func ParseKey(s string) (int, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: key %q", ErrMalformedNumeric, s)
	}
	key := 0
	for i := 0; i < len(s); i++ {
		d, ok := base36Digit(s[i])
		if !ok {
			return 0, fmt.Errorf("%w: key %q", ErrMalformedNumeric, s)
		}
		key = key*36 + d
	}
	return key, nil
}

// FormatKey is the inverse of ParseKey, always two upper case characters.
func FormatKey(key int) string {
	s := strings.ToUpper(strconv.FormatInt(int64(key), 36))
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}

func base36Digit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	}
	return 0, false
}

// KeyTable maps base-36 keys to asset paths. The zero value is empty and ready to use.
type KeyTable struct {
	paths map[int]string
}

func (t *KeyTable) Set(key int, path string) error {
	if key < 0 || key >= KeyCount {
		return fmt.Errorf("%w: key %d", ErrIndexOutOfRange, key)
	}
	if nil == t.paths {
		t.paths = make(map[int]string)
	}
	t.paths[key] = path
	return nil
}

func (t *KeyTable) Get(key int) (string, bool) {
	p, ok := t.paths[key]
	return p, ok
}

func (t *KeyTable) Len() int {
	return len(t.paths)
}

// Keys returns the defined keys in ascending order.
func (t *KeyTable) Keys() []int {
	keys := make([]int, 0, len(t.paths))
	for k := range t.paths {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func (t KeyTable) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(t.paths))
	for k, p := range t.paths {
		out[FormatKey(k)] = p
	}
	return marshal(out)
}
