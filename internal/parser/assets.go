package parser

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

// Sibling extensions tried when a referenced asset is missing.
var families = [][]string{
	{".wav", ".ogg", ".mp3"},
	{".bmp", ".png", ".jpg"},
	{".mpg", ".mp4", ".webm"},
}

func exists(p string) bool {
	info, err := os.Stat(p)
	return nil == err && !info.IsDir()
}

// assetPath joins an asset name to the chart directory. Charts are often
// written on Windows, so backslashes separate directories.
func assetPath(dir, name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	return filepath.Join(dir, filepath.FromSlash(name))
}

// cascade returns p if it exists, otherwise the first existing file with the
// same stem and an extension of the same family.
func cascade(p string) (string, bool) {
	if exists(p) {
		return p, true
	}
	ext := filepath.Ext(p)
	stem := strings.TrimSuffix(p, ext)
	for _, family := range families {
		if !slices.Contains(family, strings.ToLower(ext)) {
			continue
		}
		for _, alt := range family {
			if exists(stem + alt) {
				return stem + alt, true
			}
		}
		return p, false
	}
	return p, false
}
