// Package report writes the per-core report files and optional model exports.
package report

import (
	"fmt"
	"path/filepath"
	"strings"
)

// StemMode selects how the output file prefix is derived from the input path
type StemMode int

const (
	// StemLegacy reproduces the historical naming: the final extension and
	// the character just before its dot are dropped, so "temps.txt" becomes
	// "temp". Paths whose last dot is at index 0 or 1 are kept whole.
	StemLegacy StemMode = iota

	// StemExact drops only the final extension of the file name
	StemExact
)

var stemModeNames = map[StemMode]string{
	StemLegacy: "legacy",
	StemExact:  "exact",
}

// String returns the configuration name of the mode
func (m StemMode) String() string {
	if name, ok := stemModeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseStemMode maps a configuration name to a StemMode
func ParseStemMode(name string) (StemMode, error) {
	for mode, n := range stemModeNames {
		if strings.EqualFold(n, name) {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown stem mode %q", name)
}

// Stem returns the prefix that report file names are built from.
// The directory part of path is kept.
func Stem(path string, mode StemMode) string {
	switch mode {
	case StemExact:
		ext := filepath.Ext(path)
		if ext == "" || ext == filepath.Base(path) {
			return path
		}
		return strings.TrimSuffix(path, ext)
	default:
		dot := strings.LastIndexByte(path, '.')
		if dot > 1 {
			return path[:dot-1]
		}
		return path
	}
}

// CoreFileName returns the report file name for one core
func CoreFileName(stem string, channel int) string {
	return fmt.Sprintf("%s-core-%d.txt", stem, channel)
}
