package config

import (
	"fmt"
	"strings"

	"github.com/thediveo/enumflag"
)

// ColorMode decides whether inline error annotations are colorized.
type ColorMode enumflag.Flag

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

var ColorModeIds = map[ColorMode][]string{
	ColorAuto:   {"auto"},
	ColorAlways: {"always"},
	ColorNever:  {"never"},
}

// Colorize resolves the mode against whether stdout is a terminal.
func (m ColorMode) Colorize(isTerminal bool) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

func (m ColorMode) String() string {
	if ids, ok := ColorModeIds[m]; ok {
		return ids[0]
	}
	return fmt.Sprintf("ColorMode(%d)", uint(m))
}

func (m *ColorMode) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, ColorModeIds, m, "color mode")
}

// Charset selects the glyph set used for tree drawing.
type Charset enumflag.Flag

const (
	CharsetUnicode Charset = iota
	CharsetASCII
)

var CharsetIds = map[Charset][]string{
	CharsetUnicode: {"unicode"},
	CharsetASCII:   {"ascii"},
}

func (c Charset) String() string {
	if ids, ok := CharsetIds[c]; ok {
		return ids[0]
	}
	return fmt.Sprintf("Charset(%d)", uint(c))
}

func (c *Charset) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, CharsetIds, c, "charset")
}

func unmarshalEnum[E comparable](text []byte, ids map[E][]string, out *E, what string) error {
	want := strings.ToLower(strings.TrimSpace(string(text)))
	for value, names := range ids {
		for _, name := range names {
			if name == want {
				*out = value
				return nil
			}
		}
	}
	return fmt.Errorf("unknown %s: %q", what, string(text))
}

type Output struct {
	Color    ColorMode
	Charset  Charset
	ShowSize bool
}

type Walk struct {
	// Depth is the number of levels shown below each root; negative
	// means unlimited, zero shows only the roots themselves.
	Depth int
}

type Tree struct {
	filePath string // internal, path to this config file
	Output   Output
	Walk     Walk
}
