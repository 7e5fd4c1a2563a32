// Package render turns assistant replies into styled terminal output.
package render

import (
	"os"

	"github.com/diogo/thrivemum/internal/config"
)

// Built-in glamour styles. Any other Style value is read as a JSON style file.
const (
	StyleDark    = "dark"
	StyleLight   = "light"
	StyleDracula = "dracula"
	StyleNoTTY   = "notty"
	StyleASCII   = "ascii"
)

// IsStandardStyle reports whether style names a built-in glamour style
func IsStandardStyle(style string) bool {
	switch style {
	case StyleDark, StyleLight, StyleDracula, StyleNoTTY, StyleASCII:
		return true
	}
	return false
}

// Options selects a renderer. It is comparable and keys the renderer pools.
type Options struct {
	Width            int
	Style            string
	EnableEmoji      bool
	PreserveNewLines bool // chat replies are short; keep their line breaks
}

// DefaultOptions renders 80 columns in the dark style with emoji and line breaks kept
func DefaultOptions() Options {
	return Options{Width: 80, Style: StyleDark, EnableEmoji: true, PreserveNewLines: true}
}

func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

func (o Options) WithStyle(style string) Options {
	o.Style = style
	return o
}

func (o Options) WithEmoji(on bool) Options {
	o.EnableEmoji = on
	return o
}

func (o Options) WithPreserveNewLines(on bool) Options {
	o.PreserveNewLines = on
	return o
}

// OptionsFromConfig applies the user's markdown settings to DefaultOptions.
// A blank style keeps the default; GLAMOUR_STYLE beats both.
func OptionsFromConfig(md config.MarkdownConfig) Options {
	style := md.Style
	if env := os.Getenv("GLAMOUR_STYLE"); env != "" {
		style = env
	}
	opts := DefaultOptions().
		WithEmoji(md.EnableEmoji).
		WithPreserveNewLines(md.PreserveNewLines)
	if style != "" {
		opts = opts.WithStyle(style)
	}
	return opts
}
