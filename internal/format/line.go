package format

import (
	"fmt"
	"strings"
)

// DefaultBarWidth is the bar width presets are created with.
const DefaultBarWidth = 31

// TimeSummarizer supplies the bracketed time-statistics field of a display
// line. estimate.Estimator satisfies it.
type TimeSummarizer interface {
	Summary() string
}

// Config selects which fields a display line carries and how the bar is
// drawn. The zero value is not useful; start from one of the presets.
type Config struct {
	// BarWidth is the bar length in cells.
	BarWidth int
	// LeftBound and RightBound enclose the bar.
	LeftBound  rune
	RightBound rune
	// ShowRatio appends the [current/total] step ratio.
	ShowRatio bool
	// ShowTimeStats appends the time-statistics summary.
	ShowTimeStats bool
	// Label is an optional prefix, separated from the fields by two spaces.
	Label string
	// Style is the glyph set the bar is drawn with.
	Style BarStyle
}

// Simple is the minimal preset: percentage and bar only.
func Simple() Config {
	return Config{
		BarWidth:   DefaultBarWidth,
		LeftBound:  '|',
		RightBound: '|',
		Style:      Blocks,
	}
}

// Regular extends Simple with the step ratio.
func Regular() Config {
	cfg := Simple()
	cfg.ShowRatio = true
	return cfg
}

// Advanced extends Regular with the time-statistics summary.
func Advanced() Config {
	cfg := Regular()
	cfg.ShowTimeStats = true
	return cfg
}

// FormatLine composes one display line for a process that has completed
// current of total steps. Field order is fixed:
//
//	<label>  <pct>%<lbound><bar><rbound>[<current>/<total>] <time-summary>
//
// with the ratio and time fields present only when the config enables them.
// times may be nil when ShowTimeStats is off.
func (c Config) FormatLine(current, total int, times TimeSummarizer) string {
	var b strings.Builder
	if c.Label != "" {
		b.WriteString(c.Label)
		b.WriteString("  ")
	}
	b.WriteString(FormatPercent(current, total))
	b.WriteRune(c.LeftBound)
	b.WriteString(c.Style.Render(current, total, c.BarWidth))
	b.WriteRune(c.RightBound)
	if c.ShowRatio {
		fmt.Fprintf(&b, "[%d/%d]", current, total)
	}
	if c.ShowTimeStats && times != nil {
		b.WriteString(" ")
		b.WriteString(times.Summary())
	}
	return b.String()
}
