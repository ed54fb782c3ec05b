package format

import (
	"fmt"
	"math"
	"strings"
)

// BarStyle defines the glyph set a progress bar is drawn with. Partials
// holds the intra-cell glyphs ordered from emptiest to fullest; an empty
// slice gives whole-cell resolution.
type BarStyle struct {
	// Full is the glyph for a completely filled cell.
	Full rune
	// Partials are the sub-cell glyphs, emptiest first. The filled region
	// is capped with at most one of them.
	Partials []rune
	// Empty is the glyph for an unfilled cell.
	Empty rune
}

var (
	// Blocks draws with the Unicode block elements, giving eight levels of
	// resolution per cell so the bar grows smoothly between whole-cell
	// increments even when updates are frequent relative to the width.
	Blocks = BarStyle{
		Full:     '█',
		Partials: []rune{'▏', '▎', '▍', '▌', '▋', '▊', '▉'},
		Empty:    ' ',
	}

	// ASCIIBlocks is the fallback for terminals without block-element
	// support: whole-cell resolution with '#' fill.
	ASCIIBlocks = BarStyle{
		Full:  '#',
		Empty: ' ',
	}
)

// Render draws a fixed-width bar for a process that has completed current of
// total steps. The result is always exactly width cells.
//
// The filled region is clamped at 100%: overshoot past the total never grows
// the bar beyond its width. Callers that want overshoot visible should rely
// on the unclamped percentage field instead.
func (s BarStyle) Render(current, total, width int) string {
	if width <= 0 || total <= 0 {
		return ""
	}
	fraction := float64(current) / float64(total)
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	subdivisions := len(s.Partials) + 1
	filledUnits := int(fraction * float64(width*subdivisions))
	fullCells := filledUnits / subdivisions
	remainder := filledUnits % subdivisions

	var b strings.Builder
	b.Grow(width * 3)
	for i := 0; i < fullCells; i++ {
		b.WriteRune(s.Full)
	}
	cells := fullCells
	if remainder > 0 && cells < width {
		b.WriteRune(s.Partials[remainder-1])
		cells++
	}
	for ; cells < width; cells++ {
		b.WriteRune(s.Empty)
	}
	return b.String()
}

// RenderBar draws a bar in the default block style.
func RenderBar(current, total, width int) string {
	return Blocks.Render(current, total, width)
}

// FormatPercent renders completion as a right-aligned whole percentage,
// e.g. " 31%". Rounding is half away from zero. The value is not clamped,
// so overshoot reads as more than 100%.
func FormatPercent(current, total int) string {
	pct := int(math.Round(float64(current) / float64(total) * 100))
	return fmt.Sprintf("%3d%%", pct)
}
