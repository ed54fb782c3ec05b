package format

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBarStyle_Render(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		style    BarStyle
		current  int
		total    int
		width    int
		expected string
	}{
		{
			name:     "empty at zero",
			style:    Blocks,
			current:  0,
			total:    150,
			width:    10,
			expected: strings.Repeat(" ", 10),
		},
		{
			name:     "full at total",
			style:    Blocks,
			current:  150,
			total:    150,
			width:    10,
			expected: strings.Repeat("█", 10),
		},
		{
			name:     "full stays full on overshoot",
			style:    Blocks,
			current:  225,
			total:    150,
			width:    10,
			expected: strings.Repeat("█", 10),
		},
		{
			name:    "partial glyph caps the filled region",
			style:   Blocks,
			current: 47,
			total:   150,
			width:   31,
			// 47/150 of 31*8 units = 77 units: 9 full cells, 5/8 partial.
			expected: strings.Repeat("█", 9) + "▋" + strings.Repeat(" ", 21),
		},
		{
			name:     "half in single subdivision",
			style:    Blocks,
			current:  1,
			total:    2,
			width:    1,
			expected: "▌",
		},
		{
			name:     "ascii style has whole-cell resolution",
			style:    ASCIIBlocks,
			current:  47,
			total:    150,
			width:    31,
			expected: strings.Repeat("#", 9) + strings.Repeat(" ", 22),
		},
		{
			name:     "ascii full",
			style:    ASCIIBlocks,
			current:  10,
			total:    10,
			width:    5,
			expected: "#####",
		},
		{
			name:     "zero width renders nothing",
			style:    Blocks,
			current:  5,
			total:    10,
			width:    0,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.style.Render(tt.current, tt.total, tt.width)
			if got != tt.expected {
				t.Errorf("Render(%d, %d, %d) = %q, want %q", tt.current, tt.total, tt.width, got, tt.expected)
			}
		})
	}
}

func TestRenderBar_WidthExact(t *testing.T) {
	t.Parallel()
	for _, width := range []int{1, 7, 31, 80} {
		for current := 0; current <= 12; current++ {
			got := RenderBar(current, 10, width)
			if cells := utf8.RuneCountInString(got); cells != width {
				t.Errorf("RenderBar(%d, 10, %d) has %d cells, want %d", current, width, cells, width)
			}
		}
	}
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		current  int
		total    int
		expected string
	}{
		{"zero", 0, 150, "  0%"},
		{"rounds down", 47, 150, " 31%"},
		{"rounds half away from zero", 1, 8, " 13%"},
		{"full", 150, 150, "100%"},
		{"overshoot is not clamped", 300, 150, "200%"},
		{"single digit alignment", 1, 100, "  1%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatPercent(tt.current, tt.total); got != tt.expected {
				t.Errorf("FormatPercent(%d, %d) = %q, want %q", tt.current, tt.total, got, tt.expected)
			}
		})
	}
}
