package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// LineWriter redraws a single progress line in place. On an interactive
// terminal it returns the cursor with \r and blanks any residue from a
// longer previous line; on pipes and files every redraw becomes its own
// line so logs stay readable.
type LineWriter struct {
	w           io.Writer
	interactive bool
	lastCells   int
}

// NewLineWriter creates a LineWriter for w. Interactivity is detected when
// w is a terminal file descriptor; everything else gets line-per-redraw
// output.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: w, interactive: isTerminal(w)}
}

// NewInteractiveLineWriter creates a LineWriter with explicit interactivity,
// bypassing detection. Intended for tests and for callers that already know.
func NewInteractiveLineWriter(w io.Writer, interactive bool) *LineWriter {
	return &LineWriter{w: w, interactive: interactive}
}

// Interactive reports whether the writer rewrites in place.
func (lw *LineWriter) Interactive() bool { return lw.interactive }

// WriteLine draws line as the current progress line.
func (lw *LineWriter) WriteLine(line string) {
	if !lw.interactive {
		fmt.Fprintln(lw.w, line)
		return
	}
	cells := displayCells(line)
	padding := ""
	if cells < lw.lastCells {
		padding = strings.Repeat(" ", lw.lastCells-cells)
	}
	fmt.Fprintf(lw.w, "\r%s%s", line, padding)
	lw.lastCells = cells
}

// Finish terminates the in-place line so subsequent output starts fresh.
// It is a no-op for non-interactive writers, which already emit newlines.
func (lw *LineWriter) Finish() {
	if lw.interactive {
		fmt.Fprintln(lw.w)
		lw.lastCells = 0
	}
}

// displayCells counts the terminal cells a line occupies, skipping ANSI CSI
// color sequences so padding math is not thrown off by themes.
func displayCells(s string) int {
	cells := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			cells++
		}
	}
	return cells
}

// isTerminal reports whether w is attached to a real terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the column count of the terminal behind w, or 0 when
// w is not a terminal or the size cannot be determined.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
