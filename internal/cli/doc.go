// Package cli renders progress lines to a terminal.
//
// The package splits presentation into three pieces:
//
//   - [LineWriter] owns the output stream. On real terminals it rewrites a
//     single line in place; on pipes and files it degrades to one line per
//     redraw so logs stay readable.
//
//   - [Renderer] throttles and colorizes redraws. It performs no I/O of its
//     own beyond the LineWriter it wraps.
//
//   - [Spinner] covers the indeterminate phase before the first step exists.
//
// String assembly is pure and lives in the format package; this package only
// decides when and where those strings are written.
package cli
