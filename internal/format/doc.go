// Package format holds the pure formatting layer: the block-glyph bar
// renderer, clock and duration rendering with not-yet-available
// placeholders, and the preset-driven display line composer.
//
// Functions here perform no I/O and hold no state; writing the result to a
// terminal is the cli package's job.
package format
