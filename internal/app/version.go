package app

import (
	"fmt"
	"io"
)

// Version is the build version, overridden at link time with
// -ldflags "-X github.com/agbru/stepbar/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether args request the version, short-circuiting
// normal flag parsing.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the program name and version to w.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "stepbar %s\n", Version)
}
