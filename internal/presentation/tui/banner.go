package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Samuel Says banner, one line per button colour.
func PrintBanner(w io.Writer, p termenv.Profile, version string) {
	lines := []string{
		"  ___                          _   ___",
		" / __| __ _ _ __  _  _ ___ ___| | / __| __ _ _  _ ___",
		" \\__ \\/ _` | '  \\| || / -_) -_) | \\__ \\/ _` | || (_-<",
		" |___/\\__,_|_|_|_|\\_,_\\___\\___|_| |___/\\__,_|\\_, /__/",
	}

	fmt.Fprintln(w)
	for i, l := range lines {
		fmt.Fprintln(w, p.String(l).Foreground(p.Color(colourHex[i])))
	}
	fmt.Fprintln(w, p.String(strings.Repeat(" ", 43)+"|__/  "+version).Faint())
	fmt.Fprintln(w)
}
