package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Arkhe banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"     _         _    _          ", "#818cf8"},
		{"    / \\   _ __| | _| |__   ___ ", "#a78bfa"},
		{"   / _ \\ | '__| |/ / '_ \\ / _ \\", "#c084fc"},
		{"  / ___ \\| |  |   <| | | |  __/", "#e879f9"},
		{" /_/   \\_\\_|  |_|\\_\\_| |_|\\___|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintf(w, " %s\n\n", out.String("v"+version).Faint())
}
