package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ringctl banner to w.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"        _             _   _ ", "#34d399"},
		{"   _ __(_)_ __   __ _| |_| |", "#2dd4bf"},
		{"  | '__| | '_ \\ / _` | __| |", "#22d3ee"},
		{"  | |  | | | | | (_| | |_| |", "#38bdf8"},
		{"  |_|  |_|_| |_|\\__, |\\__|_|", "#60a5fa"},
		{"                |___/ ctl   ", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
