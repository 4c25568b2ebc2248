package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the sboard ASCII banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text, color string
	}{
		{"      _                         _ ", "#38bdf8"},
		{"  ___| |__   ___   __ _ _ __ __| |", "#60a5fa"},
		{" / __| '_ \\ / _ \\ / _` | '__/ _` |", "#818cf8"},
		{" \\__ \\ |_) | (_) | (_| | | | (_| |", "#a78bfa"},
		{" |___/_.__/ \\___/ \\__,_|_|  \\__,_|", "#c084fc"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
