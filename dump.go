package segtree

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Palette holds the colors Dump uses.
type Palette struct {
	Value, Pending, Padding *color.Color
}

// DefaultPalette prints values in blue and pending actions in red.
var DefaultPalette = Palette{
	Value:   color.New(color.FgBlue),
	Pending: color.New(color.FgRed),
	Padding: color.New(color.Faint),
}

// Dump prints tr to w, one line per level of the tree. Slots with a
// pending action show it in angle brackets. If w is a terminal, lines are
// cut to the terminal's width.
func Dump[T any](tr Walker[T], w io.Writer) {
	DumpWith(tr, w, DefaultPalette)
}

// DumpWith is Dump with a custom palette.
func DumpWith[T any](tr Walker[T], w io.Writer, pal Palette) {
	width := lineWidth(w)
	for depth, level := range Levels(tr) {
		line := dumpLine{w: w, width: width}
		line.print(nil, fmt.Sprintf("%2d:", depth))
		for _, nv := range level {
			line.print(nil, " ")
			if nv.Padding {
				line.print(pal.Padding, "·")
				continue
			}
			line.print(pal.Value, fmt.Sprint(nv.Value))
			if nv.HasPending {
				line.print(pal.Pending, "⟨"+nv.Pending+"⟩")
			}
		}
		io.WriteString(w, "\n")
	}
}

// lineWidth returns the width of the terminal w is connected to, or 0.
func lineWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		tracer().Debugf("segtree: cannot determine terminal width: %v", err)
		return 0
	}
	return cols
}

// dumpLine writes colored fragments and cuts the line at width columns.
// Width 0 means unlimited.
type dumpLine struct {
	w     io.Writer
	width int
	cnt   int
	cut   bool
}

func (l *dumpLine) print(c *color.Color, s string) {
	if l.cut {
		return
	}
	n := utf8.RuneCountInString(s)
	if l.width > 0 && l.cnt+n > l.width-1 {
		l.cut = true
		io.WriteString(l.w, "…")
		return
	}
	l.cnt += n
	if c != nil {
		c.Fprint(l.w, s)
		return
	}
	io.WriteString(l.w, s)
}
