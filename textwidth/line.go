package textwidth

import (
	"bufio"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/segtree"
	"github.com/npillmayer/segtree/presets"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

var setupOnce sync.Once

func setup() {
	setupOnce.Do(grapheme.SetupGraphemeClasses)
}

// Line is a line of text, segmented into grapheme clusters.
type Line struct {
	text    string
	offsets []int // byte offset of every grapheme, plus len(text)
	widths  *segtree.Tree[int]
	ctx     *uax11.Context
}

// New segments text into graphemes and measures them in context ctx.
// If ctx is nil, uax11.LatinContext is used.
func New(text string, ctx *uax11.Context) *Line {
	setup()
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	gstr := grapheme.StringFromString(text)
	n := gstr.Len()
	line := &Line{text: text, offsets: make([]int, n+1), ctx: ctx}
	widths := make([]int, n)
	pos := 0
	for i := 0; i < n; i++ {
		g := gstr.Nth(i)
		line.offsets[i] = pos
		pos += len(g)
		widths[i] = measure(g, ctx)
	}
	line.offsets[n] = pos
	line.widths = presets.Sum(widths)
	tracer().Debugf("textwidth: %d bytes, %d graphemes, width %d", len(text), n, line.Width())
	return line
}

func measure(g string, ctx *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(g), ctx)
}

// String returns the text of the line.
func (l *Line) String() string {
	return l.text
}

// Len returns the number of graphemes.
func (l *Line) Len() int {
	return l.widths.Size()
}

// Grapheme returns grapheme i.
func (l *Line) Grapheme(i int) string {
	return l.text[l.offsets[i]:l.offsets[i+1]]
}

// ByteOffset returns the byte position of grapheme i. ByteOffset(Len())
// is the length of the text.
func (l *Line) ByteOffset(i int) int {
	return l.offsets[i]
}

// Width returns the display width of the whole line.
func (l *Line) Width() int {
	return l.widths.Fold(segtree.All())
}

// WidthOf returns the display width of the graphemes in r.
func (l *Line) WidthOf(r segtree.Span) int {
	return l.widths.Fold(r)
}

// Fit returns the largest end such that the graphemes [start, end) fit
// into width columns.
func (l *Line) Fit(start, width int) int {
	return l.widths.FindEnd(start, func(w, _ int) bool { return w <= width })
}

// FitBack returns the smallest start such that the graphemes [start, end)
// fit into width columns.
func (l *Line) FitBack(end, width int) int {
	return l.widths.FindStart(end, func(w, _ int) bool { return w <= width })
}

// Replace exchanges grapheme i by g, which must be a single grapheme
// cluster. Widths are updated in O(log n).
func (l *Line) Replace(i int, g string) {
	w := measure(g, l.ctx)
	l.widths.Set(i, w)
	delta := len(g) - (l.offsets[i+1] - l.offsets[i])
	l.text = l.text[:l.offsets[i]] + g + l.text[l.offsets[i+1]:]
	for k := i + 1; k < len(l.offsets); k++ {
		l.offsets[k] += delta
	}
}

// Breaks returns the grapheme indices at which the line may be broken
// according to UAX #14, in ascending order. The end of the line is
// always included.
func (l *Line) Breaks() []int {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(l.text)))
	var breaks []int
	pos := 0
	for segmenter.Next() {
		pos += len(segmenter.Bytes())
		if i := l.graphemeAt(pos); i > 0 && (len(breaks) == 0 || breaks[len(breaks)-1] < i) {
			breaks = append(breaks, i)
		}
	}
	if n := l.Len(); len(breaks) == 0 || breaks[len(breaks)-1] != n {
		breaks = append(breaks, n)
	}
	return breaks
}

// graphemeAt returns the index of the first grapheme starting at or after
// byte position pos.
func (l *Line) graphemeAt(pos int) int {
	return sort.SearchInts(l.offsets, pos)
}

// Wrap breaks the line into pieces of at most width columns, preferring
// break opportunities. It returns the grapheme index at which each piece
// ends. Graphemes wider than width get a piece of their own.
func (l *Line) Wrap(width int) []int {
	breaks := l.Breaks()
	var ends []int
	for start := 0; start < l.Len(); {
		end := l.Fit(start, width)
		if end == l.Len() {
			ends = append(ends, end)
			break
		}
		// last break opportunity in (start, end]
		j := sort.SearchInts(breaks, end+1) - 1
		switch {
		case j >= 0 && breaks[j] > start:
			end = breaks[j]
		case end == start:
			end = start + 1
		}
		ends = append(ends, end)
		start = end
	}
	return ends
}
