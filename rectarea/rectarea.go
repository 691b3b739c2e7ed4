package rectarea

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/npillmayer/segtree"
	"github.com/npillmayer/segtree/monoid"
	"github.com/npillmayer/segtree/presets"
	"github.com/npillmayer/segtree/shrink"
)

// Coord is the set of integer types usable as coordinates.
type Coord interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ErrInvertedRect signals a rectangle with x1 > x2 or y1 > y2.
var ErrInvertedRect = errors.New("rectarea: inverted rectangle")

// Rect is the axis-aligned rectangle [X1, X2) × [Y1, Y2).
type Rect[N Coord] struct {
	X1, Y1, X2, Y2 N
}

// NewRect creates a rectangle. It returns an error wrapping ErrInvertedRect
// if a lower coordinate exceeds the upper one.
func NewRect[N Coord](x1, y1, x2, y2 N) (Rect[N], error) {
	r := Rect[N]{X1: x1, Y1: y1, X2: x2, Y2: y2}
	return r, r.validate()
}

func (r Rect[N]) validate() error {
	if r.X1 > r.X2 || r.Y1 > r.Y2 {
		return fmt.Errorf("%w: (%v,%v)-(%v,%v)", ErrInvertedRect, r.X1, r.Y1, r.X2, r.Y2)
	}
	return nil
}

type event[N Coord] struct {
	y      N
	delta  int // +1 at the bottom edge, -1 at the top edge
	x1, x2 N
}

// Area returns the area of the union of rects. Empty rectangles are
// allowed and contribute nothing.
func Area[N Coord](rects []Rect[N]) (N, error) {
	if len(rects) == 0 {
		return 0, nil
	}
	xs := make([]N, 0, 2*len(rects))
	events := make([]event[N], 0, 2*len(rects))
	for _, r := range rects {
		if err := r.validate(); err != nil {
			return 0, err
		}
		xs = append(xs, r.X1, r.X2)
		events = append(events,
			event[N]{y: r.Y1, delta: 1, x1: r.X1, x2: r.X2},
			event[N]{y: r.Y2, delta: -1, x1: r.X1, x2: r.X2})
	}
	sx := shrink.New(xs)
	widths := shrink.Widths(sx)
	if len(widths) == 0 {
		return 0, nil
	}
	total := sx.Key(sx.Len()-1) - sx.Key(0)
	cover := presets.AddMinCount(make([]int, len(widths)),
		presets.Weights(func(i int) int { return int(widths[i]) }))
	slices.SortFunc(events, func(a, b event[N]) int { return cmp.Compare(a.y, b.y) })
	tracer().Debugf("rectarea: %d rectangles, %d elementary intervals", len(rects), len(widths))

	var area N
	lastY := events[0].y
	for i := 0; i < len(events); {
		y := events[i].y
		area += covered(cover.Fold(segtree.All()), total) * (y - lastY)
		for ; i < len(events) && events[i].y == y; i++ {
			e := events[i]
			span, err := sx.Span(e.x1, e.x2)
			if err != nil {
				return 0, err // cannot happen: every x is a key
			}
			cover.Act(span, e.delta)
		}
		lastY = y
	}
	return area, nil
}

// covered returns the width covered at least once, given the minimum
// coverage and the width attaining it.
func covered[N Coord](mc monoid.MinCount[int], total N) N {
	if mc.Min > 0 {
		return total
	}
	return total - N(mc.Count)
}

// Builder collects rectangles for Area.
//
//	area, err := rectarea.Paint[int]().Add(0, 0, 1, 1).Add(1, 0, 2, 1).Area()
type Builder[N Coord] struct {
	rects []Rect[N]
	err   error
}

// Paint starts an empty Builder.
func Paint[N Coord]() *Builder[N] {
	return &Builder[N]{}
}

// Add adds the rectangle [x1, x2) × [y1, y2). The first invalid rectangle
// is reported by Area.
func (b *Builder[N]) Add(x1, y1, x2, y2 N) *Builder[N] {
	r, err := NewRect(x1, y1, x2, y2)
	if err != nil && b.err == nil {
		b.err = err
	}
	b.rects = append(b.rects, r)
	return b
}

// Area returns the area of the union of all rectangles added.
func (b *Builder[N]) Area() (N, error) {
	if b.err != nil {
		return 0, b.err
	}
	return Area(b.rects)
}
