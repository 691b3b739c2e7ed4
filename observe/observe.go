package observe

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/segtree"
)

// ErrClosed is returned for modifications of a closed Tree.
var ErrClosed = errors.New("observe: tree is closed")

// Kind tells which kind of modification an event reports.
type Kind int

// Kinds of modifications
const (
	Set Kind = iota
	Update
	Act
)

func (k Kind) String() string {
	switch k {
	case Set:
		return "set"
	case Update:
		return "update"
	case Act:
		return "act"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event reports a single modification. Events are immutable.
type Event struct {
	Seq    uint64       // 1 for the first modification
	Kind   Kind         //
	Index  int          // index for Set and Update
	Span   segtree.Span // range for Act
	Action string       // formatted action for Act, formatted value otherwise
}

func (ev Event) String() string {
	if ev.Kind == Act {
		return fmt.Sprintf("#%d %s %v ⟨%s⟩", ev.Seq, ev.Kind, ev.Span, ev.Action)
	}
	return fmt.Sprintf("#%d %s [%d] = %s", ev.Seq, ev.Kind, ev.Index, ev.Action)
}

// Tree is a lazy segment tree which publishes its modifications.
// It is safe for concurrent use.
type Tree[T, A any] struct {
	mu     sync.Mutex
	tree   *segtree.LazyTree[T, A]
	cast   *caster.Caster
	seq    uint64
	closed bool
}

// New wraps tree. Clients must not modify tree other than through the
// wrapper, otherwise subscribers will miss modifications.
func New[T, A any](tree *segtree.LazyTree[T, A]) *Tree[T, A] {
	return &Tree[T, A]{
		tree: tree,
		cast: caster.New(nil),
	}
}

// Subscribe returns a channel of Events, buffered for capacity events.
// The subscription ends when ctx is done or the tree is closed; then the
// channel is closed. ok is false if the tree has been closed already.
func (o *Tree[T, A]) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	return o.cast.Sub(ctx, capacity)
}

// Close ends all subscriptions. Modifications after Close return ErrClosed.
func (o *Tree[T, A]) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.closed = true
	o.cast.Close()
	tracer().Debugf("observe: closed after %d events", o.seq)
}

// modify runs fn under the lock and publishes the event it returns.
func (o *Tree[T, A]) modify(fn func() Event) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return ErrClosed
	}
	ev := fn()
	o.seq++
	ev.Seq = o.seq
	o.cast.Pub(ev)
	return nil
}

// Set replaces the value at index i. It returns ErrIndexOutOfBounds for
// invalid indices.
func (o *Tree[T, A]) Set(i int, v T) error {
	if i < 0 || i >= o.tree.Size() {
		return fmt.Errorf("%w: Set(%d) on tree of length %d", segtree.ErrIndexOutOfBounds, i, o.tree.Size())
	}
	return o.modify(func() Event {
		o.tree.Set(i, v)
		return Event{Kind: Set, Index: i, Action: fmt.Sprint(v)}
	})
}

// Update replaces the value x at index i by f(x).
func (o *Tree[T, A]) Update(i int, f func(T) T) error {
	if i < 0 || i >= o.tree.Size() {
		return fmt.Errorf("%w: Update(%d) on tree of length %d", segtree.ErrIndexOutOfBounds, i, o.tree.Size())
	}
	return o.modify(func() Event {
		o.tree.Update(i, f)
		return Event{Kind: Update, Index: i, Action: fmt.Sprint(o.tree.Get(i))}
	})
}

// Act applies a to every element of range r. Acting on an empty range is
// not broadcast.
func (o *Tree[T, A]) Act(r segtree.Span, a A) error {
	if l, h := r.Clamp(o.tree.Size()); l >= h {
		return nil
	}
	return o.modify(func() Event {
		o.tree.Act(r, a)
		return Event{Kind: Act, Span: r, Action: fmt.Sprint(a)}
	})
}

// Get returns the value at index i.
func (o *Tree[T, A]) Get(i int) (T, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.tree.At(i)
}

// Fold folds range r.
func (o *Tree[T, A]) Fold(r segtree.Span) T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.tree.Fold(r)
}

// Values returns all values of the tree.
func (o *Tree[T, A]) Values() []T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.tree.Values()
}
