package presets

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/segtree"
	"github.com/npillmayer/segtree/monoid"
	"github.com/stretchr/testify/require"
)

func TestAddSum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	//
	seg := AddSum([]int{1, 4})
	require.Equal(t, 5, seg.Fold(segtree.All()))
	seg.Act(segtree.All(), 13)
	require.Equal(t, 31, seg.Fold(segtree.All()))
	require.Equal(t, 14, seg.Fold(segtree.Index(0)))
	require.Equal(t, 17, seg.Fold(segtree.Index(1)))
	seg.Set(0, 1)
	require.Equal(t, 18, seg.Fold(segtree.All()))
	for range 4 {
		seg.Act(segtree.All(), 1)
	}
	require.Equal(t, 5, seg.Fold(segtree.Index(0)))
	require.Equal(t, 2, seg.Size())
}

func TestAddMaxCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	//
	seg := AddMaxCount([]int{1, -1, 5, 3, 2})
	require.Equal(t, monoid.MaxCount[int]{Max: 5, Count: 1}, seg.Fold(segtree.All()))
	seg.Act(segtree.From(3), 5)
	require.Equal(t, monoid.MaxCount[int]{Max: 5, Count: 1}, seg.Fold(segtree.To(3)))
	require.Equal(t, monoid.MaxCount[int]{Max: 8, Count: 1}, seg.Fold(segtree.All()))
	require.Equal(t, 7, seg.Get(4))
	seg.Set(0, 8)
	require.Equal(t, monoid.MaxCount[int]{Max: 8, Count: 2}, seg.Fold(segtree.All()))
	seg.Act(segtree.Index(0), 1)
	require.Equal(t, monoid.MaxCount[int]{Max: 9, Count: 1}, seg.Fold(segtree.All()))
	seg.Update(1, func(v int) int { return v + 100 })
	require.Equal(t, []int{9, 99, 5, 8, 7}, seg.Values())
}

func TestAssignMaxCount(t *testing.T) {
	seg := AssignMaxCount([]int{1, -1, 5, 3, 2})
	seg.Act(segtree.From(3), monoid.Assign(5))
	require.Equal(t, monoid.MaxCount[int]{Max: 5, Count: 3}, seg.Fold(segtree.All()))
	require.Equal(t, 5, seg.Get(4))
	seg.Act(segtree.All(), monoid.Assign(0))
	require.Equal(t, monoid.MaxCount[int]{Max: 0, Count: 5}, seg.Fold(segtree.All()))
}

func TestAssignMin(t *testing.T) {
	seg := AssignMin([]int{1, -1, 5, 3, 2})
	seg.Act(segtree.From(3), monoid.Assign(7))
	require.Equal(t, -1, seg.Fold(segtree.All()))
	require.Equal(t, 7, seg.Get(4))
}

func TestAddMinCount(t *testing.T) {
	seg := AddMinCount([]int{1, -1, 5, 3, 2})
	require.Equal(t, monoid.MinCount[int]{Min: -1, Count: 1}, seg.Fold(segtree.All()))
	seg.Act(segtree.From(3), -3)
	require.Equal(t, monoid.MinCount[int]{Min: -1, Count: 1}, seg.Fold(segtree.To(3)))
	require.Equal(t, monoid.MinCount[int]{Min: -1, Count: 2}, seg.Fold(segtree.All()))
	require.Equal(t, -1, seg.Get(4))
	seg.Set(0, -1)
	require.Equal(t, monoid.MinCount[int]{Min: -1, Count: 3}, seg.Fold(segtree.All()))
	seg.Act(segtree.Index(0), -1)
	require.Equal(t, monoid.MinCount[int]{Min: -2, Count: 1}, seg.Fold(segtree.All()))
}

func TestWeights(t *testing.T) {
	w := Weights(func(i int) int { return i + 1 })
	seg := AddMinCount([]int{0, 0, 0}, w)
	require.Equal(t, monoid.MinCount[int]{Min: 0, Count: 6}, seg.Fold(segtree.All()))
	seg.Act(segtree.Index(1), 1)
	require.Equal(t, monoid.MinCount[int]{Min: 0, Count: 4}, seg.Fold(segtree.All()))
	seg.Set(1, 0)
	require.Equal(t, monoid.MinCount[int]{Min: 0, Count: 6}, seg.Fold(segtree.All()))

	as := AssignMinMaxCount([]int{3, 1, 3, 2}, w)
	require.Equal(t, monoid.MinMaxCount[int]{Min: 1, MinCount: 2, Max: 3, MaxCount: 4}, as.Fold(segtree.All()))
	as.Act(segtree.Between(1, 3), monoid.Assign(5))
	require.Equal(t, monoid.MinMaxCount[int]{Min: 2, MinCount: 4, Max: 5, MaxCount: 5}, as.Fold(segtree.All()))
	require.Panics(t, func() { Weights(nil) })
}

func TestSums(t *testing.T) {
	as := AssignSum([]int{1, 2, 3, 4})
	as.Act(segtree.Between(1, 3), monoid.Assign(10))
	require.Equal(t, 25, as.Fold(segtree.All()))
	require.Equal(t, 20, as.Fold(segtree.Between(1, 3)))

	aff := AffineSum([]int{1, 2, 3})
	aff.Act(segtree.All(), monoid.Affine[int]{Mul: 2, Add: 1})
	require.Equal(t, 15, aff.Fold(segtree.All()))
	aff.Act(segtree.To(2), monoid.Affine[int]{Mul: 1, Add: -1})
	require.Equal(t, []int{2, 4, 7}, aff.Values())

	seg := AddSum([]int{1, 2, 3, 4})
	require.Equal(t, 3, seg.FindEnd(0, func(s, _ int) bool { return s <= 6 }))
	require.Equal(t, 2, seg.FindStart(4, func(s, _ int) bool { return s <= 7 }))
}

func TestMinMax(t *testing.T) {
	seg := AddMinMax([]int{4, 2, 7})
	require.Equal(t, monoid.MinMax[int]{Min: 2, Max: 7}, seg.Fold(segtree.All()))
	seg.Act(segtree.Index(2), -10)
	require.Equal(t, monoid.MinMax[int]{Min: -3, Max: 4}, seg.Fold(segtree.All()))
	as := AssignMinMax([]int{4, 2, 7})
	as.Act(segtree.All(), monoid.Assign(0))
	require.Equal(t, monoid.MinMax[int]{Min: 0, Max: 0}, as.Fold(segtree.All()))
	mmc := AddMinMaxCount([]int{1, 1, 3})
	mmc.Act(segtree.Index(0), 2)
	require.Equal(t, monoid.MinMaxCount[int]{Min: 1, MinCount: 1, Max: 3, MaxCount: 2}, mmc.Fold(segtree.All()))
}

func TestNonLazy(t *testing.T) {
	require.Equal(t, 10, Sum([]int{1, 2, 3, 4}).Fold(segtree.All()))
	require.Equal(t, 1.5, Min([]float64{3, 1.5, 2}).Fold(segtree.All()))
	require.Equal(t, int8(9), Max([]int8{-3, 9, 2}).Fold(segtree.All()))
	mm := MinMax([]int{5, -2, 8})
	require.Equal(t, monoid.MinMax[int]{Min: -2, Max: 8}, mm.Fold(segtree.All()))
	require.Equal(t, monoid.MinMax[int]{Min: 8, Max: 8}, mm.Fold(segtree.From(2)))
}

func TestPresetsBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	n := 13
	model := make([]int, n)
	for i := range model {
		model[i] = rnd.Intn(50)
	}
	addMin := AddMin(append([]int(nil), model...))
	addMax := AddMax(append([]int(nil), model...))
	asMax := AssignMax(append([]int(nil), model...))
	asModel := append([]int(nil), model...)
	for step := 0; step < 500; step++ {
		l, r := rnd.Intn(n+1), rnd.Intn(n+1)
		if l > r {
			l, r = r, l
		}
		span := segtree.Between(l, r)
		a := rnd.Intn(21) - 10
		switch rnd.Intn(3) {
		case 0:
			addMin.Act(span, a)
			addMax.Act(span, a)
			for i := l; i < r; i++ {
				model[i] += a
			}
		case 1:
			asMax.Act(span, monoid.Assign(a))
			for i := l; i < r; i++ {
				asModel[i] = a
			}
		default:
			lo, hi, amax := monoid.Highest[int](), monoid.Lowest[int](), monoid.Lowest[int]()
			for i := l; i < r; i++ {
				lo, hi = min(lo, model[i]), max(hi, model[i])
				amax = max(amax, asModel[i])
			}
			require.Equal(t, lo, addMin.Fold(span), "min of [%d,%d)", l, r)
			require.Equal(t, hi, addMax.Fold(span), "max of [%d,%d)", l, r)
			require.Equal(t, amax, asMax.Fold(span), "assigned max of [%d,%d)", l, r)
		}
	}
	require.Equal(t, model, addMin.Values())
	require.Equal(t, asModel, asMax.Values())
}

func TestAddAtTypeBounds(t *testing.T) {
	unsigned := AddMin([]uint{0, 5})
	unsigned.Act(segtree.All(), 3)
	require.Equal(t, []uint{3, 8}, unsigned.Values())
	require.Equal(t, uint(3), unsigned.Fold(segtree.All()))

	counted := AddMaxCount([]uint{0, 0})
	counted.Act(segtree.All(), 2)
	require.Equal(t, uint(2), counted.Get(0))
	require.Equal(t, monoid.MaxCount[uint]{Max: 2, Count: 2}, counted.Fold(segtree.All()))

	lowest := AddMax([]int8{-128, 0})
	lowest.Act(segtree.All(), 1)
	require.Equal(t, []int8{-127, 1}, lowest.Values())

	highest := AddMinCount([]int8{127, 5, 127})
	highest.Act(segtree.Index(0), -1)
	require.Equal(t, monoid.MinCount[int8]{Min: 5, Count: 1}, highest.Fold(segtree.All()))
	require.Equal(t, int8(126), highest.Get(0))
	highest.Act(segtree.All(), -5)
	require.Equal(t, monoid.MinCount[int8]{Min: 0, Count: 1}, highest.Fold(segtree.All()))
	require.Equal(t, []int8{121, 0, 122}, highest.Values())
}

func addLinear(values []int) *RangedTree[int, int] {
	return WithRange(values, monoid.Sum[int]{},
		func(a, b int) int { return a + b },
		func() int { return 0 },
		func(k, sum, lo, hi int) int { return sum + k*(lo+hi-1)*(hi-lo)/2 })
}

func TestWithRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	//
	seg := addLinear([]int{1, 2, 3, 4, 5})
	seg.Act(segtree.Between(1, 4), 2)
	require.Equal(t, []int{1, 4, 7, 10, 5}, seg.Values())
	require.Equal(t, 27, seg.Fold(segtree.All()))
	require.Equal(t, 17, seg.Fold(segtree.Between(2, 4)))
	seg.Set(2, 0)
	seg.Act(segtree.All(), 1)
	require.Equal(t, []int{1, 5, 2, 13, 9}, seg.Values())
	require.Equal(t, 30, seg.Fold(segtree.All()))
}

func TestWithRangeBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	n := 11
	model := make([]int, n)
	seg := addLinear(make([]int, n))
	for step := 0; step < 300; step++ {
		l, r := rnd.Intn(n+1), rnd.Intn(n+1)
		if l > r {
			l, r = r, l
		}
		span := segtree.Between(l, r)
		if rnd.Intn(2) == 0 {
			k := rnd.Intn(7) - 3
			seg.Act(span, k)
			for i := l; i < r; i++ {
				model[i] += k * i
			}
			continue
		}
		sum := 0
		for i := l; i < r; i++ {
			sum += model[i]
		}
		require.Equal(t, sum, seg.Fold(span), "sum of [%d,%d)", l, r)
	}
	require.Equal(t, model, seg.Values())
}
