package list

import (
	"container/list"
	"math/rand"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T comparable](l PackedList[T]) []T {
	out := make([]T, 0, l.Len())
	l.Foreach(func(_ int64, v T) {
		out = append(out, v)
	})
	return out
}

func TestNewPackedList_InvalidCapacity(t *testing.T) {
	assert.Panics(t, func() {
		NewPackedList[int](0)
	})
	assert.Panics(t, func() {
		NewPackedList[string](-1)
	})
}

func TestPackedList_PushBackThenPopFront_Capacity2(t *testing.T) {
	plist := NewPackedList[int](2)
	plist.Append(1, 2, 3, 4)
	require.Equal(t, int64(4), plist.Len())
	require.NoError(t, plist.CheckInvariants())

	for _, expected := range []int{1, 2, 3, 4} {
		v, ok := plist.PopFront()
		require.True(t, ok)
		require.Equal(t, expected, v)
		require.NoError(t, plist.CheckInvariants())
	}
	_, ok := plist.PopFront()
	assert.False(t, ok)
	assert.Equal(t, int64(0), plist.Len())
}

func TestPackedList_PushFront_Capacity1(t *testing.T) {
	plist := NewPackedList[int](1)
	plist.PushFront(3)
	plist.PushFront(2)
	plist.PushFront(1)
	require.NoError(t, plist.CheckInvariants())
	assert.Equal(t, []int{1, 2, 3}, collect(plist))
}

func TestPackedList_PopOnEmpty(t *testing.T) {
	plist := NewPackedList[string](4)
	_, ok := plist.PopFront()
	assert.False(t, ok)
	_, ok = plist.PopBack()
	assert.False(t, ok)
	_, ok = plist.Front()
	assert.False(t, ok)
	_, ok = plist.Back()
	assert.False(t, ok)
	assert.Equal(t, int64(0), plist.Len())
	assert.NoError(t, plist.CheckInvariants())
}

func TestPackedList_PopUntilEmptyStaysEmpty(t *testing.T) {
	values := lo.Range(100)
	plist := NewPackedListFromSlice(7, values)
	require.Equal(t, int64(len(values)), plist.Len())

	for _, expected := range values {
		v, ok := plist.PopFront()
		require.True(t, ok)
		require.Equal(t, expected, v)
	}
	for i := 0; i < 10; i++ {
		_, ok := plist.PopFront()
		require.False(t, ok)
		_, ok = plist.PopBack()
		require.False(t, ok)
	}
	assert.Equal(t, int64(0), plist.Len())
	assert.NoError(t, plist.CheckInvariants())
}

func TestPackedList_PopBack(t *testing.T) {
	plist := NewPackedListFromSlice(3, []int{1, 2, 3, 4, 5})
	for _, expected := range []int{5, 4, 3, 2, 1} {
		v, ok := plist.PopBack()
		require.True(t, ok)
		require.Equal(t, expected, v)
		require.NoError(t, plist.CheckInvariants())
	}
	_, ok := plist.PopBack()
	assert.False(t, ok)
}

func TestPackedList_FrontBack(t *testing.T) {
	plist := NewPackedListFromSlice(2, []int{7, 8, 9})
	front, ok := plist.Front()
	require.True(t, ok)
	back, ok2 := plist.Back()
	require.True(t, ok2)
	assert.Equal(t, 7, front)
	assert.Equal(t, 9, back)
	assert.Equal(t, int64(3), plist.Len())
}

func TestPackedList_Get(t *testing.T) {
	values := lo.Range(50)
	plist := NewPackedListFromSlice(8, values)
	for i, expected := range values {
		v, ok := plist.Get(int64(i))
		require.True(t, ok)
		require.Equal(t, expected, v)
	}
	_, ok := plist.Get(-1)
	assert.False(t, ok)
	_, ok = plist.Get(int64(len(values)))
	assert.False(t, ok)
}

func TestPackedList_ForeachAndReverse(t *testing.T) {
	values := lo.Range(33)
	plist := NewPackedListFromSlice(4, values)

	assert.Equal(t, values, collect(plist))

	reversed := make([]int, 0, len(values))
	plist.ReverseForeach(func(_ int64, v int) {
		reversed = append(reversed, v)
	})
	assert.Equal(t, lo.Reverse(lo.Range(33)), reversed)
}

func TestPackedList_AgainstContainerList(t *testing.T) {
	rng := rand.New(rand.NewSource(20240817))
	plist := NewPackedList[int](4)
	mirror := list.New()

	checkItems := func() {
		require.Equal(t, int64(mirror.Len()), plist.Len())
		require.NoError(t, plist.CheckInvariants())
		it := plist.Iter()
		for e := mirror.Front(); e != nil; e = e.Next() {
			v, ok := it.Next()
			require.True(t, ok)
			require.Equal(t, e.Value, v)
		}
		_, ok := it.Next()
		require.False(t, ok)
	}

	for i := 0; i < 2000; i++ {
		v := rng.Intn(1 << 16)
		switch rng.Intn(4) {
		case 0:
			plist.PushFront(v)
			mirror.PushFront(v)
		case 1:
			plist.PushBack(v)
			mirror.PushBack(v)
		case 2:
			got, ok := plist.PopFront()
			if front := mirror.Front(); front != nil {
				require.True(t, ok)
				require.Equal(t, mirror.Remove(front), got)
			} else {
				require.False(t, ok)
			}
		case 3:
			got, ok := plist.PopBack()
			if back := mirror.Back(); back != nil {
				require.True(t, ok)
				require.Equal(t, mirror.Remove(back), got)
			} else {
				require.False(t, ok)
			}
		}
		if i%100 == 0 {
			checkItems()
		}
	}
	checkItems()
}

func TestPackedList_CloneIsIndependent(t *testing.T) {
	plist := NewPackedListFromSlice(2, []int{1, 5, 732, 533})
	cloned := plist.Clone()

	require.True(t, plist.Equal(cloned))
	require.True(t, cloned.Equal(plist))
	assert.Equal(t, plist.Hash(), cloned.Hash())

	cloned.PushBack(42)
	assert.False(t, plist.Equal(cloned))
	assert.Equal(t, int64(4), plist.Len())
	assert.Equal(t, []int{1, 5, 732, 533}, collect(plist))
	assert.NotEqual(t, plist.Hash(), cloned.Hash())
}

func TestPackedList_Equal(t *testing.T) {
	left := NewPackedListFromSlice(2, []int{1, 2, 3})
	right := NewPackedListFromSlice(5, []int{1, 2, 3})
	// Equality is about traversal order, not node layout.
	assert.True(t, left.Equal(right))

	right.PushBack(4)
	assert.False(t, left.Equal(right))

	assert.False(t, left.Equal(NewPackedListFromSlice(2, []int{1, 2, 4})))
	assert.False(t, left.Equal(nil))
	assert.True(t, NewPackedList[int](3).Equal(NewPackedList[int](9)))
}

func TestPackedList_HashConsistentWithEqual(t *testing.T) {
	left := NewPackedListFromSlice(3, []string{"a", "b", "c"})
	right := NewPackedListFromSlice(7, []string{"a", "b", "c"})
	require.True(t, left.Equal(right))
	assert.Equal(t, left.Hash(), right.Hash())

	other := NewPackedListFromSlice(3, []string{"a", "b", "d"})
	assert.NotEqual(t, left.Hash(), other.Hash())
}

func TestPackedList_HashSeparatesElementBoundaries(t *testing.T) {
	// Same concatenated bytes, different element boundaries.
	left := NewPackedListFromSlice(2, []string{"ab", "c"})
	right := NewPackedListFromSlice(2, []string{"a", "bc"})
	require.False(t, left.Equal(right))
	assert.NotEqual(t, left.Hash(), right.Hash())
}

func TestPackedList_String(t *testing.T) {
	assert.Equal(t, "[]", NewPackedList[int](4).String())
	assert.Equal(t, "[1 2 3]", NewPackedListFromSlice(2, []int{1, 2, 3}).String())
	assert.Equal(t, "[x y]", NewPackedListFromSlice(1, []string{"x", "y"}).String())
}

func TestPackedList_ArenaRecyclesNodes(t *testing.T) {
	plist := NewPackedList[int](2).(*packedLinkedList[int])
	plist.Append(1, 2, 3, 4)
	require.Equal(t, 0, len(plist.arena.recycled))

	for i := 0; i < 4; i++ {
		_, ok := plist.PopFront()
		require.True(t, ok)
	}
	require.Equal(t, 2, len(plist.arena.recycled))

	// New pushes must reuse the parked nodes instead of allocating.
	recycled := plist.arena.recycled[len(plist.arena.recycled)-1]
	plist.PushBack(9)
	assert.Same(t, recycled, plist.first)
	assert.Equal(t, 1, len(plist.arena.recycled))
	assert.NoError(t, plist.CheckInvariants())
}

func TestPackedList_PopClearsSlots(t *testing.T) {
	plist := NewPackedList[string](4).(*packedLinkedList[string])
	plist.Append("a", "b", "c")

	v, ok := plist.PopBack()
	require.True(t, ok)
	require.Equal(t, "c", v)
	// The vacated slot must not pin the popped value.
	assert.Equal(t, "", plist.first.values[2])
}

func TestPackedList_InvariantCheckerFindsCorruption(t *testing.T) {
	plist := NewPackedListFromSlice(2, []int{1, 2, 3}).(*packedLinkedList[int])
	require.NoError(t, plist.CheckInvariants())

	plist.len = 99
	err := plist.CheckInvariants()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPackedListLenMismatch)
	plist.len = 3

	plist.first.size = 0
	err = plist.CheckInvariants()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPackedListNodeUnderflow)
}
