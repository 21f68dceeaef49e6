package list

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/multierr"
)

var _ PackedList[struct{}] = (*packedLinkedList[struct{}])(nil) // Type check assertion

// packedLinkedList owns the node chain through first/last; the prev/next
// links inside the nodes are traversal references only. Every structural
// mutation bumps version, which lets outstanding cursors and iterators
// detect that the chain they captured has been restructured.
type packedLinkedList[T comparable] struct {
	first, last *packedNode[T]
	arena       *nodeArena[T]
	len         int64
	capacity    int
	version     uint64
}

// NewPackedList constructs an empty packed list whose nodes hold up to
// capacity elements each. A capacity below 1 is a programming error and
// panics; zero-capacity nodes could never satisfy the non-empty-node rule.
func NewPackedList[T comparable](capacity int) PackedList[T] {
	if capacity < 1 {
		panic("[packed-list] node capacity must be at least 1")
	}
	return &packedLinkedList[T]{
		arena:    newNodeArena[T](capacity, 8),
		capacity: capacity,
	}
}

// NewPackedListFromSlice builds a list by pushing the values back in order.
func NewPackedListFromSlice[T comparable](capacity int, values []T) PackedList[T] {
	l := NewPackedList[T](capacity)
	l.Append(values...)
	return l
}

func (l *packedLinkedList[T]) Len() int64 {
	return l.len
}

func (l *packedLinkedList[T]) Cap() int {
	return l.capacity
}

// linkFront splices a fresh empty node before the current head.
func (l *packedLinkedList[T]) linkFront() *packedNode[T] {
	n := l.arena.allocate()
	n.next = l.first
	if l.first != nil {
		l.first.prev = n
	} else {
		l.last = n
	}
	l.first = n
	return n
}

// linkBack splices a fresh empty node after the current tail.
func (l *packedLinkedList[T]) linkBack() *packedNode[T] {
	n := l.arena.allocate()
	n.prev = l.last
	if l.last != nil {
		l.last.next = n
	} else {
		l.first = n
	}
	l.last = n
	return n
}

// linkAfter splices a fresh empty node between at and its successor.
func (l *packedLinkedList[T]) linkAfter(at *packedNode[T]) *packedNode[T] {
	n := l.arena.allocate()
	n.prev, n.next = at, at.next
	if at.next != nil {
		at.next.prev = n
	} else {
		l.last = n
	}
	at.next = n
	return n
}

// linkBefore splices a fresh empty node between at and its predecessor.
func (l *packedLinkedList[T]) linkBefore(at *packedNode[T]) *packedNode[T] {
	n := l.arena.allocate()
	n.prev, n.next = at.prev, at
	if at.prev != nil {
		at.prev.next = n
	} else {
		l.first = n
	}
	at.prev = n
	return n
}

// unlink removes the node from the chain and recycles it.
// The node must be empty by the time it is unlinked.
func (l *packedLinkedList[T]) unlink(n *packedNode[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.first = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.last = n.prev
	}
	l.arena.recycle(n)
}

func (l *packedLinkedList[T]) PushFront(v T) {
	head := l.first
	if head == nil || head.isFull() {
		head = l.linkFront()
	}
	head.pushFront(v)
	l.len++
	l.version++
}

func (l *packedLinkedList[T]) PushBack(v T) {
	tail := l.last
	if tail == nil || tail.isFull() {
		tail = l.linkBack()
	}
	tail.pushBack(v)
	l.len++
	l.version++
}

func (l *packedLinkedList[T]) PopFront() (T, bool) {
	var zero T
	head := l.first
	if head == nil {
		return zero, false
	}
	v := head.removeAt(0)
	if head.size == 0 {
		l.unlink(head)
	}
	l.len--
	l.version++
	return v, true
}

func (l *packedLinkedList[T]) PopBack() (T, bool) {
	var zero T
	tail := l.last
	if tail == nil {
		return zero, false
	}
	v := tail.removeAt(tail.size - 1)
	if tail.size == 0 {
		l.unlink(tail)
	}
	l.len--
	l.version++
	return v, true
}

func (l *packedLinkedList[T]) Front() (T, bool) {
	var zero T
	if l.first == nil {
		return zero, false
	}
	return l.first.values[0], true
}

func (l *packedLinkedList[T]) Back() (T, bool) {
	var zero T
	if l.last == nil {
		return zero, false
	}
	return l.last.values[l.last.size-1], true
}

func (l *packedLinkedList[T]) Get(index int64) (T, bool) {
	var zero T
	if index < 0 || index >= l.len {
		return zero, false
	}
	for n := l.first; n != nil; n = n.next {
		if index < int64(n.size) {
			return n.values[index], true
		}
		index -= int64(n.size)
	}
	return zero, false
}

func (l *packedLinkedList[T]) Append(values ...T) {
	for _, v := range values {
		l.PushBack(v)
	}
}

func (l *packedLinkedList[T]) Foreach(fn func(idx int64, v T)) {
	idx := int64(0)
	for n := l.first; n != nil; n = n.next {
		for i := 0; i < n.size; i++ {
			fn(idx, n.values[i])
			idx++
		}
	}
}

func (l *packedLinkedList[T]) ReverseForeach(fn func(idx int64, v T)) {
	idx := int64(0)
	for n := l.last; n != nil; n = n.prev {
		for i := n.size - 1; i >= 0; i-- {
			fn(idx, n.values[i])
			idx++
		}
	}
}

func (l *packedLinkedList[T]) Clone() PackedList[T] {
	cloned := NewPackedList[T](l.capacity)
	l.Foreach(func(_ int64, v T) {
		cloned.PushBack(v)
	})
	return cloned
}

func (l *packedLinkedList[T]) Equal(other PackedList[T]) bool {
	if other == nil || l.Len() != other.Len() {
		return false
	}
	it, otherIt := l.Iter(), other.Iter()
	for {
		v1, ok1 := it.Next()
		v2, ok2 := otherIt.Next()
		if !ok1 || !ok2 {
			return ok1 == ok2
		}
		if v1 != v2 {
			return false
		}
	}
}

// valueDigester picks how one element feeds the running digest. Fixed-size
// integers hash their little-endian bytes; strings are length-prefixed so
// element boundaries land in the stream and ["ab" "c"] cannot collide with
// ["a" "bc"]; any other type goes through its printed representation.
func valueDigester[T comparable]() func(d *xxhash.Digest, v T) {
	switch any(*new(T)).(type) {
	case string:
		return func(d *xxhash.Digest, v T) {
			s := any(v).(string)
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], uint64(len(s)))
			_, _ = d.Write(b[:])
			_, _ = d.WriteString(s)
		}
	case int:
		return func(d *xxhash.Digest, v T) {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], uint64(any(v).(int)))
			_, _ = d.Write(b[:])
		}
	case int64:
		return func(d *xxhash.Digest, v T) {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], uint64(any(v).(int64)))
			_, _ = d.Write(b[:])
		}
	case uint64:
		return func(d *xxhash.Digest, v T) {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], any(v).(uint64))
			_, _ = d.Write(b[:])
		}
	case int32:
		return func(d *xxhash.Digest, v T) {
			var b [4]byte
			binary.LittleEndian.PutUint32(b[:], uint32(any(v).(int32)))
			_, _ = d.Write(b[:])
		}
	case uint32:
		return func(d *xxhash.Digest, v T) {
			var b [4]byte
			binary.LittleEndian.PutUint32(b[:], any(v).(uint32))
			_, _ = d.Write(b[:])
		}
	case bool:
		return func(d *xxhash.Digest, v T) {
			if any(v).(bool) {
				_, _ = d.Write([]byte{1})
			} else {
				_, _ = d.Write([]byte{0})
			}
		}
	default:
		return func(d *xxhash.Digest, v T) {
			s := fmt.Sprintf("%#v", v)
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], uint64(len(s)))
			_, _ = d.Write(b[:])
			_, _ = d.WriteString(s)
		}
	}
}

func (l *packedLinkedList[T]) Hash() uint64 {
	digest := xxhash.New()
	write := valueDigester[T]()
	l.Foreach(func(_ int64, v T) {
		write(digest, v)
	})
	return digest.Sum64()
}

func (l *packedLinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	l.Foreach(func(idx int64, v T) {
		if idx > 0 {
			sb.WriteByte(' ')
		}
		_, _ = fmt.Fprintf(&sb, "%v", v)
	})
	sb.WriteByte(']')
	return sb.String()
}

func (l *packedLinkedList[T]) CheckInvariants() error {
	var merr error
	if (l.first == nil) != (l.last == nil) {
		merr = multierr.Append(merr, fmt.Errorf("%w: first=%p last=%p",
			ErrPackedListDanglingEnd, l.first, l.last))
	}
	if l.first == nil && l.len != 0 {
		merr = multierr.Append(merr, fmt.Errorf("%w: len=%d on an empty chain",
			ErrPackedListLenMismatch, l.len))
	}
	if l.first != nil && l.first.prev != nil {
		merr = multierr.Append(merr, fmt.Errorf("%w: head has a predecessor",
			ErrPackedListBrokenLink))
	}
	if l.last != nil && l.last.next != nil {
		merr = multierr.Append(merr, fmt.Errorf("%w: tail has a successor",
			ErrPackedListBrokenLink))
	}

	var (
		count    int64
		lastSeen *packedNode[T]
	)
	for n := l.first; n != nil; n = n.next {
		if n.size < 1 {
			merr = multierr.Append(merr, fmt.Errorf("%w: node %p",
				ErrPackedListNodeUnderflow, n))
		}
		if n.size > l.capacity {
			merr = multierr.Append(merr, fmt.Errorf("%w: node %p holds %d of %d",
				ErrPackedListNodeOverflow, n, n.size, l.capacity))
		}
		if n.next != nil && n.next.prev != n {
			merr = multierr.Append(merr, fmt.Errorf("%w: node %p and its successor",
				ErrPackedListBrokenLink, n))
		}
		count += int64(n.size)
		lastSeen = n
	}
	if count != l.len {
		merr = multierr.Append(merr, fmt.Errorf("%w: len=%d traversal=%d",
			ErrPackedListLenMismatch, l.len, count))
	}
	if lastSeen != l.last {
		merr = multierr.Append(merr, fmt.Errorf("%w: tail %p unreachable from head",
			ErrPackedListDanglingEnd, l.last))
	}
	return merr
}
