package list

// References:
// https://en.wikipedia.org/wiki/Unrolled_linked_list
// https://github.com/rust-lang/rust/blob/master/library/alloc/src/collections/linked_list.rs
//  (cursor surface of the std LinkedList)
// https://brilliant.org/wiki/unrolled-linked-list/

import "errors"

// A packed (unrolled) doubly linked list batches up to a fixed number of
// elements into each chain node instead of paying one node allocation per
// element. Inserts inside a full node split its tail into a fresh node, so
// the number of elements copied per operation is bounded by the per-node
// capacity.
//
// Note that the packed list is not thread safe. A single goroutine is
// assumed to own the list and all views derived from it.

var (
	ErrPackedListNodeUnderflow = errors.New("[packed-list] reachable node holds no element")
	ErrPackedListNodeOverflow  = errors.New("[packed-list] node size exceeds per-node capacity")
	ErrPackedListBrokenLink    = errors.New("[packed-list] prev/next links disagree")
	ErrPackedListLenMismatch   = errors.New("[packed-list] len differs from traversal count")
	ErrPackedListDanglingEnd   = errors.New("[packed-list] head/tail bookkeeping is inconsistent")
)

// PackedList is the packed doubly linked list interface.
type PackedList[T comparable] interface {
	// Len returns the total number of live elements, O(1).
	Len() int64
	// Cap returns the per-node element capacity the list was built with.
	Cap() int
	// PushFront inserts a new element v before the first element of the list.
	PushFront(v T)
	// PushBack inserts a new element v after the last element of the list.
	PushBack(v T)
	// PopFront removes and returns the first element, or false if the list is empty.
	PopFront() (T, bool)
	// PopBack removes and returns the last element, or false if the list is empty.
	PopBack() (T, bool)
	// Front returns the first element without removing it, or false if the list is empty.
	Front() (T, bool)
	// Back returns the last element without removing it, or false if the list is empty.
	Back() (T, bool)
	// Get returns the element at index in traversal order, or false if the
	// index is out of bounds. O(n/capacity) node hops.
	Get(index int64) (T, bool)
	// Append pushes the values to the back of the list, preserving order.
	Append(values ...T)
	// Foreach traverses the list front to back and executes fn for each element.
	Foreach(fn func(idx int64, v T))
	// ReverseForeach traverses the list back to front and executes fn for each element.
	ReverseForeach(fn func(idx int64, v T))
	// Iter returns a borrowing forward iterator over the elements.
	Iter() *Iter[T]
	// IterMut returns a forward iterator yielding pointers for in-place mutation.
	IterMut() *IterMut[T]
	// Drain detaches the whole chain into a consuming iterator and resets
	// the list to empty. The drained elements are owned by the iterator.
	Drain() *Drain[T]
	// CursorFront returns a read-only cursor at the first element, or at the
	// ghost position if the list is empty.
	CursorFront() *Cursor[T]
	// CursorBack returns a read-only cursor at the last element, or at the
	// ghost position if the list is empty.
	CursorBack() *Cursor[T]
	// CursorFrontMut returns a mutating cursor at the first element.
	CursorFrontMut() *CursorMut[T]
	// CursorBackMut returns a mutating cursor at the last element.
	CursorBackMut() *CursorMut[T]
	// Clone returns a deep, independently mutable copy of the list.
	Clone() PackedList[T]
	// Equal reports whether both lists hold equal elements in the same
	// traversal order.
	Equal(other PackedList[T]) bool
	// Hash combines all elements in traversal order. Lists that compare
	// equal hash equal.
	Hash() uint64
	// String renders the elements as an ordered sequence.
	String() string
	// CheckInvariants walks the chain and reports every structural
	// violation it finds, or nil if the list is consistent.
	CheckInvariants() error
}
