package list

// packedNode is a chain link holding 1 to cap(values) elements contiguously
// in the prefix values[:size]. A reachable node is never empty; a node whose
// last element is removed must be unlinked and recycled by its owner.
// The slots past size stay zeroed so the GC never sees stale references.
type packedNode[T comparable] struct {
	prev, next *packedNode[T]
	values     []T
	size       int
}

func (n *packedNode[T]) isFull() bool {
	return n.size == len(n.values)
}

// pushBack writes v after the last live element.
// The caller must have checked that the node is not full.
func (n *packedNode[T]) pushBack(v T) {
	n.values[n.size] = v
	n.size++
}

// pushFront shifts the live elements up by one slot and writes v at index 0.
// The caller must have checked that the node is not full.
func (n *packedNode[T]) pushFront(v T) {
	copy(n.values[1:n.size+1], n.values[:n.size])
	n.values[0] = v
	n.size++
}

// insertAt shifts the live elements at [idx, size) up by one and writes v at
// idx. The caller must have checked that the node is not full and idx <= size.
func (n *packedNode[T]) insertAt(idx int, v T) {
	copy(n.values[idx+1:n.size+1], n.values[idx:n.size])
	n.values[idx] = v
	n.size++
}

// removeAt extracts the element at idx, closing the gap and zeroing the
// vacated slot.
func (n *packedNode[T]) removeAt(idx int) T {
	var zero T
	v := n.values[idx]
	copy(n.values[idx:n.size-1], n.values[idx+1:n.size])
	n.size--
	n.values[n.size] = zero
	return v
}

// truncate drops the live elements at [newSize, size), zeroing their slots.
func (n *packedNode[T]) truncate(newSize int) {
	var zero T
	for i := newSize; i < n.size; i++ {
		n.values[i] = zero
	}
	n.size = newSize
}

// nodeArena hands out packedNode values for one list and keeps a recycle
// list of unlinked nodes so steady-state push/pop churn does not allocate.
type nodeArena[T comparable] struct {
	recycled []*packedNode[T]
	capacity int
}

func newNodeArena[T comparable](capacity int, initRecycleCap int) *nodeArena[T] {
	return &nodeArena[T]{
		recycled: make([]*packedNode[T], 0, initRecycleCap),
		capacity: capacity,
	}
}

func (a *nodeArena[T]) allocate() *packedNode[T] {
	if l := len(a.recycled); l > 0 {
		n := a.recycled[l-1]
		a.recycled = a.recycled[:l-1]
		return n
	}
	return &packedNode[T]{values: make([]T, a.capacity)}
}

// recycle clears the nodes and parks them for reuse.
func (a *nodeArena[T]) recycle(nodes ...*packedNode[T]) {
	for _, n := range nodes {
		n.truncate(0)
		n.prev, n.next = nil, nil
		a.recycled = append(a.recycled, n)
	}
}
