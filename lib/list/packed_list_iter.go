package list

// Iter is the borrowing forward iterator. It walks node to node, slot to
// slot, and terminates once the chain runs out. It is not restartable;
// derive a fresh one from the list instead. A structural mutation of the
// list ends the iteration early rather than touching a restructured chain.
type Iter[T comparable] struct {
	listRef *packedLinkedList[T]
	node    *packedNode[T]
	index   int
	ver     uint64
}

func (l *packedLinkedList[T]) Iter() *Iter[T] {
	return &Iter[T]{listRef: l, node: l.first, ver: l.version}
}

func (it *Iter[T]) Next() (T, bool) {
	var zero T
	if it.node == nil || it.ver != it.listRef.version {
		return zero, false
	}
	v := it.node.values[it.index]
	it.index++
	if it.index >= it.node.size {
		it.node = it.node.next
		it.index = 0
	}
	return v, true
}

// IterMut is the forward iterator for in-place mutation. It yields a pointer
// into the element's slot; the pointee may be rewritten but the chain itself
// must not be restructured while the iterator is live.
type IterMut[T comparable] struct {
	listRef *packedLinkedList[T]
	node    *packedNode[T]
	index   int
	ver     uint64
}

func (l *packedLinkedList[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{listRef: l, node: l.first, ver: l.version}
}

func (it *IterMut[T]) Next() (*T, bool) {
	if it.node == nil || it.ver != it.listRef.version {
		return nil, false
	}
	p := &it.node.values[it.index]
	it.index++
	if it.index >= it.node.size {
		it.node = it.node.next
		it.index = 0
	}
	return p, true
}

// Drain is the consuming iterator. Creating it hands the whole chain over:
// the source list is reset to empty immediately and stays independently
// usable. Each Next extracts one element and zeroes its slot; a node is
// recycled as soon as its last element has been taken. Call Close when
// abandoning the drain early so the remaining nodes are released too.
type Drain[T comparable] struct {
	arena *nodeArena[T]
	node  *packedNode[T]
	index int
}

func (l *packedLinkedList[T]) Drain() *Drain[T] {
	d := &Drain[T]{arena: l.arena, node: l.first}
	l.first, l.last = nil, nil
	l.len = 0
	l.version++
	return d
}

func (d *Drain[T]) Next() (T, bool) {
	var zero T
	if d.node == nil {
		return zero, false
	}
	node := d.node
	v := node.values[d.index]
	node.values[d.index] = zero
	d.index++
	if d.index >= node.size {
		next := node.next
		node.size = 0
		d.arena.recycle(node)
		d.node = next
		d.index = 0
	}
	return v, true
}

// Close drains and recycles everything that has not been consumed yet.
func (d *Drain[T]) Close() {
	for d.node != nil {
		node := d.node
		d.node = node.next
		d.arena.recycle(node)
	}
	d.index = 0
}
