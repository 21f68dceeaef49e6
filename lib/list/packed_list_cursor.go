package list

// cursorPos is the position state shared by both cursor flavours:
// a (node, in-node index) pair, where a nil node is the single ghost
// position that sits between the last and the first element. The version
// stamp pins the chain layout the cursor was derived from; once the list is
// restructured behind the cursor's back, every operation reports absent
// instead of walking freed nodes.
type cursorPos[T comparable] struct {
	listRef *packedLinkedList[T]
	node    *packedNode[T]
	index   int
	ver     uint64
}

func (c *cursorPos[T]) stale() bool {
	return c.ver != c.listRef.version
}

func (c *cursorPos[T]) moveNext() {
	if c.node == nil {
		c.node = c.listRef.first
		c.index = 0
		return
	}
	if c.index+1 < c.node.size {
		c.index++
		return
	}
	c.node = c.node.next
	c.index = 0
}

func (c *cursorPos[T]) movePrev() {
	if c.node == nil {
		c.node = c.listRef.last
		if c.node != nil {
			c.index = c.node.size - 1
		}
		return
	}
	if c.index > 0 {
		c.index--
		return
	}
	c.node = c.node.prev
	if c.node != nil {
		c.index = c.node.size - 1
	} else {
		c.index = 0
	}
}

func (c *cursorPos[T]) get() (T, bool) {
	var zero T
	if c.node == nil || c.stale() {
		return zero, false
	}
	return c.node.values[c.index], true
}

// Cursor is a read-only position over a packed list. Moving in either
// direction is total: repeated MoveNext or MovePrev calls cycle through all
// elements and pass the ghost position exactly once per full traversal.
type Cursor[T comparable] struct {
	cursorPos[T]
}

func (l *packedLinkedList[T]) CursorFront() *Cursor[T] {
	return &Cursor[T]{cursorPos[T]{listRef: l, node: l.first, ver: l.version}}
}

func (l *packedLinkedList[T]) CursorBack() *Cursor[T] {
	c := &Cursor[T]{cursorPos[T]{listRef: l, node: l.last, ver: l.version}}
	if c.node != nil {
		c.index = c.node.size - 1
	}
	return c
}

// IsGhost reports whether the cursor rests at the no-element position.
func (c *Cursor[T]) IsGhost() bool {
	return c.node == nil
}

func (c *Cursor[T]) MoveNext() {
	if !c.stale() {
		c.moveNext()
	}
}

func (c *Cursor[T]) MovePrev() {
	if !c.stale() {
		c.movePrev()
	}
}

// Get returns the element under the cursor, or false at the ghost position
// or on a cursor invalidated by a later list mutation.
func (c *Cursor[T]) Get() (T, bool) {
	return c.get()
}

// CursorMut is the mutating cursor. It is the only view allowed to
// restructure the chain: its insertions allocate and split nodes, its
// removals unlink them. Each mutation re-stamps the cursor, so it stays
// valid across its own edits while invalidating every other outstanding
// view, the runtime analogue of an exclusive borrow.
type CursorMut[T comparable] struct {
	cursorPos[T]
}

func (l *packedLinkedList[T]) CursorFrontMut() *CursorMut[T] {
	return &CursorMut[T]{cursorPos[T]{listRef: l, node: l.first, ver: l.version}}
}

func (l *packedLinkedList[T]) CursorBackMut() *CursorMut[T] {
	c := &CursorMut[T]{cursorPos[T]{listRef: l, node: l.last, ver: l.version}}
	if c.node != nil {
		c.index = c.node.size - 1
	}
	return c
}

// IsGhost reports whether the cursor rests at the no-element position.
func (c *CursorMut[T]) IsGhost() bool {
	return c.node == nil
}

func (c *CursorMut[T]) MoveNext() {
	if !c.stale() {
		c.moveNext()
	}
}

func (c *CursorMut[T]) MovePrev() {
	if !c.stale() {
		c.movePrev()
	}
}

// Get returns the element under the cursor, or false at the ghost position
// or on a stale cursor.
func (c *CursorMut[T]) Get() (T, bool) {
	return c.get()
}

// Mut returns a pointer to the element under the cursor for in-place
// mutation, or false at the ghost position or on a stale cursor.
func (c *CursorMut[T]) Mut() (*T, bool) {
	if c.node == nil || c.stale() {
		return nil, false
	}
	return &c.node.values[c.index], true
}

// InsertAfter inserts v immediately after the cursor's position without
// moving the cursor. At the ghost position this is a front push. An append
// after a full node spills into a non-full successor or links a fresh node;
// an insert inside a full node splits the node's tail off into a fresh
// successor so at most capacity-1 elements are copied.
// Reports false on a stale cursor.
func (c *CursorMut[T]) InsertAfter(v T) bool {
	if c.stale() {
		return false
	}
	l := c.listRef
	if c.node == nil {
		l.PushFront(v)
		c.ver = l.version
		return true
	}

	node := c.node
	switch {
	case c.index == node.size-1:
		// Appending after the node's last element.
		switch {
		case !node.isFull():
			node.pushBack(v)
		case node.next != nil && !node.next.isFull():
			node.next.pushFront(v)
		default:
			l.linkAfter(node).pushBack(v)
		}
	case !node.isFull():
		node.insertAt(c.index+1, v)
	default:
		// Full node, interior position: the tail moves out, v stays here.
		fresh := l.linkAfter(node)
		fresh.size = copy(fresh.values, node.values[c.index+1:node.size])
		node.truncate(c.index + 1)
		node.pushBack(v)
	}
	l.len++
	l.version++
	c.ver = l.version
	return true
}

// InsertBefore inserts v immediately before the cursor's position; the
// cursor keeps referring to the element it was on. At the ghost position
// this is a back push. Reports false on a stale cursor.
func (c *CursorMut[T]) InsertBefore(v T) bool {
	if c.stale() {
		return false
	}
	l := c.listRef
	if c.node == nil {
		l.PushBack(v)
		c.ver = l.version
		return true
	}

	node := c.node
	switch {
	case c.index == 0:
		// Prepending before the node's first element.
		switch {
		case node.prev != nil && !node.prev.isFull():
			node.prev.pushBack(v)
		case !node.isFull():
			node.pushFront(v)
			c.index = 1
		default:
			l.linkBefore(node).pushBack(v)
		}
	case !node.isFull():
		node.insertAt(c.index, v)
		c.index++
	default:
		// Full node, interior position: the head moves out into a fresh
		// predecessor together with v, the current element stays in place.
		fresh := l.linkBefore(node)
		copy(fresh.values, node.values[:c.index])
		fresh.size = c.index
		fresh.pushBack(v)
		copy(node.values, node.values[c.index:node.size])
		node.truncate(node.size - c.index)
		c.index = 0
	}
	l.len++
	l.version++
	c.ver = l.version
	return true
}

// Replace swaps the element under the cursor for v and returns the previous
// one. The ghost position holds no element, so nothing is replaced there.
func (c *CursorMut[T]) Replace(v T) (T, bool) {
	var zero T
	if c.node == nil || c.stale() {
		return zero, false
	}
	old := c.node.values[c.index]
	c.node.values[c.index] = v
	return old, true
}

// Remove extracts the element under the cursor and returns it. The cursor
// lands on the element that followed the removed one, or on the ghost
// position if none remains. A node emptied by the removal is unlinked and
// recycled. Reports false at the ghost position or on a stale cursor.
func (c *CursorMut[T]) Remove() (T, bool) {
	var zero T
	if c.node == nil || c.stale() {
		return zero, false
	}
	l := c.listRef
	node := c.node
	v := node.removeAt(c.index)
	if node.size == 0 {
		next := node.next
		l.unlink(node)
		c.node = next
		c.index = 0
	} else if c.index == node.size {
		// Removed the node's last element; the successor's head follows it.
		c.node = node.next
		c.index = 0
	}
	l.len--
	l.version++
	c.ver = l.version
	return v, true
}
