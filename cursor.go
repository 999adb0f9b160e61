package linklist

// CurrentIndex returns the 1-based cursor position, 0 when the list is empty.
func (l *List) CurrentIndex() uint64 { return l.currentIndex }

// ToHead moves the cursor to the first record.
func (l *List) ToHead() error {
	if l.head == nilHandle {
		return NullList
	}
	l.current = l.head
	l.currentIndex = 1
	return nil
}

// ToTail moves the cursor to the last record.
func (l *List) ToTail() error {
	if l.tail == nilHandle {
		return NullList
	}
	l.current = l.tail
	l.currentIndex = l.count
	return nil
}

// Increment moves the cursor one record toward the tail.
func (l *List) Increment() error {
	if l.current == nilHandle {
		return NullList
	}
	next := l.nodes[l.current].next
	if next == nilHandle {
		return NotFound
	}
	l.current = next
	l.currentIndex++
	return nil
}

// Decrement moves the cursor one record toward the head.
func (l *List) Decrement() error {
	if l.current == nilHandle {
		return NullList
	}
	prior := l.nodes[l.current].prior
	if prior == nilHandle {
		return NotFound
	}
	l.current = prior
	l.currentIndex--
	return nil
}

// StoreCursor remembers the cursor in the saved slot, replacing whatever was
// there.
func (l *List) StoreCursor() error {
	if l.current == nilHandle {
		return NotFound
	}
	l.saved = l.current
	l.savedGen = l.nodes[l.current].gen
	return nil
}

// RestoreCursor moves the cursor back to the saved record and empties the
// slot. The index is taken from the record's position now, so it stays
// right after inserts or swaps moved the record.
func (l *List) RestoreCursor() error {
	if l.saved == nilHandle {
		return NotFound
	}
	nd := &l.nodes[l.saved]
	if !nd.live || nd.gen != l.savedGen {
		return NotFound
	}
	l.current = l.saved
	l.currentIndex = l.indexOf(l.saved)
	l.saved = nilHandle
	return nil
}
