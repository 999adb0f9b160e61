package linklist

// DeleteAll removes every record and returns the list to its initial empty
// state: cursor and saved slot unset, search modes HEAD/DOWN, not modified.
// The record size is kept.
func (l *List) DeleteAll() error {
	if l.head == nilHandle {
		return NullList
	}
	l.releaseAll()
	l.reset()
	return nil
}

// Destroy releases every record and the node arena. It is safe on an empty
// list, and the list can be filled again afterwards.
func (l *List) Destroy() {
	if l.head != nilHandle {
		l.releaseAll()
	}
	l.nodes = nil
	l.free = nil
	l.reset()
}

// releaseAll frees the chain from head to tail.
func (l *List) releaseAll() {
	step := l.head
	for step != nilHandle {
		next := l.nodes[step].next
		l.nodes[step].next, l.nodes[step].prior = nilHandle, nilHandle
		l.release(step)
		l.stats.deletes++
		step = next
	}
	l.head, l.tail = nilHandle, nilHandle
}
