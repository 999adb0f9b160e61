package linklist

// FindRecord scans from head to tail for the first record r with
// cmp(r, match) == 0, moves the cursor there and returns a copy of r.
// On NotFound the cursor does not move.
func (l *List) FindRecord(match []byte, cmp Comparator) ([]byte, error) {
	if cmp == nil {
		return nil, NullFunction
	}
	if l.head == nilHandle {
		return nil, NullList
	}

	var idx uint64 = 1
	for step := l.head; step != nilHandle; step = l.nodes[step].next {
		if cmp(l.nodes[step].record, match) == 0 {
			l.current = step
			l.currentIndex = idx
			l.stats.hits++
			return l.cloneRecord(step), nil
		}
		idx++
	}
	l.stats.misses++
	return nil, NotFound
}

// FindNthRecord moves the cursor skip records away from the configured
// search origin, in the configured direction, and returns a copy of the
// record it lands on. Counting starts at zero on the origin record, so with
// HEAD/DOWN a skip of 5 returns the 6th record.
//
// A skip of zero is always NotFound, as is any skip that would leave the
// list. On NotFound the cursor does not move.
func (l *List) FindNthRecord(skip uint64) ([]byte, error) {
	if l.head == nilHandle {
		return nil, NullList
	}

	var (
		start handle
		idx   uint64
	)
	switch l.origin {
	case OriginCurrent:
		start, idx = l.current, l.currentIndex
	case OriginTail:
		start, idx = l.tail, l.count
	default:
		start, idx = l.head, 1
	}

	down := l.dir != DirUp
	switch {
	case skip == 0,
		down && skip > l.count-idx,
		!down && skip >= idx:
		l.stats.misses++
		return nil, NotFound
	}

	h := l.walk(start, skip, down)
	l.current = h
	if down {
		l.currentIndex = idx + skip
	} else {
		l.currentIndex = idx - skip
	}
	l.stats.hits++
	return l.cloneRecord(h), nil
}

// CurrentRecord returns a copy of the record under the cursor.
func (l *List) CurrentRecord() ([]byte, error) {
	if l.current == nilHandle {
		return nil, NullList
	}
	return l.cloneRecord(l.current), nil
}

// PriorRecord moves the cursor one record toward the head and returns a copy
// of it.
func (l *List) PriorRecord() ([]byte, error) {
	if err := l.Decrement(); err != nil {
		return nil, err
	}
	return l.cloneRecord(l.current), nil
}

// NextRecord moves the cursor one record toward the tail and returns a copy
// of it.
func (l *List) NextRecord() ([]byte, error) {
	if err := l.Increment(); err != nil {
		return nil, err
	}
	return l.cloneRecord(l.current), nil
}
