package linklist

import "fmt"

// AddRecord stores a copy of rec.
//
// With a nil comparator the record is appended at the tail. Otherwise it is
// inserted in front of the first record r with cmp(r, rec) >= 0, so equal
// records keep the newest first, or appended when there is none. The cursor
// ends on the new record.
func (l *List) AddRecord(rec []byte, cmp Comparator) error {
	if err := l.checkRecord("add record", rec); err != nil {
		return err
	}
	return l.addRecord("add record", rec, cmp)
}

func (l *List) addRecord(op string, rec []byte, cmp Comparator) error {
	if l.IsFull() {
		return opError(op, MemError, fmt.Errorf("list is full at %d records", l.count))
	}

	at := nilHandle
	idx := l.count + 1
	if cmp != nil {
		var i uint64 = 1
		for step := l.head; step != nilHandle; step = l.nodes[step].next {
			if cmp(l.nodes[step].record, rec) >= 0 {
				at, idx = step, i
				break
			}
			i++
		}
	}

	h := l.alloc(rec)
	l.linkBefore(h, at)
	l.count++
	l.current = h
	l.currentIndex = idx
	l.modified = true
	l.stats.adds++
	return nil
}

// InsertRecord stores a copy of rec next to the cursor: InsertAbove puts it
// toward the head, InsertBelow toward the tail. In an empty list it becomes
// the only record. The cursor moves to the new record.
func (l *List) InsertRecord(rec []byte, dir InsertDir) error {
	if dir != InsertAbove && dir != InsertBelow {
		return opError("insert record", NotModified, fmt.Errorf("invalid direction %s", dir))
	}
	if err := l.checkRecord("insert record", rec); err != nil {
		return err
	}
	if l.IsFull() {
		return opError("insert record", MemError, fmt.Errorf("list is full at %d records", l.count))
	}

	h := l.alloc(rec)
	switch {
	case l.current == nilHandle:
		l.linkBefore(h, nilHandle)
		l.currentIndex = 1
	case dir == InsertAbove:
		// new node takes over the cursor's index
		l.linkBefore(h, l.current)
	default:
		l.linkAfter(h, l.current)
		l.currentIndex++
	}
	l.current = h
	l.count++
	l.modified = true
	l.stats.adds++
	return nil
}

// SwapRecord exchanges the current record with its neighbour above or below.
// The cursor stays on the same record, so its index moves with it.
func (l *List) SwapRecord(dir InsertDir) error {
	if l.current == nilHandle {
		return NullList
	}
	cur := l.current
	switch dir {
	case InsertAbove:
		prior := l.nodes[cur].prior
		if prior == nilHandle {
			return NotFound
		}
		l.unlink(cur)
		l.linkBefore(cur, prior)
		l.currentIndex--
	case InsertBelow:
		next := l.nodes[cur].next
		if next == nilHandle {
			return NotFound
		}
		l.unlink(cur)
		l.linkAfter(cur, next)
		l.currentIndex++
	default:
		return opError("swap record", NotModified, fmt.Errorf("invalid direction %s", dir))
	}
	l.modified = true
	return nil
}

// UpdateCurrentRecord overwrites the current record with rec.
func (l *List) UpdateCurrentRecord(rec []byte) error {
	if l.current == nilHandle {
		return NullList
	}
	if err := l.checkRecord("update record", rec); err != nil {
		return err
	}
	copy(l.nodes[l.current].record, rec)
	l.modified = true
	return nil
}

// DeleteCurrentRecord removes the current record. The cursor moves to the
// next record, or to the new tail when the tail was removed.
func (l *List) DeleteCurrentRecord() error {
	if l.current == nilHandle {
		return NullList
	}
	h := l.current
	next, prior := l.nodes[h].next, l.nodes[h].prior

	l.unlink(h)
	l.release(h)
	l.count--

	switch {
	case next != nilHandle:
		l.current = next
	case prior != nilHandle:
		l.current = prior
		l.currentIndex--
	default:
		l.current = nilHandle
		l.currentIndex = 0
	}
	l.modified = true
	l.stats.deletes++
	return nil
}
