package linklist

// handle addresses a node slot in List.nodes.
type handle int32

const nilHandle handle = -1

// node is one arena cell. next and prior are plain slot indices; the arena
// owns every cell, so neither link implies ownership.
//
// gen is bumped each time the slot is released, which lets the saved cursor
// slot detect that its node is gone even if the slot was reused.
type node struct {
	record []byte
	next   handle
	prior  handle
	gen    uint32
	live   bool
}

// alloc places a copy of rec in a free slot and returns its handle. The new
// node is unlinked.
func (l *List) alloc(rec []byte) handle {
	buf := l.getBuf()
	copy(buf, rec)

	if n := len(l.free); n > 0 {
		h := l.free[n-1]
		l.free = l.free[:n-1]
		nd := &l.nodes[h]
		nd.record = buf
		nd.next, nd.prior = nilHandle, nilHandle
		nd.live = true
		return h
	}
	l.nodes = append(l.nodes, node{record: buf, next: nilHandle, prior: nilHandle, live: true})
	return handle(len(l.nodes) - 1)
}

// release returns the slot of an already unlinked node to the free list.
func (l *List) release(h handle) {
	nd := &l.nodes[h]
	l.putBuf(nd.record)
	nd.record = nil
	nd.next, nd.prior = nilHandle, nilHandle
	nd.live = false
	nd.gen++
	l.free = append(l.free, h)
}

// linkBefore links the unlinked node h directly in front of at.
// at == nilHandle appends at the tail.
func (l *List) linkBefore(h, at handle) {
	nd := &l.nodes[h]
	if at == nilHandle {
		nd.prior = l.tail
		nd.next = nilHandle
		if l.tail != nilHandle {
			l.nodes[l.tail].next = h
		} else {
			l.head = h
		}
		l.tail = h
		return
	}
	p := l.nodes[at].prior
	nd.prior = p
	nd.next = at
	l.nodes[at].prior = h
	if p != nilHandle {
		l.nodes[p].next = h
	} else {
		l.head = h
	}
}

// linkAfter links the unlinked node h directly behind at.
func (l *List) linkAfter(h, at handle) {
	next := l.nodes[at].next
	if next == nilHandle {
		l.linkBefore(h, nilHandle)
		return
	}
	l.linkBefore(h, next)
}

// unlink detaches h from the chain without releasing it.
func (l *List) unlink(h handle) {
	nd := &l.nodes[h]
	if nd.prior != nilHandle {
		l.nodes[nd.prior].next = nd.next
	} else {
		l.head = nd.next
	}
	if nd.next != nilHandle {
		l.nodes[nd.next].prior = nd.prior
	} else {
		l.tail = nd.prior
	}
	nd.next, nd.prior = nilHandle, nilHandle
}

// indexOf walks from head to h and returns its 1-based position, 0 if h is
// not on the chain.
func (l *List) indexOf(h handle) uint64 {
	var idx uint64
	for step := l.head; step != nilHandle; step = l.nodes[step].next {
		idx++
		if step == h {
			return idx
		}
	}
	return 0
}

// walk moves n steps from h toward the tail (down) or head (up). It returns
// nilHandle if the chain ends first.
func (l *List) walk(h handle, n uint64, down bool) handle {
	for ; n > 0 && h != nilHandle; n-- {
		if down {
			h = l.nodes[h].next
		} else {
			h = l.nodes[h].prior
		}
	}
	return h
}

// cloneRecord returns a caller-owned copy of the record stored at h.
func (l *List) cloneRecord(h handle) []byte {
	out := make([]byte, l.record)
	copy(out, l.nodes[h].record)
	return out
}
