package linklist

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"
)

const version = "go-linklist 2.0.0"

// List is a doubly linked list of fixed-size records with a single
// navigation cursor and one saved cursor slot.
//
// A List is not safe for concurrent use; callers that share one must
// serialize access themselves.
type List struct {
	nodes []node   // arena; slots are reused through free
	free  []handle // released slots

	head    handle
	tail    handle
	current handle
	saved   handle
	// savedGen is the generation of the saved slot at store time. A
	// mismatch means the node was deleted after StoreCursor.
	savedGen uint32

	record       int
	count        uint64
	currentIndex uint64
	modified     bool

	origin Origin
	dir    Direction

	options Options
	bufPool *sync.Pool
	logger  *slog.Logger
	stats   counters
}

// New creates an empty list using DefaultOptions with the given record size.
func New(recordSize int) (*List, error) {
	opts := DefaultOptions()
	opts.RecordSize = recordSize
	return NewWithOptions(opts)
}

// NewWithOptions creates an empty list with custom options. It returns
// ZeroInfo when opts.RecordSize is not positive.
func NewWithOptions(opts Options) (*List, error) {
	if opts.RecordSize <= 0 {
		return nil, opError("new", ZeroInfo, fmt.Errorf("record size %d", opts.RecordSize))
	}
	if opts.FileMode == 0 {
		opts.FileMode = 0o666
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}

	l := &List{
		record:  opts.RecordSize,
		options: opts,
		bufPool: newBufPool(opts),
		logger:  logger,
	}
	l.reset()
	return l, nil
}

// reset puts the control block back into its freshly initialized state.
// The arena is kept for reuse.
func (l *List) reset() {
	l.head, l.tail, l.current, l.saved = nilHandle, nilHandle, nilHandle, nilHandle
	l.savedGen = 0
	l.count = 0
	l.currentIndex = 0
	l.modified = false
	l.origin = OriginHead
	l.dir = DirDown
}

// Version returns the library version banner.
func Version() string { return version }

// IsEmpty reports whether the list holds no records.
func (l *List) IsEmpty() bool { return l.head == nilHandle }

// IsFull reports whether another record would be rejected with MemError.
// Without Options.MaxRecords the list is never full.
func (l *List) IsFull() bool {
	return l.options.MaxRecords > 0 && l.count >= l.options.MaxRecords
}

// Count returns the number of records.
func (l *List) Count() uint64 { return l.count }

// RecordSize returns the fixed record size in bytes.
func (l *List) RecordSize() int { return l.record }

// Modified reports whether the list changed since the last successful Save.
func (l *List) Modified() bool { return l.modified }

// checkRecord rejects records whose length differs from the list's record
// size.
func (l *List) checkRecord(op string, rec []byte) error {
	if len(rec) != l.record {
		return opError(op, NotModified, fmt.Errorf("record size mismatch: got %d want %d", len(rec), l.record))
	}
	return nil
}

// Records returns copies of all records from head to tail. The cursor does
// not move.
func (l *List) Records() [][]byte {
	out := make([][]byte, 0, l.count)
	for step := l.head; step != nilHandle; step = l.nodes[step].next {
		out = append(out, l.cloneRecord(step))
	}
	return out
}
