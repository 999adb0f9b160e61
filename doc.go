// Package linklist provides an in-memory doubly linked list of fixed-size
// records with a navigation cursor, sorted or positional insertion, relative
// searches and a flat binary save/load format.
//
// The library is organised into several files for clarity:
//
//	options.go     – configuration struct & defaults
//	list.go        – constructor, control block & status accessors
//	node.go        – node arena, handles & link helpers
//	buffer.go      – pooled record buffers
//	compare.go     – comparator type & stock comparators
//	modes.go       – search origin/direction & insert direction
//	cursor.go      – cursor navigation & saved slot
//	mutate.go      – add, insert, swap, update & delete
//	search.go      – find & record retrieval
//	io.go          – save/load codec (optional mmap & fsync)
//	config.go      – <path>.config sidecar
//	fingerprint.go – SipHash digest of the records
//	stats.go       – lightweight stats accessors
//	destroy.go     – delete-all & destroy helpers
//	errors.go      – result codes
//
// A List is meant for one caller at a time and does no locking.
//
//	l, _ := linklist.New(16)
//	l.AddRecord([]byte("ZZZZ............"), linklist.CompareBytes)
//	l.AddRecord([]byte("AAAA............"), linklist.CompareBytes)
//	l.ToHead()
//	rec, _ := l.CurrentRecord() // AAAA...
package linklist
