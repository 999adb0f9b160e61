package linklist

import (
	"hash"

	"github.com/dchest/siphash"
)

// fingerprintKey is fixed so digests are comparable across processes.
var fingerprintKey = []byte("go-linklist/0001")

func newFingerprint() hash.Hash64 {
	return siphash.New(fingerprintKey)
}

// Fingerprint returns a SipHash-2-4 digest of all records from head to tail.
// Two lists with the same records in the same order have the same
// fingerprint, and it equals the digest of the file Save would write.
func (l *List) Fingerprint() uint64 {
	h := newFingerprint()
	for step := l.head; step != nilHandle; step = l.nodes[step].next {
		h.Write(l.nodes[step].record)
	}
	return h.Sum64()
}

func fingerprintBytes(data []byte) uint64 {
	h := newFingerprint()
	h.Write(data)
	return h.Sum64()
}
