package linklist

import "sync"

// getBuf mengambil buffer record dari pool atau membuat baru jika tidak
// tersedia. Ukuran buffer selalu l.record byte.
func (l *List) getBuf() []byte {
	if l.bufPool != nil {
		return l.bufPool.Get().([]byte)
	}
	return make([]byte, l.record)
}

// putBuf mengembalikan buffer ke pool untuk digunakan kembali. Hanya buffer
// dengan ukuran tepat yang dimasukkan kembali.
func (l *List) putBuf(buf []byte) {
	if l.bufPool != nil && len(buf) == l.record {
		clear(buf)
		l.bufPool.Put(buf)
	}
}

func newBufPool(opts Options) *sync.Pool {
	if opts.BufferPoolSize <= 0 {
		return nil
	}
	size := opts.RecordSize
	return &sync.Pool{New: func() any { return make([]byte, size) }}
}
