package linklist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Save writes every record from head to tail to path as a flat run of
// RecordSize-byte blocks, with no header. It returns NullList for an empty
// list and NotModified when nothing changed since the last save.
func (l *List) Save(path string) error {
	if l.head == nilHandle {
		return NullList
	}
	if !l.modified {
		return NotModified
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, l.options.FileMode)
	if err != nil {
		return opError("save", OpenError, err)
	}

	sum := newFingerprint()
	w := bufio.NewWriter(io.MultiWriter(f, sum))
	for step := l.head; step != nilHandle; step = l.nodes[step].next {
		if _, err := w.Write(l.nodes[step].record); err != nil {
			f.Close()
			return opError("save", WriteError, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return opError("save", WriteError, err)
	}
	if l.options.SyncOnSave {
		if err := unix.Fsync(int(f.Fd())); err != nil {
			f.Close()
			return opError("save", WriteError, fmt.Errorf("fsync: %w", err))
		}
	}
	if err := f.Close(); err != nil {
		return opError("save", WriteError, err)
	}

	if l.options.PersistConfig {
		cfg := persistedConfig{
			RecordSize:  l.record,
			Records:     l.count,
			Fingerprint: fmt.Sprintf("%016x", sum.Sum64()),
		}
		if err := writeConfig(configPath(path), cfg); err != nil {
			return opError("save", WriteError, err)
		}
	}

	l.modified = false
	l.stats.saves++
	l.logger.Debug("list saved", "path", path, "records", l.count, "bytes", l.count*uint64(l.record))
	return nil
}

// Load reads a file written by Save and adds each record as AddRecord would,
// sorted when cmp is non-nil. Records already in the list are kept.
//
// The whole file is checked before the first record is added, so a failed
// Load leaves the list as it was. A file whose size is not a multiple of
// RecordSize is ReadError.
func (l *List) Load(path string, cmp Comparator) error {
	data, done, err := l.readFile(path)
	if err != nil {
		return err
	}
	defer done()

	if len(data)%l.record != 0 {
		l.logger.Warn("corrupt list file", "path", path, "bytes", len(data), "record_size", l.record)
		return opError("load", ReadError, fmt.Errorf("file size %d is not a multiple of record size %d", len(data), l.record))
	}
	if l.options.PersistConfig {
		cfg, ok, err := readConfig(configPath(path))
		if err != nil {
			return opError("load", ReadError, err)
		}
		if ok {
			if err := cfg.verify(l.record, data); err != nil {
				l.logger.Warn("list file does not match its config", "path", path, "err", err)
				return opError("load", ReadError, err)
			}
		}
	}

	n := uint64(len(data) / l.record)
	if limit := l.options.MaxRecords; limit > 0 && l.count+n > limit {
		return opError("load", MemError, fmt.Errorf("%d records do not fit, %d of %d used", n, l.count, limit))
	}
	for off := 0; off < len(data); off += l.record {
		if err := l.addRecord("load", data[off:off+l.record], cmp); err != nil {
			return err
		}
	}

	l.stats.loads++
	l.logger.Debug("list loaded", "path", path, "records", n, "bytes", len(data))
	return nil
}

// readFile returns the content of path and a func that releases it. With
// UseMmap the content is a read-only shared mapping of the file.
func (l *List) readFile(path string) ([]byte, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, opError("load", OpenError, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, nil, opError("load", ReadError, err)
	}
	if fi.IsDir() {
		return nil, nil, opError("load", ReadError, errors.New("path is a directory"))
	}

	size := fi.Size()
	if !l.options.UseMmap || size == 0 {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, nil, opError("load", ReadError, err)
		}
		return data, func() {}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, opError("load", ReadError, fmt.Errorf("mmap: %w", err))
	}
	return data, func() { unix.Munmap(data) }, nil
}
