package linklist

// Stats menyimpan statistik pencarian dan mutasi.
// HitRatio dalam persentase (0-100).
type Stats struct {
	Hits     uint64 // FindRecord / FindNthRecord yang berhasil
	Misses   uint64 // pencarian yang berakhir NotFound
	HitRatio float64
	Adds     uint64 // record yang ditambahkan (add, insert, load)
	Deletes  uint64 // record yang dihapus
	Saves    uint64
	Loads    uint64
}

type counters struct {
	hits, misses  uint64
	adds, deletes uint64
	saves, loads  uint64
}

// GetStats mengambil snapshot statistik.
func (l *List) GetStats() Stats {
	c := l.stats
	total := c.hits + c.misses
	ratio := 0.0
	if total > 0 {
		ratio = float64(c.hits) / float64(total) * 100.0
	}
	return Stats{
		Hits:     c.hits,
		Misses:   c.misses,
		HitRatio: ratio,
		Adds:     c.adds,
		Deletes:  c.deletes,
		Saves:    c.saves,
		Loads:    c.loads,
	}
}

// ResetStats mengatur ulang semua penghitung.
func (l *List) ResetStats() {
	l.stats = counters{}
}
