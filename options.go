package linklist

import (
	"io/fs"
	"log/slog"
)

// Options menyediakan opsi konfigurasi untuk List.
//
//   - RecordSize:     ukuran setiap record dalam byte, wajib >0
//   - MaxRecords:     batas jumlah record (0 = tidak terbatas)
//   - BufferPoolSize: aktifkan pool buffer record (0 = nonaktif)
//   - UseMmap:        Load membaca file lewat memory-mapping
//   - SyncOnSave:     Save memanggil fsync sebelum file ditutup
//   - PersistConfig:  Save menulis <path>.config, Load memverifikasinya
//
// Lihat DefaultOptions() untuk nilai bawaan.
type Options struct {
	RecordSize     int         // Ukuran payload setiap record (byte)
	MaxRecords     uint64      // Batas kapasitas; penuh = MemError
	BufferPoolSize int         // Reuse buffer record yang dilepas
	UseMmap        bool        // Baca file data dengan unix.Mmap
	SyncOnSave     bool        // unix.Fsync setelah menulis
	PersistConfig  bool        // Tulis/verifikasi sidecar .config
	FileMode       fs.FileMode // Permission file hasil Save (0 = 0o666)
	Logger         *slog.Logger
}

// DefaultOptions mengembalikan konfigurasi default yang digunakan New.
func DefaultOptions() Options {
	return Options{
		RecordSize:     32,
		MaxRecords:     0,
		BufferPoolSize: 64,
		UseMmap:        false,
		SyncOnSave:     false,
		PersistConfig:  false,
		FileMode:       0o666,
	}
}
