package bench_test

import (
    "database/sql"
    "math/rand"
    "os"
    "path/filepath"
    "testing"

    linklist "github.com/luhtfiimanal/go-linklist"
)

// prepareStores menyimpan 'total' record ke file list dan ke sqlite.
func prepareStores(b *testing.B, total int) (string, *sql.DB) {
    rows := randomRows(rand.New(rand.NewSource(42)), total)

    l := newList(b)
    db := openSQLite(b)
    for _, r := range rows {
        if err := l.AddRecord(encodeRow(r), nil); err != nil {
            b.Fatalf("list add: %v", err)
        }
        if _, err := db.Exec(`INSERT INTO tbl (id,a,b,c,d) VALUES (?,?,?,?,?)`, r.ID, r.A, r.B, r.C, r.D); err != nil {
            b.Fatalf("sqlite insert: %v", err)
        }
    }

    tmpDir, _ := os.MkdirTemp("", "listbench")
    b.Cleanup(func() { os.RemoveAll(tmpDir) })
    path := filepath.Join(tmpDir, "rows.data")
    if err := l.Save(path); err != nil {
        b.Fatalf("save: %v", err)
    }
    return path, db
}

// BenchmarkLoadAll membaca seluruh 10k record per iterasi.
func BenchmarkLoadAll(b *testing.B) {
    const total = 10000
    path, db := prepareStores(b, total)
    defer db.Close()

    for _, mmap := range []bool{false, true} {
        name := "linklist"
        if mmap {
            name = "linklist-mmap"
        }
        b.Run(name, func(bb *testing.B) {
            opts := linklist.DefaultOptions()
            opts.RecordSize = recordSize
            opts.UseMmap = mmap
            for i := 0; i < bb.N; i++ {
                l, _ := linklist.NewWithOptions(opts)
                if err := l.Load(path, nil); err != nil {
                    bb.Fatalf("load: %v", err)
                }
                if l.Count() != total {
                    bb.Fatalf("loaded %d records", l.Count())
                }
            }
        })
    }

    b.Run("sqlite", func(bb *testing.B) {
        for i := 0; i < bb.N; i++ {
            q, err := db.Query(`SELECT a, b, c, d FROM tbl ORDER BY id`)
            if err != nil {
                bb.Fatalf("query: %v", err)
            }
            n := 0
            for q.Next() {
                var r testRow
                if err := q.Scan(&r.A, &r.B, &r.C, &r.D); err != nil {
                    bb.Fatalf("scan: %v", err)
                }
                n++
            }
            q.Close()
            if n != total {
                bb.Fatalf("read %d rows", n)
            }
        }
    })
}

// BenchmarkFindNth melompat ke record acak dari head.
func BenchmarkFindNth(b *testing.B) {
    const total = 10000
    path, db := prepareStores(b, total)
    defer db.Close()

    l := newList(b)
    if err := l.Load(path, nil); err != nil {
        b.Fatalf("load: %v", err)
    }
    indexRand := rand.New(rand.NewSource(42))

    b.Run("linklist", func(bb *testing.B) {
        for i := 0; i < bb.N; i++ {
            skip := uint64(indexRand.Intn(total-1) + 1)
            if _, err := l.FindNthRecord(skip); err != nil {
                bb.Fatalf("find nth %d: %v", skip, err)
            }
        }
    })

    b.Run("sqlite", func(bb *testing.B) {
        for i := 0; i < bb.N; i++ {
            id := int64(indexRand.Intn(total-1) + 2)
            row := db.QueryRow(`SELECT id FROM tbl WHERE id=?`, id)
            var tmp int64
            if err := row.Scan(&tmp); err != nil {
                bb.Fatalf("sqlite read: %v", err)
            }
        }
    })
}
