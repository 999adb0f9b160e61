package linklist

import "bytes"

// Comparator orders two records. It returns a negative number when a sorts
// before b, zero when they are equal and a positive number otherwise.
//
// AddRecord and Load call it as cmp(stored, new); FindRecord calls it as
// cmp(stored, match).
type Comparator func(a, b []byte) int

// CompareBytes orders records lexicographically byte by byte.
func CompareBytes(a, b []byte) int { return bytes.Compare(a, b) }

// CompareCString orders records as NUL-terminated strings, ignoring
// whatever follows the first zero byte.
func CompareCString(a, b []byte) int {
	return bytes.Compare(cstring(a), cstring(b))
}

func cstring(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}
