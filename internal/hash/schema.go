package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Schema computes the xxHash64 of an ordered list of (name, level count) pairs.
//
// Each name is followed by a zero byte and its level count as a little-endian uint32,
// so ("ab", 1),("c", 2) and ("a", 1),("bc", 2) hash differently.
func Schema(names []string, levels []int) uint64 {
	d := xxhash.New()

	var buf [4]byte
	for i, name := range names {
		_, _ = d.WriteString(name)
		_, _ = d.Write([]byte{0})
		binary.LittleEndian.PutUint32(buf[:], uint32(levels[i]))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
