package game

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// deriveSeed maps the run seed and a stream label to an independent RNG
// seed. Separate streams keep the phase draws stable when an unrelated
// consumer (say, the modifier lottery) changes how much randomness it
// pulls.
func deriveSeed(base int64, stream string) int64 {
	var d xxhash.Digest
	d.Reset()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(base))
	d.Write(buf[:])
	d.WriteString(stream)
	return int64(d.Sum64())
}
