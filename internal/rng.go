package internal

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// SeededRNG returns a deterministic frand generator for seed.
func SeededRNG(seed int64) *frand.RNG {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, uint64(seed))
	return frand.NewCustom(key, 1024, 12)
}
