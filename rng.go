package qht

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// rng is the per-filter uniform bucket selector required by QHTc and
// dQHTc. It is exclusively owned by the filter instance that creates it —
// never a process-global source — so that two filters built independently
// make statistically independent eviction choices.
type rng struct {
	r *rand.Rand
}

// newRNG seeds a fresh rng from crypto/rand entropy.
func newRNG() *rng {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic(fmt.Sprintf("qht: failed to seed random source: %v", err))
	}
	seed1 := binary.LittleEndian.Uint64(seed[0:8])
	seed2 := binary.LittleEndian.Uint64(seed[8:16])

	return &rng{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// bucket returns a uniformly random bucket index in [0, n).
func (g *rng) bucket(n uint64) uint64 {
	return uint64(g.r.IntN(int(n)))
}
