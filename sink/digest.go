// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package sink

import (
	"encoding/binary"
	"hash"

	"github.com/spaolacci/murmur3"
)

// Digest fingerprints a stream of primes with 64-bit murmur3 over the
// little-endian encoding of each prime. Equal streams have equal sums.
type Digest struct {
	h   hash.Hash64
	buf [8 << 10]byte
	i   int
	N   uint64 // primes consumed
}

func NewDigest(seed uint32) *Digest {
	return &Digest{h: murmur3.New64WithSeed(seed)}
}

func (d *Digest) Consume(p uint64) {
	if d.i == len(d.buf) {
		d.flush()
	}
	binary.LittleEndian.PutUint64(d.buf[d.i:], p)
	d.i += 8
	d.N++
}

func (d *Digest) flush() {
	d.h.Write(d.buf[:d.i])
	d.i = 0
}

// Sum64 returns the fingerprint of the primes consumed so far.
func (d *Digest) Sum64() uint64 {
	d.flush()
	return d.h.Sum64()
}
