// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package sieve

import (
	"encoding/binary"
	"math/bits"

	"leb.io/sieve/internal/bitscan"
)

// Consumer receives primes in strictly increasing order, each exactly once.
type Consumer interface {
	Consume(p uint64)
}

// ConsumerFunc adapts a function to a Consumer.
type ConsumerFunc func(p uint64)

func (f ConsumerFunc) Consume(p uint64) { f(p) }

// SegmentConsumer receives whole sieved segments instead of single
// primes. Bit j of byte i of sieve set means low + 30*i + Offsets[j] is
// prime. len(sieve) is a multiple of 8, padding bytes are zero.
// Primes below 7 and pre-sieved primes still arrive through Consume.
type SegmentConsumer interface {
	Consumer
	ConsumeSegment(low uint64, sieve []byte)
}

// Counter counts primes, it counts whole segments with popcount.
type Counter struct {
	N uint64
}

func (c *Counter) Consume(p uint64) { c.N++ }

func (c *Counter) ConsumeSegment(low uint64, sieve []byte) {
	c.N += popcount(sieve)
}

// Collector appends every prime to Primes.
type Collector struct {
	Primes []uint64
}

func (c *Collector) Consume(p uint64) { c.Primes = append(c.Primes, p) }

// ForEach calls f for every prime in a segment handed to ConsumeSegment.
func ForEach(low uint64, sieve []byte, f func(p uint64)) {
	for i := 0; i+8 <= len(sieve); i += 8 {
		w := binary.LittleEndian.Uint64(sieve[i:])
		base := low + uint64(i)*30
		for w != 0 {
			f(base + bitscan.BitValues[bits.TrailingZeros64(w)])
			w &= w - 1
		}
	}
}

func popcount(sieve []byte) uint64 {
	var n int
	i := 0
	for ; i+8 <= len(sieve); i += 8 {
		n += bits.OnesCount64(binary.LittleEndian.Uint64(sieve[i:]))
	}
	for ; i < len(sieve); i++ {
		n += bits.OnesCount8(sieve[i])
	}
	return uint64(n)
}
