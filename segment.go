// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package sieve

import (
	"encoding/binary"
	"math/bits"

	"leb.io/sieve/internal/wheel"
)

// unsetSmaller[r] keeps the bits whose offset is >= r,
// unsetLarger[r] keeps the bits whose offset is <= r.
var unsetSmaller, unsetLarger [37]uint8

func init() {
	for r := range unsetSmaller {
		for b, off := range wheel.Offsets {
			if off >= uint64(r) {
				unsetSmaller[r] |= 1 << uint(b)
			}
			if off <= uint64(r) {
				unsetLarger[r] |= 1 << uint(b)
			}
		}
	}
}

// segment is the bit packed sieve array of one generator. Byte i stands
// for the 8 integers low + 30*i + {7, 11, 13, 17, 19, 23, 29, 31}.
// A set bit is a candidate, a clear bit is composite.
type segment struct {
	buf   []byte // allocated once, len is a multiple of 8
	sieve []byte // buf[:n] for the current segment
	pre   *preSieve
}

func roundUp8(n int) int {
	return (n + 7) &^ 7
}

func newSegment(size int, pre *preSieve) *segment {
	buf := make([]byte, roundUp8(size))
	return &segment{buf: buf, sieve: buf[:size], pre: pre}
}

func (s *segment) size() int {
	return len(s.sieve)
}

// trim shrinks the segment to n bytes and zeroes the padding up to the
// next word boundary.
func (s *segment) trim(n int) {
	if n > len(s.buf) || n <= 0 {
		panic("segment.trim")
	}
	s.sieve = s.buf[:n]
	clear(s.buf[n:roundUp8(n)])
}

// reset sets every candidate bit of the segment starting at low, minus
// the multiples of the pre-sieved primes.
func (s *segment) reset(low uint64) {
	if s.pre != nil {
		s.pre.copy(s.sieve, low)
		return
	}
	for i := range s.sieve {
		s.sieve[i] = 0xff
	}
}

func (s *segment) clearBit(i uint64, mask uint8) {
	s.sieve[i] &= mask
}

// words returns the sieve padded to whole 64-bit words.
func (s *segment) words() []byte {
	return s.buf[:roundUp8(len(s.sieve))]
}

func (s *segment) word(i int) uint64 {
	return binary.LittleEndian.Uint64(s.buf[i*8:])
}

// scanLowestSetBit returns the lowest set bit of word i, 64 if none.
func (s *segment) scanLowestSetBit(i int) int {
	return bits.TrailingZeros64(s.word(i))
}
