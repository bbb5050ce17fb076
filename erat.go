// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package sieve

import (
	"fmt"
	"math"

	"leb.io/sieve/internal/wheel"
)

// sievingPrime is the state a prime carries from one segment to the next.
type sievingPrime struct {
	multipleIndex uint64 // byte of the next multiple, relative to the current segment
	sievingPrime  uint64 // p / 30
	wheelIndex    uint32 // element of the next multiple
}

// erat is the segmented sieve of Eratosthenes over [start, stop].
// Segments must be sieved in order, the state of every sieving prime is
// only valid for the segment that follows the last one sieved.
type erat struct {
	start       uint64
	stop        uint64
	segmentLow  uint64
	segmentHigh uint64
	seg         *segment
	wheel       *wheel.Wheel
	primes      []sievingPrime
}

// byteRemainder returns n % 30 using the classes 7..36 instead of 0..29,
// so that n - byteRemainder(n) is the low end of the byte holding n.
func byteRemainder(n uint64) uint64 {
	if n < 7 {
		panic("byteRemainder")
	}
	return (n-7)%30 + 7
}

func checkedAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

// newErat requires 7 <= start <= stop.
func newErat(start, stop uint64, sieveSize int, pre *preSieve, w *wheel.Wheel) *erat {
	if start < 7 || start > stop {
		panic(fmt.Sprintf("newErat: start=%d, stop=%d", start, stop))
	}
	e := &erat{start: start, stop: stop, wheel: w}
	e.segmentLow = start - byteRemainder(start)
	// the last byte's bit for offset 31 lies at 30*size + 1,
	// the numbers up to +6 are divisible by 2, 3 or 5
	e.segmentHigh = min(checkedAdd(e.segmentLow, uint64(sieveSize)*30+6), stop)

	// a single segment only needs as many bytes as the range
	if e.segmentHigh >= stop {
		n := (stop-byteRemainder(stop)-e.segmentLow)/30 + 1
		sieveSize = min(sieveSize, roundUp8(int(n)))
	}
	e.seg = newSegment(sieveSize, pre)
	return e
}

func (e *erat) hasNextSegment() bool {
	return e.segmentLow < e.stop
}

// addSievingPrime starts crossing off the multiples of p from the first
// multiple >= start and >= p*p whose quotient is coprime to the wheel.
// It reports false if p has no such multiple <= stop.
func (e *erat) addSievingPrime(p uint64) bool {
	if !e.wheel.Coprime(p) {
		panic(fmt.Sprintf("addSievingPrime: %d is not coprime to %d", p, e.wheel.Modulo))
	}
	q := max(p, (e.start-1)/p+1)
	m := p * q
	if m > e.stop {
		return false
	}
	in := e.wheel.Init[q%e.wheel.Modulo]
	next := p * uint64(in.NextMultipleFactor)
	if next > e.stop-m {
		return false
	}
	m += next
	if m < e.segmentLow+7 {
		panic(fmt.Sprintf("addSievingPrime: multiple %d below segment %d", m, e.segmentLow))
	}
	e.primes = append(e.primes, sievingPrime{
		multipleIndex: (m - e.segmentLow - 7) / 30,
		sievingPrime:  p / 30,
		wheelIndex:    uint32(e.wheel.Offset(p) + int(in.WheelIndex)),
	})
	return true
}

// sieveSegment sieves the current segment and moves to the next one.
// It returns the low end and the sieved words of the segment, which stay
// valid until the next call.
func (e *erat) sieveSegment() (uint64, []byte) {
	low := e.segmentLow
	if e.segmentHigh < e.stop {
		e.preSieve()
		dist := uint64(e.seg.size()) * 30
		e.crossOff(low + dist)
		e.segmentLow += dist
		e.segmentHigh = min(checkedAdd(e.segmentHigh, dist), e.stop)
		return low, e.seg.words()
	}
	e.sieveLastSegment()
	return low, e.seg.words()
}

func (e *erat) sieveLastSegment() {
	rem := byteRemainder(e.stop)
	n := (e.stop-rem-e.segmentLow)/30 + 1
	e.seg.trim(int(n))
	e.preSieve()
	e.crossOff(0)
	e.seg.clearBit(n-1, unsetLarger[rem])
	e.segmentLow = e.stop
}

func (e *erat) preSieve() {
	e.seg.reset(e.segmentLow)
	if e.segmentLow <= e.start {
		e.seg.clearBit(0, unsetSmaller[byteRemainder(e.start)])
	}
}

// crossOff clears the multiples of all sieving primes in the current
// segment. Primes whose next multiple lies beyond stop are dropped when
// nextLow, the low end of the following segment, is not 0.
func (e *erat) crossOff(nextLow uint64) {
	sieve := e.seg.sieve
	size := uint64(len(sieve))
	elements := e.wheel.Elements
	keep := 0
	for _, sp := range e.primes {
		mi, wi, s := sp.multipleIndex, sp.wheelIndex, sp.sievingPrime
		for mi < size {
			el := &elements[wi]
			sieve[mi] &= el.UnsetBit
			mi += uint64(el.NextMultipleFactor)*s + uint64(el.Correct)
			wi = uint32(el.Next)
		}
		mi -= size
		if nextLow != 0 && (nextLow > e.stop || 30*mi+7 > e.stop-nextLow) {
			continue
		}
		e.primes[keep] = sievingPrime{multipleIndex: mi, sievingPrime: s, wheelIndex: wi}
		keep++
	}
	e.primes = e.primes[:keep]
}
