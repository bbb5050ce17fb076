// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

// Package sievetest checks sieve output against slow but obviously
// correct references: a plain sieve of Eratosthenes on a bitset and
// trial division.
package sievetest

import (
	"fmt"
	"math"
	"math/big"

	"github.com/willf/bitset"
)

// Pi holds the number of primes <= 10^k.
var Pi = map[uint64]uint64{
	10:             4,
	100:            25,
	1000:           168,
	10000:          1229,
	100000:         9592,
	1000000:        78498,
	10000000:       664579,
	100000000:      5761455,
	1000000000:     50847534,
	10000000000:    455052511,
	100000000000:   4118054813,
	1000000000000:  37607912018,
}

// IsPrime uses trial division by 2, 3 and 6k±1 below 2^32 and
// Baillie-PSW above, which has no known pseudoprime below 2^64.
func IsPrime(n uint64) bool {
	if n > math.MaxUint32 {
		return new(big.Int).SetUint64(n).ProbablyPrime(0)
	}
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0 || n%3 == 0:
		return false
	}
	for d := uint64(5); d <= n/d; d += 6 {
		if n%d == 0 || n%(d+2) == 0 {
			return false
		}
	}
	return true
}

func isqrt(n uint64) uint64 {
	r := min(uint64(math.Sqrt(float64(n))), math.MaxUint32)
	for r*r > n {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// SmallPrimes returns the primes <= n.
func SmallPrimes(n uint64) []uint64 {
	if n < 2 {
		return nil
	}
	// bit i set means i is composite
	b := bitset.New(uint(n + 1))
	for i := uint64(2); i*i <= n; i++ {
		if b.Test(uint(i)) {
			continue
		}
		for m := i * i; m <= n; m += i {
			b.Set(uint(m))
		}
	}
	var ps []uint64
	for i := uint64(2); i <= n; i++ {
		if !b.Test(uint(i)) {
			ps = append(ps, i)
		}
	}
	return ps
}

// Window returns the primes in [lo, hi]. small must hold every prime
// <= sqrt(hi).
func Window(lo, hi uint64, small []uint64) []uint64 {
	if lo > hi {
		return nil
	}
	// bit i set means lo+i is a candidate
	b := bitset.New(uint(hi - lo + 1)).Complement()
	for v := lo; v < 2 && v <= hi; v++ {
		b.Clear(uint(v - lo))
	}
	for _, p := range small {
		if p > hi/p {
			break
		}
		m := max(p*p, (lo+p-1)/p*p)
		for ; m <= hi; m += p {
			b.Clear(uint(m - lo))
		}
	}
	var ps []uint64
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		ps = append(ps, lo+uint64(i))
	}
	return ps
}

// Reference returns the primes in [start, stop].
func Reference(start, stop uint64) []uint64 {
	return Window(start, stop, SmallPrimes(isqrt(stop)))
}

// WindowSpan is the number of integers a Checker sieves at a time.
const WindowSpan = 1 << 20

// Checker compares a stream of primes with the reference one window at a
// time so long ranges can be checked in bounded memory. It records the
// first difference.
type Checker struct {
	start, stop uint64
	small       []uint64
	next        uint64 // start of the next window
	done        bool   // last window loaded
	want        []uint64
	i           int
	N           uint64 // primes checked
	err         error
}

func NewChecker(start, stop uint64) *Checker {
	return &Checker{start: start, stop: stop, next: start, small: SmallPrimes(isqrt(stop)), done: start > stop}
}

func (c *Checker) expect() (uint64, bool) {
	for c.i == len(c.want) {
		if c.done {
			return 0, false
		}
		hi := c.stop
		if c.stop-c.next >= WindowSpan {
			hi = c.next + WindowSpan - 1
		}
		c.want, c.i = Window(c.next, hi, c.small), 0
		if hi == c.stop {
			c.done = true
		} else {
			c.next = hi + 1
		}
	}
	return c.want[c.i], true
}

// Consume checks the next prime of the stream.
func (c *Checker) Consume(p uint64) {
	if c.err != nil {
		return
	}
	want, ok := c.expect()
	switch {
	case !ok:
		c.err = fmt.Errorf("sievetest: unexpected %d after the last prime of [%d, %d]", p, c.start, c.stop)
	case p != want:
		c.err = fmt.Errorf("sievetest: prime #%d is %d, want %d", c.N+1, p, want)
	default:
		c.i++
		c.N++
	}
}

// Err returns the first difference, including primes that never arrived.
func (c *Checker) Err() error {
	if c.err != nil {
		return c.err
	}
	if want, ok := c.expect(); ok {
		return fmt.Errorf("sievetest: missing %d after %d primes", want, c.N)
	}
	return nil
}

// Verify compares got with the primes in [start, stop].
func Verify(got []uint64, start, stop uint64) error {
	c := NewChecker(start, stop)
	for _, p := range got {
		c.Consume(p)
	}
	return c.Err()
}
