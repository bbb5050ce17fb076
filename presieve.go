// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package sieve

import (
	"sync"

	"leb.io/sieve/internal/wheel"
)

// The multiples of the primes 7..limit repeat every 7*11*...*limit bytes
// of the sieve array. A pattern with those primes crossed off is built
// once per limit and copied into each segment instead of sieving them.

var preSievePrimes = [...]uint64{7, 11, 13, 17, 19}

// pattern buffers are at least this long so small periods are copied in
// large chunks
const minPatternBytes = 8 << 10

type preSieve struct {
	limit   uint64
	period  uint64 // bytes
	pattern []byte // a whole number of periods
}

var preSieves [len(preSievePrimes)]struct {
	once sync.Once
	ps   *preSieve
}

func validPreSieveLimit(limit uint64) bool {
	for _, p := range preSievePrimes {
		if p == limit {
			return true
		}
	}
	return false
}

// getPreSieve returns the shared, read only pattern for limit.
func getPreSieve(limit uint64) *preSieve {
	for i, p := range preSievePrimes {
		if p == limit {
			e := &preSieves[i]
			e.once.Do(func() { e.ps = newPreSieve(limit) })
			return e.ps
		}
	}
	panic("getPreSieve")
}

func newPreSieve(limit uint64) *preSieve {
	period := uint64(1)
	for _, p := range preSievePrimes {
		if p <= limit {
			period *= p
		}
	}
	n := (minPatternBytes + period - 1) / period * period
	pattern := make([]byte, n)
	for i := range pattern {
		pattern[i] = 0xff
	}
	// byte n-1 ends at 30*(n-1) + 31
	top := 30*n + 1
	for _, p := range preSievePrimes {
		if p > limit {
			break
		}
		for m := p; m <= top; m += 2 * p {
			if b := wheel.BitIndex(m); b >= 0 {
				pattern[(m-7)/30] &^= 1 << uint(b)
			}
		}
	}
	return &preSieve{limit: limit, period: period, pattern: pattern}
}

// copy fills dst with the pattern of the segment starting at low.
func (ps *preSieve) copy(dst []byte, low uint64) {
	i := (low / 30) % ps.period
	for n := 0; n < len(dst); {
		n += copy(dst[n:], ps.pattern[i:])
		i = 0
	}
}
