// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package sieve

import (
	"encoding/binary"
	"math/bits"

	"leb.io/sieve/internal/bitscan"
)

// Each word of a sieved segment is drained lowest bit first. An empty
// word maps to the 0 sentinel of the value tables, which ends the loop.

func extractHardware(low uint64, sieve []byte, c Consumer) uint64 {
	var n uint64
	for i := 0; i < len(sieve); i += 8 {
		w := binary.LittleEndian.Uint64(sieve[i:])
		base := low + uint64(i)*30
		for {
			v := bitscan.BitValues[bits.TrailingZeros64(w)]
			if v == 0 {
				break
			}
			c.Consume(base + v)
			n++
			w &= w - 1
		}
	}
	return n
}

func extractDebruijn(low uint64, sieve []byte, c Consumer) uint64 {
	var n uint64
	for i := 0; i < len(sieve); i += 8 {
		w := binary.LittleEndian.Uint64(sieve[i:])
		base := low + uint64(i)*30
		for {
			v := bitscan.FirstValueDebruijn(w)
			if v == 0 {
				break
			}
			c.Consume(base + v)
			n++
			w &= w - 1
		}
	}
	return n
}
