// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package sink provides Consumers that keep, fingerprint or persist the
// primes delivered by a sieve.Generator.
package sink

import (
	"io"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"leb.io/sieve"
)

// Set stores primes in a compressed 64-bit roaring bitmap.
type Set struct {
	bm *roaring64.Bitmap
}

func NewSet() *Set {
	return &Set{bm: roaring64.New()}
}

func (s *Set) Consume(p uint64) { s.bm.Add(p) }

func (s *Set) ConsumeSegment(low uint64, segment []byte) {
	sieve.ForEach(low, segment, s.bm.Add)
}

// Contains reports whether n was consumed.
func (s *Set) Contains(n uint64) bool { return s.bm.Contains(n) }

// Cardinality returns the number of primes consumed.
func (s *Set) Cardinality() uint64 { return s.bm.GetCardinality() }

// Rank returns the number of primes <= n.
func (s *Set) Rank(n uint64) uint64 { return s.bm.Rank(n) }

// WriteTo writes the bitmap in the portable roaring format.
func (s *Set) WriteTo(w io.Writer) (int64, error) { return s.bm.WriteTo(w) }

// ReadSet reads a Set written by WriteTo.
func ReadSet(r io.Reader) (*Set, error) {
	bm := roaring64.New()
	if _, err := bm.ReadFrom(r); err != nil {
		return nil, err
	}
	return &Set{bm: bm}, nil
}
