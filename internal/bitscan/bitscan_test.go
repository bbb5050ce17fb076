// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package bitscan

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var offsets = [8]uint64{7, 11, 13, 17, 19, 23, 29, 31}

func TestBitValuesLayout(t *testing.T) {
	for i := 0; i < 64; i++ {
		assert.Equal(t, uint64(30*(i/8))+offsets[i%8], BitValues[i], "index %d", i)
	}
	assert.Zero(t, BitValues[64])
}

func TestBruijnAgreesWithBitValues(t *testing.T) {
	for i := 0; i < 64; i++ {
		w := uint64(1) << uint(i)
		require.Equal(t, i, Index(w))
		require.Equal(t, BitValues[i], BruijnBitValues[DebruijnIndex(w)], "bit %d", i)
	}
	seen := map[int]bool{}
	for i := 0; i < 64; i++ {
		seen[DebruijnIndex(uint64(1)<<uint(i))] = true
	}
	assert.Len(t, seen, 64)
}

func TestSentinel(t *testing.T) {
	assert.Equal(t, 64, Index(0))
	assert.Zero(t, FirstValue(0))
	assert.Zero(t, FirstValueDebruijn(0))
}

func TestStrategiesAgree(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100000; i++ {
		w := r.Uint64() & r.Uint64()
		require.Equal(t, FirstValue(w), FirstValueDebruijn(w), "w=%#x", w)
	}
}

// Draining a word lowest bit first yields its offsets in increasing
// order and stops on the sentinel.
func TestDrainWord(t *testing.T) {
	for _, s := range []Strategy{Hardware, DeBruijn} {
		f := s.Func()
		w := uint64(0x8000_0000_0000_0081)
		var got []uint64
		for {
			v := f(w)
			if v == 0 {
				break
			}
			got = append(got, v)
			w &= w - 1
		}
		assert.Equal(t, []uint64{7, 31, 241}, got, s.String())
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []Strategy{Auto, Hardware, DeBruijn} {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseStrategy("bsf")
	assert.Error(t, err)
	assert.NotEqual(t, Auto, Auto.Resolve())
	assert.Equal(t, DeBruijn, DeBruijn.Resolve())
}

func BenchmarkFirstValue(b *testing.B) {
	benchmarkDrain(b, FirstValue)
}

func BenchmarkFirstValueDebruijn(b *testing.B) {
	benchmarkDrain(b, FirstValueDebruijn)
}

func benchmarkDrain(b *testing.B, f func(uint64) uint64) {
	r := rand.New(rand.NewSource(1))
	words := make([]uint64, 1024)
	for i := range words {
		words[i] = r.Uint64() & r.Uint64() & r.Uint64()
	}
	b.ResetTimer()
	b.ReportAllocs()
	var sum uint64
	for i := 0; i < b.N; i++ {
		w := words[i%len(words)]
		for v := f(w); v != 0; v = f(w) {
			sum += v
			w &= w - 1
		}
	}
	_ = sum
}
