// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package sieve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leb.io/sieve/internal/sievetest"
)

type segmentCollector struct {
	Collector
	segments int
	t        *testing.T
}

func (s *segmentCollector) ConsumeSegment(low uint64, sieve []byte) {
	require.Zero(s.t, low%30)
	require.Zero(s.t, len(sieve)%8)
	s.segments++
	ForEach(low, sieve, s.Consume)
}

func TestSegmentConsumer(t *testing.T) {
	for _, r := range [][2]uint64{{0, 30}, {0, 1000000}, {123456, 654321}} {
		sc := &segmentCollector{t: t}
		g, err := New(Config{Start: r[0], Stop: r[1], SieveSize: MinSieveSize}, sc)
		require.NoError(t, err)
		require.NoError(t, g.Run(context.Background()))
		// the small primes arrive through Consume first, then the segments
		require.NoError(t, sievetest.Verify(sc.Primes, r[0], r[1]), "range %v", r)
		assert.Equal(t, g.Counters().Segments, sc.segments)
		assert.Equal(t, uint64(len(sc.Primes)), g.Counters().Primes)
	}
}

func TestForEach(t *testing.T) {
	sieve := []byte{0x81, 0, 0, 0, 0, 0, 0, 0x80, 0x01, 0, 0, 0, 0, 0, 0, 0}
	var got []uint64
	ForEach(300, sieve, func(p uint64) { got = append(got, p) })
	assert.Equal(t, []uint64{307, 331, 541, 547}, got)
	assert.Equal(t, uint64(4), popcount(sieve))
	assert.Equal(t, uint64(3), popcount(sieve[:8]))
}

func TestCounterAgreesWithCollector(t *testing.T) {
	for _, stop := range []uint64{6, 7, 100, 1 << 20} {
		var c Counter
		g, err := New(Config{Stop: stop}, &c)
		require.NoError(t, err)
		require.NoError(t, g.Run(context.Background()))
		assert.Equal(t, uint64(len(collect(t, Config{Stop: stop}))), c.N, "stop %d", stop)
	}
}
