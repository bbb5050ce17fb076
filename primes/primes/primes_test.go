// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leb.io/sieve"
	"leb.io/sieve/sink"
)

func TestParseNumber(t *testing.T) {
	for s, want := range map[string]uint64{
		"0":                    0,
		"1000":                 1000,
		"1e9":                  1000000000,
		"0x10":                 16,
		"18446744073709551615": 1<<64 - 1,
	} {
		got, err := parseNumber(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	for _, s := range []string{"", "-1", "1.5", "abc", "1e30"} {
		_, err := parseNumber(s)
		assert.Error(t, err, s)
	}
}

func TestTee(t *testing.T) {
	var a sieve.Collector
	d := sink.NewDigest(0)
	p := &progress{}
	g, err := sieve.New(sieve.Config{Stop: 100}, tee{&a, d, p})
	require.NoError(t, err)
	require.NoError(t, g.Run(context.Background()))
	assert.Len(t, a.Primes, 25)
	assert.Equal(t, uint64(25), d.N)
	assert.Equal(t, uint64(25), p.n.Load())
	assert.Equal(t, uint64(97), p.last.Load())
}

func TestSegmentTee(t *testing.T) {
	var c sieve.Counter
	p := &progress{}
	g, err := sieve.New(sieve.Config{Stop: 1000000}, segmentTee{&c, p})
	require.NoError(t, err)
	require.NoError(t, g.Run(context.Background()))
	assert.Equal(t, uint64(78498), c.N)
}

func TestConfigFlags(t *testing.T) {
	*wheelName = "210"
	*bitScan = "debruijn"
	defer func() { *wheelName, *bitScan = "30", "auto" }()
	cfg, err := config(5, 50)
	require.NoError(t, err)
	assert.Equal(t, sieve.Wheel210, cfg.Wheel)
	assert.Equal(t, sieve.BitScanDeBruijn, cfg.BitScan)
	assert.Equal(t, sieve.DefaultSieveSize, cfg.SieveSize)

	*wheelName = "60"
	_, err = config(5, 50)
	assert.ErrorIs(t, err, sieve.ErrWheel)
}
