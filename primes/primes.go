// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package primes is a small convenience layer over package sieve.
package primes

import (
	"context"
	"errors"
	"math"

	"golang.org/x/sync/errgroup"

	"leb.io/sieve"
)

// Primes calls f with each prime in [start, stop] in increasing order.
func Primes(start, stop uint64, f func(p uint64)) error {
	g, err := sieve.New(sieve.Config{Start: start, Stop: stop}, sieve.ConsumerFunc(f))
	if err != nil {
		return err
	}
	return g.Run(context.Background())
}

// estimate returns an upper bound of the number of primes <= x,
// pi(x) < 1.25506 x / ln x for x > 1.
func estimate(x uint64) uint64 {
	if x < 17 {
		return 7
	}
	f := float64(x)
	return uint64(1.25506*f/math.Log(f)) + 1
}

// Slice returns the primes in [start, stop].
func Slice(start, stop uint64) ([]uint64, error) {
	var c sieve.Collector
	if stop >= start && stop-start < 1<<26 {
		c.Primes = make([]uint64, 0, estimate(stop)-min(estimate(stop), estimate(start)/2))
	}
	g, err := sieve.New(sieve.Config{Start: start, Stop: stop}, &c)
	if err != nil {
		return nil, err
	}
	if err := g.Run(context.Background()); err != nil {
		return nil, err
	}
	return c.Primes, nil
}

// Count returns the number of primes in [start, stop].
func Count(start, stop uint64) (uint64, error) {
	return CountParallel(context.Background(), sieve.Config{Start: start, Stop: stop}, 1)
}

// windows splits [start, stop] into at most n disjoint windows whose
// bounds, except the outer ones, are multiples of 30.
func windows(start, stop uint64, n int) [][2]uint64 {
	span := (stop-start)/uint64(n) + 1
	span = (span + 29) / 30 * 30
	var ws [][2]uint64
	for lo := start; ; {
		hi := stop
		if next := (lo/30)*30 + span; next > lo && next <= stop {
			hi = next - 1
		}
		ws = append(ws, [2]uint64{lo, hi})
		if hi == stop {
			return ws
		}
		lo = hi + 1
	}
}

// CountParallel counts the primes in [cfg.Start, cfg.Stop] with up to
// workers independent generators, each sieving its own window.
func CountParallel(ctx context.Context, cfg sieve.Config, workers int) (uint64, error) {
	if workers < 1 {
		return 0, errors.New("primes: workers must be >= 1")
	}
	if cfg.Start > cfg.Stop {
		// let sieve.New report it
		_, err := sieve.New(cfg, &sieve.Counter{})
		return 0, err
	}
	ws := windows(cfg.Start, cfg.Stop, workers)
	counts := make([]sieve.Counter, len(ws))
	gens := make([]*sieve.Generator, len(ws))
	for i, w := range ws {
		wcfg := cfg
		wcfg.Start, wcfg.Stop = w[0], w[1]
		g, err := sieve.New(wcfg, &counts[i])
		if err != nil {
			return 0, err
		}
		gens[i] = g
	}
	eg, ctx := errgroup.WithContext(ctx)
	for _, g := range gens {
		eg.Go(func() error {
			return g.Run(ctx)
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	var n uint64
	for _, c := range counts {
		n += c.N
	}
	return n, nil
}

// NextPrime returns the smallest prime >= n.
// It panics if there is no such prime <= sieve.MaxStop.
func NextPrime(n uint64) uint64 {
	span := uint64(1 << 10)
	for lo := n; lo <= sieve.MaxStop; span *= 2 {
		hi := sieve.MaxStop
		if sieve.MaxStop-lo >= span {
			hi = lo + span - 1
		}
		var p uint64
		ctx, cancel := context.WithCancel(context.Background())
		g, err := sieve.New(sieve.Config{Start: lo, Stop: hi, SieveSize: sieve.MinSieveSize}, sieve.ConsumerFunc(func(v uint64) {
			if p == 0 {
				p = v
				cancel()
			}
		}))
		if err != nil {
			cancel()
			panic(err)
		}
		err = g.Run(ctx)
		cancel()
		if p != 0 {
			return p
		}
		if err != nil {
			panic(err)
		}
		if hi == sieve.MaxStop {
			break
		}
		lo = hi + 1
	}
	panic("NextPrime")
}
