// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package sieve implements a segmented sieve of Eratosthenes.
//
// The sieve array is bit packed, one byte stands for the 8 integers of
// 30 consecutive ones that are coprime to 2, 3 and 5. Multiples of the
// sieving primes are crossed off with a wheel (mod 30 or mod 210) so
// multiples of the wheel's factors are never visited, and the smallest
// primes are removed by copying a pre-sieved pattern.
//
// The primes up to sqrt(stop) that do the sieving are themselves
// generated by a Generator over [PreSieveLimit+1, sqrt(stop)] whose
// output feeds the outer Generator. This recursion ends once sqrt(stop)
// is at most the pre-sieve limit.
//
//	var c sieve.Counter
//	g, err := sieve.New(sieve.Config{Stop: 1e9}, &c)
//	...
//	err = g.Run(ctx)
//	fmt.Println(c.N) // 50847534
package sieve

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"leb.io/sieve/internal/bitscan"
	"leb.io/sieve/internal/wheel"
)

const (
	MinSieveSize       = 1 << 10
	MaxSieveSize       = 8 << 20
	DefaultSieveSize   = 32 << 10
	BootstrapSieveSize = 16 << 10 // sieve size of the generators producing sieving primes

	DefaultPreSieveLimit = 19

	// MaxStop leaves room above stop so no multiple or segment bound
	// computed by the sieve overflows.
	MaxStop uint64 = 1<<64 - 1<<33
)

// Wheel selects the wheel used to walk the multiples of a sieving prime.
type Wheel int

const (
	DefaultWheel Wheel = 0 // Wheel30
	Wheel30      Wheel = 30
	Wheel210     Wheel = 210
)

func (w Wheel) String() string {
	if w == DefaultWheel {
		w = Wheel30
	}
	return fmt.Sprintf("wheel%d", int(w))
}

func (w Wheel) tables() *wheel.Wheel {
	switch w {
	case DefaultWheel, Wheel30:
		return wheel.Wheel30
	case Wheel210:
		return wheel.Wheel210
	}
	return nil
}

// ParseWheel accepts "30", "210", "wheel30" and "wheel210".
func ParseWheel(s string) (Wheel, error) {
	switch s {
	case "", "30", "wheel30":
		return Wheel30, nil
	case "210", "wheel210":
		return Wheel210, nil
	}
	return DefaultWheel, configError("wheel", s, ErrWheel)
}

// BitScan selects how set bits are turned back into primes.
type BitScan = bitscan.Strategy

const (
	BitScanAuto     = bitscan.Auto
	BitScanHardware = bitscan.Hardware
	BitScanDeBruijn = bitscan.DeBruijn
)

// ParseBitScan accepts "auto", "hw" and "debruijn".
func ParseBitScan(s string) (BitScan, error) {
	return bitscan.ParseStrategy(s)
}

// Config describes one run. Zero values select the defaults.
type Config struct {
	Start         uint64       // first number of the range
	Stop          uint64       // last number of the range, at most MaxStop
	SieveSize     int          // bytes, power of 2 in [MinSieveSize, MaxSieveSize]
	PreSieveLimit uint64       // largest pre-sieved prime, 7, 11, 13, 17 or 19
	Wheel         Wheel        // wheel used for crossing off
	BitScan       BitScan      // bit scan used for extraction
	Logger        *slog.Logger // nil discards
}

func (c *Config) setDefaults() {
	if c.SieveSize == 0 {
		c.SieveSize = DefaultSieveSize
	}
	if c.PreSieveLimit == 0 {
		c.PreSieveLimit = DefaultPreSieveLimit
	}
	if c.Wheel == DefaultWheel {
		c.Wheel = Wheel30
	}
	if c.Logger == nil {
		c.Logger = nopLogger
	}
}

func (c *Config) validate() error {
	switch {
	case c.SieveSize < MinSieveSize || c.SieveSize > MaxSieveSize || c.SieveSize&(c.SieveSize-1) != 0:
		return configError("SieveSize", c.SieveSize, ErrSieveSize)
	case !validPreSieveLimit(c.PreSieveLimit):
		return configError("PreSieveLimit", c.PreSieveLimit, ErrPreSieveLimit)
	case c.Wheel.tables() == nil:
		return configError("Wheel", int(c.Wheel), ErrWheel)
	case c.Stop > MaxStop:
		return configError("Stop", c.Stop, ErrStopTooLarge)
	case c.Start > c.Stop:
		return configError("Start", c.Start, ErrStartAfterStop)
	}
	if _, err := bitscan.ParseStrategy(c.BitScan.String()); err != nil {
		return configError("BitScan", int(c.BitScan), err)
	}
	return nil
}

// Counters. All public, read them with Generator.Counters after Run.
type Counters struct {
	Segments        int    // segments sieved
	SievingPrimes   int    // primes that crossed off multiples in the range
	BootstrapPrimes int    // primes delivered by the inner generator
	Primes          uint64 // primes delivered to the consumer
	Bytes           uint64 // bytes of sieve array sieved
	Depth           int    // number of nested generators
}

// Generator sieves one range and delivers its primes to a Consumer.
// A Generator runs once and is not safe for concurrent use. Independent
// Generators share only read only tables and may run in parallel.
type Generator struct {
	Config
	counters Counters
	sink     Consumer
	segments SegmentConsumer // sink, if it takes whole segments
	erat     *erat           // nil if the range has no number >= 7
	inner    *Generator      // produces the sieving primes of erat
	extract  func(low uint64, sieve []byte, c Consumer) uint64
	ctx      context.Context
	err      error // first error, sticky across levels
	ran      bool

	onBootstrap func(p uint64) // called for every prime from inner
}

// New validates cfg and builds a Generator that delivers the primes in
// [cfg.Start, cfg.Stop] to sink in increasing order.
func New(cfg Config, sink Consumer) (*Generator, error) {
	if sink == nil {
		panic("sieve.New: nil Consumer")
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newGenerator(cfg, sink), nil
}

func newGenerator(cfg Config, sink Consumer) *Generator {
	g := &Generator{Config: cfg, sink: sink}
	g.segments, _ = sink.(SegmentConsumer)
	if cfg.BitScan.Resolve() == bitscan.Hardware {
		g.extract = extractHardware
	} else {
		g.extract = extractDebruijn
	}
	if cfg.Stop < 7 {
		return g
	}
	g.erat = newErat(max(cfg.Start, 7), cfg.Stop, cfg.SieveSize, getPreSieve(cfg.PreSieveLimit), cfg.Wheel.tables())

	sqrt := isqrt(cfg.Stop)
	if sqrt <= cfg.PreSieveLimit {
		return g
	}
	if sqrt > math.MaxUint32 {
		panic(fmt.Sprintf("newGenerator: sqrt(%d) = %d", cfg.Stop, sqrt))
	}
	icfg := cfg
	icfg.Start = cfg.PreSieveLimit + 1
	icfg.Stop = sqrt
	icfg.SieveSize = min(BootstrapSieveSize, cfg.SieveSize)
	g.inner = newGenerator(icfg, ConsumerFunc(g.addSievingPrime))
	g.counters.Depth = g.inner.counters.Depth + 1
	return g
}

// Run sieves the whole range. It returns ctx.Err() if ctx is canceled,
// the context is checked between segments.
func (g *Generator) Run(ctx context.Context) error {
	if g.ran {
		return ErrAlreadyRun
	}
	g.ran = true
	g.Logger.Debug("sieve start",
		"start", g.Start, "stop", g.Stop, "sieveSize", g.SieveSize,
		"preSieveLimit", g.PreSieveLimit, "wheel", g.Wheel.String(),
		"bitScan", g.BitScan.Resolve().String(), "depth", g.counters.Depth)
	err := g.run(ctx)
	g.Logger.Debug("sieve done",
		"primes", g.counters.Primes, "segments", g.counters.Segments, "sievingPrimes", g.counters.SievingPrimes,
		"bytes", g.counters.Bytes, "err", err)
	return err
}

// Counters returns a copy of the counters.
func (g *Generator) Counters() Counters {
	return g.counters
}

func (g *Generator) run(ctx context.Context) error {
	g.ctx = ctx
	g.smallPrimes()
	if g.erat == nil {
		return nil
	}
	if g.inner != nil {
		if err := g.inner.run(ctx); err != nil {
			return err
		}
		if g.err != nil {
			return g.err
		}
	}
	for g.erat.hasNextSegment() {
		if err := g.sieveNext(); err != nil {
			return err
		}
	}
	return nil
}

// smallPrimes delivers 2, 3, 5 and the pre-sieved primes, none of them
// survive in the sieve array.
func (g *Generator) smallPrimes() {
	for _, p := range [...]uint64{2, 3, 5} {
		g.emitSmall(p)
	}
	for _, p := range preSievePrimes {
		if p > g.PreSieveLimit {
			break
		}
		g.emitSmall(p)
	}
}

func (g *Generator) emitSmall(p uint64) {
	if p >= g.Start && p <= g.Stop {
		g.sink.Consume(p)
		g.counters.Primes++
	}
}

func (g *Generator) sieveNext() error {
	if err := g.ctx.Err(); err != nil {
		return err
	}
	low, sieve := g.erat.sieveSegment()
	g.counters.Segments++
	g.counters.Bytes += uint64(g.erat.seg.size())
	if g.segments != nil {
		g.segments.ConsumeSegment(low, sieve)
		g.counters.Primes += popcount(sieve)
		return nil
	}
	g.counters.Primes += g.extract(low, sieve, g.sink)
	return nil
}

// addSievingPrime is the sink of the inner generator. The segments
// below p*p need no multiple of p, they are sieved before p is added.
func (g *Generator) addSievingPrime(p uint64) {
	if g.err != nil {
		return
	}
	g.counters.BootstrapPrimes++
	if g.onBootstrap != nil {
		g.onBootstrap(p)
	}
	sq := p * p
	for g.erat.hasNextSegment() && g.erat.segmentHigh < sq {
		if err := g.sieveNext(); err != nil {
			g.err = err
			return
		}
	}
	if g.erat.addSievingPrime(p) {
		g.counters.SievingPrimes++
	}
}

// isqrt returns floor(sqrt(n)).
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	r = min(r, math.MaxUint32)
	for r*r > n {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}
	return r
}
