// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Primes prints, counts, fingerprints or saves the primes in a range.
//
//	primes [flags] start [stop]
//
// Without stop it runs up to the largest supported number.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"
	"sync/atomic"
	"time"

	"leb.io/hrff"

	"leb.io/sieve"
	"leb.io/sieve/internal/siginfo"
	"leb.io/sieve/internal/sievetest"
	"leb.io/sieve/primes"
	"leb.io/sieve/sink"
)

var count = flag.Bool("c", false, "count only, don't print")
var workers = flag.Int("p", 1, "workers used for counting")
var sieveKiB = flag.Int("s", sieve.DefaultSieveSize>>10, "sieve size in KiB, power of 2")
var preSieve = flag.Uint64("ps", sieve.DefaultPreSieveLimit, "pre-sieve limit {7, 11, 13, 17, 19}")
var wheelName = flag.String("w", "30", "wheel {30, 210}")
var bitScan = flag.String("bs", "auto", "bit scan {auto, hw, debruijn}")
var output = flag.String("o", "", "write primes to this file, 8 little-endian bytes each")
var compression = flag.String("z", "none", "compression of -o {none, zstd, lz4}")
var sum = flag.Bool("sum", false, "print a murmur3 digest of the primes")
var verify = flag.Bool("verify", false, "check the primes against a reference sieve")
var verbose = flag.Bool("v", false, "debug logging")

var cp = flag.String("cp", "", "write cpu profile to file")
var mp = flag.String("mp", "", "write memory profile to this file")

func hu(v uint64, u string) hrff.Int64 {
	return hrff.Int64{V: int64(v), U: u}
}

// parseNumber accepts integers and exact floats such as 1e9.
func parseNumber(s string) (uint64, error) {
	if n, err := strconv.ParseUint(s, 0, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f >= math.MaxUint64 || f != math.Trunc(f) {
		return 0, fmt.Errorf("bad number %q", s)
	}
	return uint64(f), nil
}

// tee hands every prime to several consumers.
type tee []sieve.Consumer

func (t tee) Consume(p uint64) {
	for _, c := range t {
		c.Consume(p)
	}
}

// progress lets the signal handler see how far the run got.
type progress struct {
	last atomic.Uint64
	n    atomic.Uint64
}

func (p *progress) Consume(v uint64) {
	p.last.Store(v)
	p.n.Add(1)
}

func (p *progress) ConsumeSegment(low uint64, segment []byte) {
	p.last.Store(low)
}

func config(start, stop uint64) (sieve.Config, error) {
	w, err := sieve.ParseWheel(*wheelName)
	if err != nil {
		return sieve.Config{}, err
	}
	bs, err := sieve.ParseBitScan(*bitScan)
	if err != nil {
		return sieve.Config{}, err
	}
	cfg := sieve.Config{
		Start:         start,
		Stop:          stop,
		SieveSize:     *sieveKiB << 10,
		PreSieveLimit: *preSieve,
		Wheel:         w,
		BitScan:       bs,
	}
	if *verbose {
		cfg.Logger = sieve.NewLogger(slog.LevelDebug)
	}
	return cfg, nil
}

func countOnly(ctx context.Context, cfg sieve.Config) error {
	begin := time.Now()
	var n uint64
	var err error
	if *workers > 1 {
		n, err = primes.CountParallel(ctx, cfg, *workers)
	} else {
		var c sieve.Counter
		p := &progress{}
		stop := siginfo.SetHandler(func() {
			log.Printf("at %d", p.last.Load())
		})
		defer stop()
		var g *sieve.Generator
		g, err = sieve.New(cfg, segmentTee{&c, p})
		if err == nil {
			err = g.Run(ctx)
		}
		n = c.N
	}
	if err != nil {
		return err
	}
	d := time.Since(begin)
	fmt.Printf("%d primes in [%d, %d], %v, %h\n", n, cfg.Start, cfg.Stop, d,
		hrff.Float64{V: float64(n) / d.Seconds(), U: "primes/sec"})
	return nil
}

// segmentTee keeps counting on the popcount path.
type segmentTee struct {
	c *sieve.Counter
	p *progress
}

func (s segmentTee) Consume(v uint64) {
	s.c.Consume(v)
	s.p.Consume(v)
}

func (s segmentTee) ConsumeSegment(low uint64, segment []byte) {
	s.c.ConsumeSegment(low, segment)
	s.p.ConsumeSegment(low, segment)
}

func list(ctx context.Context, cfg sieve.Config) error {
	var cs tee
	var out *bufio.Writer
	if *output == "" && !*sum && !*verify {
		out = bufio.NewWriterSize(os.Stdout, 64<<10)
		defer out.Flush()
		var buf []byte
		cs = append(cs, sieve.ConsumerFunc(func(p uint64) {
			buf = strconv.AppendUint(buf[:0], p, 10)
			buf = append(buf, '\n')
			out.Write(buf)
		}))
	}

	var w *sink.Writer
	if *output != "" {
		comp, err := sink.ParseCompression(*compression)
		if err != nil {
			return err
		}
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer f.Close()
		if w, err = sink.NewWriter(f, comp); err != nil {
			return err
		}
		cs = append(cs, w)
	}
	var d *sink.Digest
	if *sum {
		d = sink.NewDigest(0)
		cs = append(cs, d)
	}
	var chk *sievetest.Checker
	if *verify {
		chk = sievetest.NewChecker(cfg.Start, cfg.Stop)
		cs = append(cs, chk)
	}
	p := &progress{}
	cs = append(cs, p)
	stop := siginfo.SetHandler(func() {
		log.Printf("%h primes, at %d", hu(p.n.Load(), ""), p.last.Load())
	})
	defer stop()

	begin := time.Now()
	g, err := sieve.New(cfg, cs)
	if err != nil {
		return err
	}
	if err := g.Run(ctx); err != nil {
		return err
	}
	el := time.Since(begin)

	if w != nil {
		if err := w.Close(); err != nil {
			return err
		}
		fi, err := os.Stat(*output)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %d primes to %s, %h\n", w.N, *output, hrff.Int64{V: fi.Size(), U: "B"})
	}
	if d != nil {
		fmt.Printf("%d primes, murmur3 %#016x\n", d.N, d.Sum64())
	}
	if chk != nil {
		if err := chk.Err(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "verified %d primes\n", chk.N)
	}
	if *verbose {
		c := g.Counters()
		fmt.Fprintf(os.Stderr, "%v, %h, %d segments, %h sieved, %d sieving primes\n", el,
			hu(c.Primes, "primes"), c.Segments, hu(c.Bytes, "B"), c.SievingPrimes)
	}
	return nil
}

func run() error {
	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		flag.Usage()
		os.Exit(2)
	}
	start, err := parseNumber(args[0])
	if err != nil {
		return err
	}
	stop := sieve.MaxStop
	if len(args) > 1 {
		if stop, err = parseNumber(args[1]); err != nil {
			return err
		}
	}
	cfg, err := config(start, stop)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if *count {
		return countOnly(ctx, cfg)
	}
	return list(ctx, cfg)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: primes [flags] start [stop]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *cp != "" {
		f, err := os.Create(*cp)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	err := run()
	if *mp != "" {
		f, err := os.Create(*mp)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
	if err != nil {
		pprof.StopCPUProfile()
		log.Fatal(err)
	}
}
