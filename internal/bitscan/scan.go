// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package bitscan

import (
	"fmt"
	"math/bits"
)

// Strategy selects how the lowest set bit of a word is found.
type Strategy int

const (
	Auto     Strategy = iota // Hardware if the CPU has a trailing zero count instruction
	Hardware                 // math/bits.TrailingZeros64
	DeBruijn                 // multiply and shift, no CPU support needed
)

func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Hardware:
		return "hw"
	case DeBruijn:
		return "debruijn"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy is the inverse of String.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "auto", "":
		return Auto, nil
	case "hw", "hardware":
		return Hardware, nil
	case "debruijn":
		return DeBruijn, nil
	}
	return Auto, fmt.Errorf("bitscan: unknown strategy %q", s)
}

// Resolve turns Auto into the strategy used on this CPU.
func (s Strategy) Resolve() Strategy {
	if s != Auto {
		return s
	}
	if hasTrailingZeros {
		return Hardware
	}
	return DeBruijn
}

// Index returns the index of the lowest set bit of w, 64 if w is 0.
func Index(w uint64) int {
	return bits.TrailingZeros64(w)
}

// DebruijnIndex returns the de Bruijn table index of the lowest set bit
// of w. The result is meaningless for w == 0.
func DebruijnIndex(w uint64) int {
	return int(((w ^ (w - 1)) * Debruijn64) >> 58)
}

// FirstValue returns the offset of the lowest set bit of w, or 0 when w
// has no bit set.
func FirstValue(w uint64) uint64 {
	return BitValues[bits.TrailingZeros64(w)]
}

// FirstValueDebruijn is FirstValue without a hardware bit scan.
func FirstValueDebruijn(w uint64) uint64 {
	if w == 0 {
		return BitValues[64]
	}
	return BruijnBitValues[DebruijnIndex(w)]
}

// Func returns the FirstValue implementation for s.
func (s Strategy) Func() func(uint64) uint64 {
	if s.Resolve() == Hardware {
		return FirstValue
	}
	return FirstValueDebruijn
}
