// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package wheel holds the wheel factorization tables used to walk the
// multiples of a sieving prime without division.
//
// The sieve array maps the 8 bits of a byte to the integers
// 30*i + {7, 11, 13, 17, 19, 23, 29, 31}. A wheel of modulus M enumerates
// the quotients q coprime to M, so p*q visits only the multiples of p
// that are not divisible by the wheel's factors. Each Element is one
// state of that walk.
package wheel

import "fmt"

// unset masks, bit i corresponds to Offsets[i]
const (
	bit0 uint8 = 0xfe
	bit1 uint8 = 0xfd
	bit2 uint8 = 0xfb
	bit3 uint8 = 0xf7
	bit4 uint8 = 0xef
	bit5 uint8 = 0xdf
	bit6 uint8 = 0xbf
	bit7 uint8 = 0x7f
)

// Offsets are the integers represented by bits 0..7 of byte 0.
var Offsets = [8]uint64{7, 11, 13, 17, 19, 23, 29, 31}

// Init aligns a quotient onto the wheel.
type Init struct {
	NextMultipleFactor uint8 // distance to the next quotient coprime to the modulus
	WheelIndex         uint8 // index of that quotient among the coprime residues
}

// Element is one state transition of a sieving prime.
// Crossing off the current multiple is sieve[i] &= UnsetBit, the next
// multiple lives NextMultipleFactor*(p/30) + Correct bytes further on
// and its state is Elements[Next].
type Element struct {
	UnsetBit           uint8
	NextMultipleFactor uint8
	Correct            uint8
	Next               uint16
}

// Wheel describes one wheel modulus.
type Wheel struct {
	Modulo   uint64
	Size     int // number of residues coprime to Modulo
	Init     []Init
	Elements []Element
	Name     string
}

// Wheel30 skips multiples of 2, 3 and 5.
var Wheel30 = &Wheel{
	Modulo:   30,
	Size:     8,
	Init:     wheel30Init[:],
	Elements: wheel30[:],
	Name:     "wheel30",
}

// Wheel210 skips multiples of 2, 3, 5 and 7.
var Wheel210 = &Wheel{
	Modulo:   210,
	Size:     48,
	Init:     wheel210Init[:],
	Elements: wheel210[:],
	Name:     "wheel210",
}

// row group of a prime by p % 30, -1 for residues not coprime to 30
var group = [30]int8{
	-1, 7, -1, -1, -1, -1, -1, 0, -1, -1,
	-1, 1, -1, 2, -1, -1, -1, 3, -1, 4,
	-1, -1, -1, 5, -1, -1, -1, -1, -1, 6,
}

// Offset returns the index of the first element of p's row group.
// It panics if p shares a factor with 30.
func (w *Wheel) Offset(p uint64) int {
	g := group[p%30]
	if g < 0 {
		panic(fmt.Sprintf("wheel.Offset: %d is not coprime to 30", p))
	}
	return int(g) * w.Size
}

// Coprime reports whether n is coprime to the wheel's modulus.
func (w *Wheel) Coprime(n uint64) bool {
	return w.Init[n%w.Modulo].NextMultipleFactor == 0
}

// BitIndex returns the bit that represents n in its byte, or -1 if n
// is divisible by 2, 3 or 5.
func BitIndex(n uint64) int {
	g := group[n%30]
	if g < 0 {
		return -1
	}
	return int(g)
}

func (w *Wheel) String() string {
	return w.Name
}
