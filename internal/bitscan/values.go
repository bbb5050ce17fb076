// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package bitscan maps the set bits of a 64-bit sieve word back to the
// integers they represent.
//
// 8 bytes of the sieve array span 240 integers. Bit i of the
// little-endian word is the integer BitValues[i] relative to the
// segment's low end.
package bitscan

// BitValues is indexed by the number of trailing zeros of a sieve word.
// TrailingZeros64(0) is 64, so entry 64 is a 0 sentinel which is never a
// valid offset.
var BitValues = [65]uint64{
	7, 11, 13, 17, 19, 23, 29, 31,
	37, 41, 43, 47, 49, 53, 59, 61,
	67, 71, 73, 77, 79, 83, 89, 91,
	97, 101, 103, 107, 109, 113, 119, 121,
	127, 131, 133, 137, 139, 143, 149, 151,
	157, 161, 163, 167, 169, 173, 179, 181,
	187, 191, 193, 197, 199, 203, 209, 211,
	217, 221, 223, 227, 229, 233, 239, 241,
	0,
}

// Debruijn64 is the de Bruijn sequence used by the portable bit scan.
// https://www.chessprogramming.org/BitScan#De_Bruijn_Multiplication
const Debruijn64 uint64 = 0x03F08A4C6ACB9DBD

// BruijnBitValues is BitValues permuted into de Bruijn index order.
var BruijnBitValues = [64]uint64{
	7, 47, 11, 49, 67, 113, 13, 53,
	89, 71, 161, 101, 119, 187, 17, 233,
	59, 79, 91, 73, 133, 139, 163, 103,
	149, 121, 203, 169, 191, 217, 19, 239,
	43, 61, 109, 83, 157, 97, 181, 229,
	77, 131, 137, 143, 199, 167, 211, 41,
	107, 151, 179, 227, 127, 197, 209, 37,
	173, 223, 193, 31, 221, 29, 23, 241,
}
