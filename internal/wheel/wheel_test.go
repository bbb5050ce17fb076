// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package wheel

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gen = flag.Bool("gen", false, "rewrite tables.go from the generator")

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func residues(m uint64) []uint64 {
	var rs []uint64
	for r := uint64(1); r < m; r++ {
		if gcd(r, m) == 1 {
			rs = append(rs, r)
		}
	}
	return rs
}

func indexOf(rs []uint64, v uint64) int {
	for i, r := range rs {
		if r == v {
			return i
		}
	}
	return -1
}

func genInit(m uint64) []Init {
	rs := residues(m)
	t := make([]Init, m)
	for r := uint64(0); r < m; r++ {
		d := uint64(0)
		for gcd((r+d)%m, m) != 1 {
			d++
		}
		t[r] = Init{uint8(d), uint8(indexOf(rs, (r+d)%m))}
	}
	return t
}

// genElements derives the transition table from first principles.
// For a prime p = 30*s + r0 and a multiple p*q at byte position c
// (7 <= c <= 31), the next multiple p*(q+f) lies
// f*s + (c + f*r0 - 7)/30 bytes further on.
func genElements(m uint64) []Element {
	rs := residues(m)
	w := len(rs)
	t := make([]Element, 0, 8*w)
	for g, pr := range Offsets {
		r0 := pr % 30
		for j, q := range rs {
			c := (pr * q) % 30
			if c == 1 {
				c = 31
			}
			qn := m + rs[0]
			if j+1 < w {
				qn = rs[j+1]
			}
			f := qn - q
			t = append(t, Element{
				UnsetBit:           ^uint8(1 << uint(BitIndex(c))),
				NextMultipleFactor: uint8(f),
				Correct:            uint8((c + f*r0 - 7) / 30),
				Next:               uint16(g*w + (j+1)%w),
			})
		}
	}
	return t
}

var bitNames = map[uint8]string{
	bit0: "bit0", bit1: "bit1", bit2: "bit2", bit3: "bit3",
	bit4: "bit4", bit5: "bit5", bit6: "bit6", bit7: "bit7",
}

func genTables() []byte {
	var b bytes.Buffer
	initTable := func(name string, m uint64) {
		t := genInit(m)
		fmt.Fprintf(&b, "var %s = [%d]Init{\n", name, m)
		for i := 0; i < len(t); i += 8 {
			b.WriteString("\t")
			for k := i; k < i+8 && k < len(t); k++ {
				if k > i {
					b.WriteString(" ")
				}
				fmt.Fprintf(&b, "{%d, %d},", t[k].NextMultipleFactor, t[k].WheelIndex)
			}
			b.WriteString("\n")
		}
		b.WriteString("}\n")
	}
	elemTable := func(name string, m uint64) {
		t := genElements(m)
		w := len(t) / 8
		fmt.Fprintf(&b, "var %s = [8 * %d]Element{\n", name, w)
		for i := 0; i < len(t); i += 8 {
			if i > 0 && i%w == 0 {
				b.WriteString("\n")
			}
			b.WriteString("\t")
			for k := i; k < i+8; k++ {
				if k > i {
					b.WriteString(" ")
				}
				e := t[k]
				fmt.Fprintf(&b, "{%s, %d, %d, %d},", bitNames[e.UnsetBit], e.NextMultipleFactor, e.Correct, e.Next)
			}
			b.WriteString("\n")
		}
		b.WriteString("}\n")
	}

	b.WriteString("// Copyright © 2014 Lawrence E. Bakst. All rights reserved.\n\n")
	b.WriteString("// Code generated by genTables in wheel_test.go; DO NOT EDIT.\n\npackage wheel\n\n")
	b.WriteString("// wheel30Init maps n % 30 to the distance to the next integer coprime\n// to 30 and that integer's wheel index.\n")
	initTable("wheel30Init", 30)
	b.WriteString("\n// wheel210Init is wheel30Init for the modulus 210.\n")
	initTable("wheel210Init", 210)
	b.WriteString("\n// wheel30 holds one row of 8 elements per residue class of the\n// sieving prime modulo 30, in bit order 7, 11, 13, 17, 19, 23, 29, 31.\n")
	elemTable("wheel30", 30)
	b.WriteString("\n// wheel210 holds one row of 48 elements per residue class of the\n// sieving prime modulo 30.\n")
	elemTable("wheel210", 210)
	return b.Bytes()
}

func TestShippedTablesMatchGenerator(t *testing.T) {
	src := genTables()
	if *gen {
		require.NoError(t, os.WriteFile("tables.go", src, 0o644))
	}
	for _, w := range []*Wheel{Wheel30, Wheel210} {
		assert.Equal(t, genInit(w.Modulo), w.Init, w.Name)
		assert.Equal(t, genElements(w.Modulo), w.Elements, w.Name)
	}
	shipped, err := os.ReadFile("tables.go")
	require.NoError(t, err)
	assert.Equal(t, string(src), string(shipped))
}

func TestSizes(t *testing.T) {
	assert.Len(t, Wheel30.Init, 30)
	assert.Len(t, Wheel30.Elements, 64)
	assert.Len(t, Wheel210.Init, 210)
	assert.Len(t, Wheel210.Elements, 384)
	assert.Equal(t, len(residues(30)), Wheel30.Size)
	assert.Equal(t, len(residues(210)), Wheel210.Size)
}

func TestInitAlignsOntoWheel(t *testing.T) {
	for _, w := range []*Wheel{Wheel30, Wheel210} {
		rs := residues(w.Modulo)
		for n := uint64(0); n < 3*w.Modulo; n++ {
			in := w.Init[n%w.Modulo]
			next := n + uint64(in.NextMultipleFactor)
			require.Equal(t, uint64(1), gcd(next, w.Modulo), "%s n=%d", w.Name, n)
			require.Equal(t, rs[in.WheelIndex], next%w.Modulo, "%s n=%d", w.Name, n)
			for k := n; k < next; k++ {
				require.NotEqual(t, uint64(1), gcd(k, w.Modulo), "%s skipped %d", w.Name, k)
			}
		}
	}
}

// Walking the transitions of a prime for one full cycle must visit every
// multiple of p with a quotient coprime to the modulus exactly once, in
// increasing order, at the right byte and bit, and return to the start.
func TestTransitionCycle(t *testing.T) {
	for _, w := range []*Wheel{Wheel30, Wheel210} {
		rs := residues(w.Modulo)
		for _, p := range []uint64{11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 49, 53, 59, 61, 7919, 65537} {
			if gcd(p, w.Modulo) != 1 {
				continue
			}
			s := p / 30
			start := w.Offset(p)
			idx := start
			q := rs[0]
			m := p * q
			pos := (m - 7) / 30
			for step := 0; step < w.Size; step++ {
				e := w.Elements[idx]
				bit := BitIndex(m)
				require.GreaterOrEqual(t, bit, 0)
				require.Equal(t, ^uint8(1<<uint(bit)), e.UnsetBit, "%s p=%d q=%d", w.Name, p, q)
				require.Equal(t, (m-7)/30, pos, "%s p=%d q=%d", w.Name, p, q)

				pos += uint64(e.NextMultipleFactor)*s + uint64(e.Correct)
				q += uint64(e.NextMultipleFactor)
				next := p * q
				require.Greater(t, next, m)
				m = next
				idx = int(e.Next)
			}
			assert.Equal(t, start, idx, "%s p=%d did not return to start", w.Name, p)
			assert.Equal(t, rs[0]+w.Modulo, q)
		}
	}
}

func TestWheel30VisitsResiduesInOrder(t *testing.T) {
	// prime 31 has s = 1 and r0 = 1: its multiples 31*q walk the byte
	// positions of the quotients themselves.
	idx := Wheel30.Offset(31)
	var got []int
	for i := 0; i < Wheel30.Size; i++ {
		e := Wheel30.Elements[idx]
		for b := 0; b < 8; b++ {
			if e.UnsetBit == ^uint8(1<<uint(b)) {
				got = append(got, b)
			}
		}
		idx = int(e.Next)
	}
	assert.Equal(t, []int{7, 0, 1, 2, 3, 4, 5, 6}, got)
}

func TestOffsetPanics(t *testing.T) {
	assert.Panics(t, func() { Wheel30.Offset(25) })
	assert.Equal(t, 0, Wheel30.Offset(7))
	assert.Equal(t, 7*48, Wheel210.Offset(31))
	assert.True(t, Wheel210.Coprime(121))
	assert.False(t, Wheel210.Coprime(49))
	assert.True(t, Wheel30.Coprime(49))
}
