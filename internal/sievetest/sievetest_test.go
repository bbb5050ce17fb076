// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package sievetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmallPrimes(t *testing.T) {
	assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, SmallPrimes(30))
	assert.Empty(t, SmallPrimes(1))
	assert.Len(t, SmallPrimes(1000000), int(Pi[1000000]))
}

func TestWindowMatchesTrialDivision(t *testing.T) {
	small := SmallPrimes(1 << 16)
	for _, w := range [][2]uint64{{0, 1}, {0, 500}, {97, 97}, {1000000000 - 500, 1000000000 + 500}, {1 << 32, 1<<32 + 2000}} {
		var want []uint64
		for n := w[0]; n <= w[1]; n++ {
			if IsPrime(n) {
				want = append(want, n)
			}
		}
		assert.Equal(t, want, Window(w[0], w[1], small), "window %v", w)
	}
}

func TestCheckerAcrossWindows(t *testing.T) {
	stop := uint64(3*WindowSpan + 17)
	got := Reference(2, stop)
	require.NoError(t, Verify(got, 2, stop))

	assert.Error(t, Verify(got[:len(got)-1], 2, stop), "missing last prime")
	assert.Error(t, Verify(append(got, stop+1), 2, stop), "extra prime")

	bad := append([]uint64(nil), got...)
	bad[1000]++
	assert.Error(t, Verify(bad, 2, stop))
}

func TestCheckerEmpty(t *testing.T) {
	assert.NoError(t, Verify(nil, 24, 28))
	assert.NoError(t, Verify(nil, 10, 1))
	assert.Error(t, Verify([]uint64{5}, 10, 1))
}
