// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

//go:build amd64

package bitscan

import "golang.org/x/sys/cpu"

// TZCNT is part of BMI1, older CPUs fall back to BSF which is slow on
// some microarchitectures.
var hasTrailingZeros = cpu.X86.HasBMI1
