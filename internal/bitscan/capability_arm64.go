// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

//go:build arm64

package bitscan

// RBIT+CLZ are baseline on arm64.
var hasTrailingZeros = true
