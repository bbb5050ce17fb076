// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

//go:build !amd64 && !arm64

package bitscan

var hasTrailingZeros = false
