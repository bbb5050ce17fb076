// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package siginfo calls a function when the user asks for a status
// report, ^T (SIGINFO) on the BSDs and macOS, SIGUSR1 on Linux.
package siginfo

import (
	"os"
	"os/signal"
)

// Signal returns the status signal of this platform, nil if there is none.
func Signal() os.Signal {
	return sig
}

// SetHandler calls f for every status signal until stop is called.
func SetHandler(f func()) (stop func()) {
	if sig == nil {
		return func() {}
	}
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(ch, sig)

	go func() {
		for {
			select {
			case <-ch:
				f()
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}
