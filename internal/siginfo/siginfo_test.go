// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package siginfo

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetHandler(t *testing.T) {
	if Signal() == nil {
		t.Skip("no status signal on this platform")
	}
	called := make(chan struct{}, 1)
	stop := SetHandler(func() {
		select {
		case called <- struct{}{}:
		default:
		}
	})
	defer stop()

	p, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, p.Signal(Signal()))
	select {
	case <-called:
	case <-time.After(5 * time.Second):
		t.Fatal("handler not called")
	}
}
