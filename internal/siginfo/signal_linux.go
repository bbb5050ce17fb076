// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package siginfo

import (
	"os"
	"syscall"
)

// Linux has no SIGINFO
var sig os.Signal = syscall.SIGUSR1
