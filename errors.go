// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package sieve

import (
	"errors"
	"fmt"
)

var (
	ErrSieveSize      = errors.New("sieve size must be a power of 2 between 1 KiB and 8 MiB")
	ErrPreSieveLimit  = errors.New("pre-sieve limit must be one of 7, 11, 13, 17, 19")
	ErrStartAfterStop = errors.New("start > stop")
	ErrStopTooLarge   = errors.New("stop exceeds MaxStop")
	ErrWheel          = errors.New("unknown wheel")
	ErrAlreadyRun     = errors.New("generator already run")
)

// ConfigError reports an invalid Config field.
// The sentinel error can be accessed via errors.Is.
type ConfigError struct {
	Field string
	Value any
	err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sieve: invalid %s %v: %v", e.Field, e.Value, e.err)
}

func (e *ConfigError) Unwrap() error { return e.err }

func configError(field string, value any, err error) error {
	return &ConfigError{Field: field, Value: value, err: err}
}
