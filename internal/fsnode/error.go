package fsnode

import (
	"errors"
	"fmt"
	"syscall"
)

// OpError records an environment-dependent syscall failure as a value.
// Op is the syscall that failed ("fstatat", "openat", "readdirent",
// "dup"), Err the underlying error, normally a syscall.Errno.
type OpError struct {
	Op  string
	Err error
}

func newOpError(op string, err error) *OpError {
	return &OpError{Op: op, Err: err}
}

func (e *OpError) Error() string {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return fmt.Sprintf("%s: (%d) %s", e.Op, int(errno), errno.Error())
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// copy from src/os/file_posix.go.
// Copyright 2009 The Go Authors. All rights reserved.
// ignoringEINTR makes a function call and repeats it if it returns an
// EINTR error.
func ignoringEINTR(fn func() error) error {
	for {
		err := fn()
		if err != syscall.EINTR {
			return err
		}
	}
}
