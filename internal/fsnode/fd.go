package fsnode

import (
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// Fd is a reference-counted owner of one raw file descriptor. A parent
// directory's descriptor must outlive every Entry that names something
// inside it, and several sibling Entries may share one descriptor, so
// ownership is counted rather than exclusive.
//
// The AT_FDCWD sentinel is representable but never closed.
type Fd struct {
	raw  int
	refs atomic.Int32
}

// NewFd takes ownership of raw with a reference count of one.
func NewFd(raw int) *Fd {
	f := &Fd{raw: raw}
	f.refs.Store(1)
	return f
}

// Cwd returns a handle on the "current working directory" sentinel.
// Closing it never closes anything.
func Cwd() *Fd {
	return NewFd(unix.AT_FDCWD)
}

// Raw returns the descriptor value for use in *at syscalls.
func (f *Fd) Raw() int {
	return f.raw
}

// Ref adds one reference and returns f for chaining.
func (f *Fd) Ref() *Fd {
	f.refs.Add(1)
	return f
}

// Close drops one reference. The descriptor is closed when the last
// reference goes, unless it is the AT_FDCWD sentinel. Closing is
// best-effort: close failures are not observable here. Extra Close
// calls after the count reaches zero are no-ops.
func (f *Fd) Close() {
	if f.refs.Add(-1) != 0 {
		return
	}
	if f.raw >= 0 {
		unix.Close(f.raw)
	}
	f.raw = -1
}
