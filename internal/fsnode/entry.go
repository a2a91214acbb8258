package fsnode

import (
	"golang.org/x/sys/unix"
)

// Entry is one named filesystem object resolved relative to a base
// directory handle. Construction stats the name immediately (symlinks
// not followed) and the Entry is immutable afterwards; a failed stat is
// carried as data and makes IsDir false.
//
// An Entry owns the base reference given to it. Exactly one holder
// should Close it.
type Entry struct {
	base *Fd
	name string
	mode uint32
	size int64
	err  *OpError
}

// NewEntry takes ownership of base and captures name's type via a
// no-follow fstatat. It never fails; a stat error is stored on the
// returned Entry.
func NewEntry(base *Fd, name string) Entry {
	e := Entry{base: base, name: name}

	var st unix.Stat_t
	err := ignoringEINTR(func() error {
		return unix.Fstatat(base.Raw(), name, &st, unix.AT_SYMLINK_NOFOLLOW)
	})
	if err != nil {
		e.err = newOpError("fstatat", err)
		return e
	}

	e.mode = uint32(st.Mode)
	e.size = st.Size
	return e
}

func (e Entry) Name() string {
	return e.name
}

// Size is the byte size recorded by the stat at construction, zero if
// the stat failed.
func (e Entry) Size() int64 {
	return e.size
}

// IsDir reports whether the stat succeeded and found a directory. A
// symlink pointing at a directory is not a directory here.
func (e Entry) IsDir() bool {
	return e.err == nil && e.mode&unix.S_IFMT == unix.S_IFDIR
}

// Err returns the captured stat error, if any.
func (e Entry) Err() error {
	if e.err == nil {
		return nil
	}
	return e.err
}

func (e Entry) String() string {
	if e.err != nil {
		return e.name + " (error: " + e.err.Error() + ")"
	}
	return e.name
}

// Iter opens the entry as a directory and returns an iterator over its
// contents. A non-directory yields the canonical end iterator; an open
// failure yields an end iterator carrying the captured error. Neither
// case fails construction.
func (e Entry) Iter() *Iter {
	if !e.IsDir() {
		return &Iter{}
	}
	stream, opErr := openDir(e.base, e.name)
	if opErr != nil {
		return &Iter{err: opErr}
	}
	return &Iter{base: e.base.Ref(), stream: stream}
}

// Close releases the entry's base directory reference.
func (e Entry) Close() {
	if e.base != nil {
		e.base.Close()
	}
}
