package fsnode

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

const direntBufSize = 8192

// DirStream reads raw directory entries from one open directory
// descriptor. Exactly one Iter ever consumes a given stream; the read
// cursor lives in the descriptor, which is why dereferencing hands out
// duplicates instead of the stream's own descriptor.
type DirStream struct {
	fd   *Fd
	buf  []byte
	pos  int
	size int
}

// openDir opens name relative to base for read-only directory access.
// Failure comes back as a captured error, not a raised one.
func openDir(base *Fd, name string) (*DirStream, *OpError) {
	var fd int
	err := ignoringEINTR(func() (err error) {
		fd, err = unix.Openat(base.Raw(), name, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
		return
	})
	if err != nil {
		return nil, newOpError("openat", err)
	}
	return &DirStream{fd: NewFd(fd), buf: make([]byte, direntBufSize)}, nil
}

// next returns the next entry name, skipping "." and "..". ok is false
// at exhaustion; a readdirent failure is returned as a captured error
// and also ends the stream.
func (d *DirStream) next() (name string, ok bool, opErr *OpError) {
	for {
		if d.pos >= d.size {
			var n int
			err := ignoringEINTR(func() (err error) {
				n, err = unix.ReadDirent(d.fd.Raw(), d.buf)
				return
			})
			if err != nil {
				return "", false, newOpError("readdirent", err)
			}
			if n == 0 {
				return "", false, nil
			}
			d.pos, d.size = 0, n
		}

		dirent := (*unix.Dirent)(unsafe.Pointer(&d.buf[d.pos]))
		d.pos += int(dirent.Reclen)

		name := direntName(dirent)
		if name == "" || name == "." || name == ".." {
			continue
		}
		return name, true, nil
	}
}

// dupFd duplicates the stream's descriptor into a fresh handle. An
// Entry produced mid-iteration keeps the duplicate as its lookup base,
// so it stays resolvable after this stream is closed, and nothing it
// does ever reads from this stream's descriptor.
func (d *DirStream) dupFd() (*Fd, *OpError) {
	raw, err := unix.Dup(d.fd.Raw())
	if err != nil {
		return nil, newOpError("dup", err)
	}
	unix.CloseOnExec(raw)
	return NewFd(raw), nil
}

func (d *DirStream) Close() {
	d.fd.Close()
}

func direntName(dirent *unix.Dirent) string {
	name := make([]byte, 0, 32)
	for _, c := range dirent.Name {
		if c == 0 {
			break
		}
		name = append(name, byte(c))
	}
	return string(name)
}
