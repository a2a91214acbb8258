package fsnode

// Iter is a forward-only iterator over one open directory stream,
// skipping "." and "..". The zero value is the canonical end iterator:
// Next reports false and Err is nil.
//
// Consumption follows the scanner idiom:
//
//	it := entry.Iter()
//	defer it.Close()
//	for it.Next() {
//		child := it.Entry()
//		...
//	}
//	if err := it.Err(); err != nil { ... }
//
// Err is non-nil right after construction when the directory open
// itself failed, and after Next returns false when the stream broke
// mid-read. Clean exhaustion leaves Err nil.
type Iter struct {
	base   *Fd
	stream *DirStream
	name   string
	at     bool
	closed bool
	err    *OpError
}

// Next advances to the next real entry. It reports false at exhaustion
// or on a captured error; which one happened is visible via Err.
//
// Calling Next on a released iterator is a bug in the caller, not a
// data-dependent condition, and panics.
func (it *Iter) Next() bool {
	if it.closed {
		panic("fsnode: Next on closed iterator")
	}
	if it.stream == nil || it.err != nil {
		it.at = false
		return false
	}

	name, ok, opErr := it.stream.next()
	if opErr != nil {
		it.err = opErr
		it.name, it.at = "", false
		return false
	}
	it.name, it.at = name, ok
	return ok
}

// Entry builds an Entry for the current position over a fresh duplicate
// of the stream's descriptor, so the child can be opened and iterated
// while this iterator keeps advancing. Calling it when the iterator is
// not positioned at an entry panics.
func (it *Iter) Entry() Entry {
	if !it.at {
		panic("fsnode: Entry on iterator not positioned at an entry")
	}
	dup, opErr := it.stream.dupFd()
	if opErr != nil {
		return Entry{name: it.name, err: opErr}
	}
	return NewEntry(dup, it.name)
}

// Err returns the captured open or read error, if any.
func (it *Iter) Err() error {
	if it.err == nil {
		return nil
	}
	return it.err
}

// Close releases the stream and the base directory reference. Safe to
// call on the canonical end iterator and safe to call twice.
func (it *Iter) Close() {
	if it.closed {
		return
	}
	it.closed = true
	it.at = false
	if it.stream != nil {
		it.stream.Close()
		it.stream = nil
	}
	if it.base != nil {
		it.base.Close()
		it.base = nil
	}
}
