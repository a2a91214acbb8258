package render

// In-memory tree fakes. Real directory streams yield entries in
// unpredictable native order, so golden-output tests run against these
// and only single-child chains are exercised on a real filesystem.

type fakeNode struct {
	name    string
	size    int64
	dir     bool
	statErr error

	openErr   error
	readErr   error
	readAfter int

	children []*fakeNode
}

func (n *fakeNode) Name() string { return n.name }
func (n *fakeNode) Size() int64  { return n.size }
func (n *fakeNode) Err() error   { return n.statErr }
func (n *fakeNode) Close()       {}

func (n *fakeNode) IsDir() bool {
	return n.statErr == nil && n.dir
}

func (n *fakeNode) Iter() *fakeIter {
	if !n.IsDir() {
		return &fakeIter{}
	}
	if n.openErr != nil {
		return &fakeIter{err: n.openErr}
	}
	return &fakeIter{children: n.children, readErr: n.readErr, readAfter: n.readAfter}
}

type fakeIter struct {
	children  []*fakeNode
	pos       int
	cur       *fakeNode
	readErr   error
	readAfter int
	err       error
}

func (it *fakeIter) Next() bool {
	it.cur = nil
	if it.err != nil {
		return false
	}
	if it.readErr != nil && it.pos >= it.readAfter {
		it.err = it.readErr
		return false
	}
	if it.pos >= len(it.children) {
		return false
	}
	it.cur = it.children[it.pos]
	it.pos++
	return true
}

func (it *fakeIter) Entry() *fakeNode { return it.cur }
func (it *fakeIter) Err() error       { return it.err }
func (it *fakeIter) Close()           {}
