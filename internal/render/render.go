// Package render draws a lazily-walked filesystem subtree as box-drawn
// text, one line per visited node, depth first. Captured errors render
// inline instead of stopping the walk.
package render

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// Node is anything the renderer can draw: it has a display name, may
// behave as a directory, and may carry a captured error from the stat
// that produced it.
type Node[I any] interface {
	Name() string
	Size() int64
	IsDir() bool
	Err() error
	Iter() I
	Close()
}

// Iter produces a Node's children in stream order. Err reports a
// captured directory-open error immediately after construction, or a
// mid-stream read error after Next has returned false.
type Iter[N any] interface {
	Next() bool
	Entry() N
	Err() error
	Close()
}

type Options struct {
	Graph Graph
	Style Style

	// MaxDepth is the number of levels rendered below each root;
	// negative means unlimited. Zero renders only the root line.
	MaxDepth int

	// ShowSize appends humanized byte sizes to non-directory lines.
	ShowSize bool
}

// Renderer walks one subtree at a time. It is not safe for concurrent
// use; the walk is strictly sequential.
type Renderer[N Node[I], I Iter[N]] struct {
	opts  Options
	lines []bool
	errs  int
}

func New[N Node[I], I Iter[N]](opts Options) *Renderer[N, I] {
	return &Renderer[N, I]{opts: opts}
}

// Tree renders root and everything below it to w, returning the number
// of captured errors that were drawn.
func (r *Renderer[N, I]) Tree(w io.Writer, root N) int {
	r.lines = r.lines[:0]
	r.errs = 0
	r.render(w, root, true, true, r.opts.MaxDepth)
	return r.errs
}

func (r *Renderer[N, I]) render(w io.Writer, node N, isRoot, isLast bool, remaining int) {
	r.prefix(w)
	if !isRoot {
		if isLast {
			io.WriteString(w, r.opts.Graph.Corner)
		} else {
			io.WriteString(w, r.opts.Graph.Branch)
		}
	}

	io.WriteString(w, node.Name())
	if r.opts.ShowSize && node.Err() == nil && !node.IsDir() {
		fmt.Fprintf(w, " [%s]", humanize.Bytes(uint64(node.Size())))
	}
	if err := node.Err(); err != nil {
		r.annotate(w, err)
	}

	// remaining == 0: the depth budget is spent, nothing below this
	// node is shown and its directory is not even opened.
	if !node.IsDir() || remaining == 0 {
		io.WriteString(w, "\n")
		return
	}

	it := node.Iter()
	defer it.Close()

	if err := it.Err(); err != nil {
		// The directory itself could not be opened: annotate on this
		// node's own line and emit no children.
		r.annotate(w, err)
		io.WriteString(w, "\n")
		return
	}
	io.WriteString(w, "\n")

	next := remaining
	if remaining > 0 {
		next = remaining - 1
	}

	if !isRoot {
		r.lines = append(r.lines, !isLast)
	}

	has := it.Next()
	for has {
		child := it.Entry()
		hasNext := it.Next()
		// A read failure appends a synthetic last child below, so the
		// final real child keeps the non-last glyphs in that case.
		last := !hasNext && it.Err() == nil
		r.render(w, child, false, last, next)
		child.Close()
		has = hasNext
	}

	if err := it.Err(); err != nil {
		// The stream broke mid-read: one synthetic terminal child
		// whose display is the captured error text.
		r.prefix(w)
		io.WriteString(w, r.opts.Graph.Corner)
		r.errs++
		io.WriteString(w, r.opts.Style.Error("(error: "+err.Error()+")"))
		io.WriteString(w, "\n")
	}

	if !isRoot {
		r.lines = r.lines[:len(r.lines)-1]
	}
}

func (r *Renderer[N, I]) prefix(w io.Writer) {
	for _, more := range r.lines {
		if more {
			io.WriteString(w, r.opts.Graph.Vertical)
		} else {
			io.WriteString(w, r.opts.Graph.Blank)
		}
	}
}

func (r *Renderer[N, I]) annotate(w io.Writer, err error) {
	r.errs++
	io.WriteString(w, " "+r.opts.Style.Error("(error: "+err.Error()+")"))
}
