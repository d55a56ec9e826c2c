package textblock

import "slices"

// paragraphSeparator splits text into nodes on insertion. Node buffers
// never contain it.
const paragraphSeparator = '\u2029'

// node is one paragraph of the document.
type node struct {
	text []rune

	// par is the cached layout of the node, nil before the first layout.
	// When set, par.node == n.
	par *paragraph

	// idx is the position of the node in Textblock.nodes.
	idx int

	dirty bool
	isNew bool
}

func newNode(text []rune) *node {
	return &node{text: text, dirty: true, isNew: true}
}

// splice replaces n.text[from:to] with ins.
func (n *node) splice(from, to int, ins []rune) {
	n.text = slices.Replace(n.text, from, to, ins...)
	n.dirty = true
}

// renumber refreshes node positions after a structural edit.
func (tb *Textblock) renumber() {
	for i, n := range tb.nodes {
		n.idx = i
	}
}

// insertNodes inserts ns after position at.
func (tb *Textblock) insertNodes(at int, ns ...*node) {
	tb.nodes = slices.Insert(tb.nodes, at+1, ns...)
	tb.renumber()
}

// removeNodes removes the nodes in positions [from, to) and releases their
// paragraphs.
func (tb *Textblock) removeNodes(from, to int) {
	for _, n := range tb.nodes[from:to] {
		if n.par != nil {
			tb.releaseParagraph(n.par)
		}
	}
	tb.nodes = slices.Delete(tb.nodes, from, to)
	tb.renumber()
}

// next returns the node after n, or nil.
func (tb *Textblock) next(n *node) *node {
	if n.idx+1 < len(tb.nodes) {
		return tb.nodes[n.idx+1]
	}
	return nil
}

// prev returns the node before n, or nil.
func (tb *Textblock) prev(n *node) *node {
	if n.idx > 0 {
		return tb.nodes[n.idx-1]
	}
	return nil
}

// owns reports whether n is a live node of tb.
func (tb *Textblock) owns(n *node) bool {
	return n != nil && n.idx < len(tb.nodes) && tb.nodes[n.idx] == n
}

// length returns the document length, counting one slot per separator.
func (tb *Textblock) length() int {
	total := len(tb.nodes) - 1
	for _, n := range tb.nodes {
		total += len(n.text)
	}
	return max(total, 0)
}

// globalPos converts a node position to a document position.
func (tb *Textblock) globalPos(n *node, off int) int {
	pos := off
	for _, m := range tb.nodes[:n.idx] {
		pos += len(m.text) + 1
	}
	return pos
}

// locate converts a document position to a node position. Positions past
// the end clamp to the end of the last node.
func (tb *Textblock) locate(pos int) (*node, int) {
	pos = max(pos, 0)
	for _, n := range tb.nodes {
		if pos <= len(n.text) {
			return n, pos
		}
		pos -= len(n.text) + 1
	}
	last := tb.nodes[len(tb.nodes)-1]
	return last, len(last.text)
}

// markAllDirty invalidates every node, used when formats change.
func (tb *Textblock) markAllDirty() {
	for _, n := range tb.nodes {
		n.dirty = true
	}
	tb.invalidate()
}
