package syntax

import "sort"

// Prop names a per-node-type property.
type Prop uint8

const (
	// LineClass is the space-separated class list applied to every line the
	// node covers.
	LineClass Prop = iota
)

// NodeType describes the kind of a block node.
type NodeType struct {
	Name      string
	lineClass string
}

// Prop returns the value of p for this type, or "" when unset.
func (t NodeType) Prop(p Prop) string {
	switch p {
	case LineClass:
		return t.lineClass
	}
	return ""
}

// Node is one block in the document. From and To are byte offsets; To is
// the end of the node's last line (before its '\n').
type Node struct {
	Type  NodeType
	From  int
	To    int
	Depth int
}

// Tree is an immutable parse result.
type Tree struct {
	length     int
	lineStarts []int
	nodes      []Node
}

// Len returns the byte length of the parsed source.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// Iterate calls enter for every node in document order (parents before
// children). Traversal stops when enter returns false. A nil tree has no
// nodes.
func (t *Tree) Iterate(enter func(n Node) bool) {
	if t == nil {
		return
	}
	for _, n := range t.nodes {
		if !enter(n) {
			return
		}
	}
}

// Nodes returns a copy of all nodes in document order.
func (t *Tree) Nodes() []Node {
	if t == nil {
		return nil
	}
	return append([]Node(nil), t.nodes...)
}

// LineClasses returns the line class of every row. Deeper nodes win over
// their containers.
func (t *Tree) LineClasses() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.lineStarts))
	for _, n := range t.nodes {
		cls := n.Type.Prop(LineClass)
		if cls == "" {
			continue
		}
		for row := t.rowAt(n.From); row <= t.rowAt(n.To) && row < len(out); row++ {
			out[row] = cls
		}
	}
	return out
}

func (t *Tree) rowAt(off int) int {
	// Index of the last line start <= off.
	return sort.Search(len(t.lineStarts), func(i int) bool { return t.lineStarts[i] > off }) - 1
}
