package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman code tree.  It is either a *Leaf or an
// *Internal.
type Node interface {
	// Weight is the total count of all symbols beneath this node.
	Weight() uint64

	isNode()
}

// Leaf is a tree node that represents exactly one Symbol.
type Leaf struct {
	Symbol Symbol
	Count  uint64
}

// Weight returns the count of this leaf's symbol.
func (leaf *Leaf) Weight() uint64 {
	return leaf.Count
}

func (*Leaf) isNode() {}

// Internal is a tree node that joins two subtrees.  Left is reached with a
// 0 bit and Right with a 1 bit.
type Internal struct {
	Left  Node
	Right Node

	weight uint64
}

// Weight returns the combined weight of both subtrees.
func (in *Internal) Weight() uint64 {
	return in.weight
}

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// Tree is a Huffman code tree.  A Tree is built for one compress or
// decompress call and is not safe for concurrent mutation.
type Tree struct {
	root   Node
	leaves int
}

// BuildTree constructs the Huffman code tree for the given frequencies.
//
// Every entry becomes a leaf.  The two lowest-weight nodes are repeatedly
// merged into a new internal node, the first one popped becoming the left
// child, until one node is left.  Ties are broken as described in the
// package documentation, so the iteration order of freq has no effect on
// the result.  A single-entry table produces a tree whose root is a leaf.
//
func BuildTree(freq FrequencyMap) *Tree {
	keys := freq.Keys()
	assert.Assertf(len(keys) != 0, "cannot build a Huffman tree from an empty frequency table")

	// Step 1: build a minheap.
	//
	// Leaves are ranked by symbol value.  Internal nodes are ranked after
	// every possible leaf, in the order they are created.

	h := nodeHeap{list: make([]rankedNode, 0, len(keys))}
	for _, symbol := range keys {
		leaf := &Leaf{Symbol: symbol, Count: freq.Get(symbol)}
		h.list = append(h.list, rankedNode{node: leaf, rank: uint32(symbol)})
	}
	h.Init()

	// Step 2: pop two nodes, join them, push the result back.

	nextRank := uint32(NumSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(rankedNode)
		b := heap.Pop(&h).(rankedNode)

		// Compute the weight using saturating addition, so adversarial
		// headers still produce the same tree on every decoder.
		weight := a.node.Weight() + b.node.Weight()
		if weight < a.node.Weight() {
			weight = math.MaxUint64
		}

		parent := &Internal{Left: a.node, Right: b.node, weight: weight}
		heap.Push(&h, rankedNode{node: parent, rank: nextRank})
		nextRank++
	}

	root := heap.Pop(&h).(rankedNode)
	return &Tree{root: root.node, leaves: len(keys)}
}

// Root returns the root node, or nil once the tree has been released.
func (t *Tree) Root() Node {
	return t.root
}

// Leaves returns the number of leaves in the tree.
func (t *Tree) Leaves() int {
	return t.leaves
}

// Weight returns the weight of the root.
func (t *Tree) Weight() uint64 {
	if t.root == nil {
		return 0
	}
	return t.root.Weight()
}

// Release detaches every node of the tree, bottom-up.  The walk uses an
// explicit stack, so arbitrarily skewed trees are safe.  The Tree is empty
// afterward.
func (t *Tree) Release() {
	root, ok := t.root.(*Internal)
	t.root = nil
	t.leaves = 0
	if !ok {
		return
	}

	// x=0 → descend into the left child
	// x=1 → descend into the right child
	// x=2 → both children are released; detach them and pop
	type stackItem struct {
		node *Internal
		x    byte
	}

	stack := make([]stackItem, 0, log2uint32(uint32(NumSymbols)))
	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		var child Node
		switch x {
		case 0:
			child = top.node.Left
		case 1:
			child = top.node.Right
		case 2:
			top.node.Left = nil
			top.node.Right = nil
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
			continue
		}
		if in, ok := child.(*Internal); ok {
			stack = append(stack, stackItem{node: in})
		}
	}
}

// walk calls fn for every leaf in left-to-right order, together with the
// path from the root to that leaf.  The path buffer is shared between
// calls and must not be retained.
func (t *Tree) walk(fn func(leaf *Leaf, path *Code)) {
	var path Code

	switch root := t.root.(type) {
	case nil:
		return
	case *Leaf:
		path.push(0)
		fn(root, &path)
		return
	case *Internal:
		// x=0 → We just arrived at stackItem for the first time
		// x=1 → We have already processed the left child
		// x=2 → We have already processed both children
		type stackItem struct {
			node *Internal
			x    byte
		}

		stack := make([]stackItem, 0, log2uint32(uint32(t.leaves)))
		stack = append(stack, stackItem{node: root})
		for len(stack) != 0 {
			top := &stack[len(stack)-1]
			x := top.x
			top.x++
			var child Node
			switch x {
			case 0:
				path.push(0)
				child = top.node.Left
			case 1:
				path.pop()
				path.push(1)
				child = top.node.Right
			case 2:
				if len(stack) > 1 {
					path.pop()
				}
				stack = stack[:len(stack)-1]
				continue
			}
			switch c := child.(type) {
			case *Leaf:
				fn(c, &path)
			case *Internal:
				stack = append(stack, stackItem{node: c})
			default:
				assert.Assertf(false, "unexpected node type %T", child)
			}
		}
	}
}

// Dump writes a programmer-readable debugging dump of the Tree's current
// state to the given writer.  Leaves are listed left to right.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tWeight() = %d\n", t.Weight())
	fmt.Fprintf(&buf, "\tLeaves() = %d\n", t.leaves)
	t.walk(func(leaf *Leaf, path *Code) {
		fmt.Fprintf(&buf, "\tLeaf(%s) = {%d, %s}\n", leaf.Symbol, leaf.Count, *path)
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type rankedNode + type nodeHeap {{{

type rankedNode struct {
	node Node
	rank uint32
}

type nodeHeap struct {
	list []rankedNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.rank < b.rank
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(rankedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = rankedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
