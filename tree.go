package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman coding tree.  It is either a *Leaf or an
// *Internal; no other implementations exist.
type Node[S Symbol] interface {
	// Freq returns the total frequency of all leaves under this node.
	Freq() uint64

	// leaf returns the symbol held by a *Leaf.  It returns ok == false
	// for an *Internal.
	leaf() (symbol S, ok bool)
}

// Leaf is a Node holding a single symbol.
type Leaf[S Symbol] struct {
	Symbol    S
	Frequency uint64
}

// Internal is a Node with exactly two children.  Its code is extended with a
// 0 bit to reach Zero, and with a 1 bit to reach One.
type Internal[S Symbol] struct {
	Zero      Node[S]
	One       Node[S]
	Frequency uint64
}

func (leaf *Leaf[S]) Freq() uint64 {
	return leaf.Frequency
}

func (node *Internal[S]) Freq() uint64 {
	return node.Frequency
}

func (leaf *Leaf[S]) leaf() (S, bool) {
	return leaf.Symbol, true
}

func (*Internal[S]) leaf() (symbol S, ok bool) {
	return symbol, false
}

var (
	_ Node[int] = (*Leaf[int])(nil)
	_ Node[int] = (*Internal[int])(nil)
)

// BuildTree constructs an optimal coding tree for the given frequencies.
//
// Nodes are merged least frequent first.  Equal frequencies are ordered by
// age: leaves in the table's order of first appearance, then internal nodes
// in order of creation.  The result is therefore fully determined by ft.
//
// A table with a single symbol yields a bare *Leaf.
//
func BuildTree[S Symbol](ft FrequencyTable[S]) (Node[S], error) {
	numSymbols := ft.Len()
	if numSymbols == 0 {
		return nil, ErrEmptyCorpus
	}

	// Step 1: build a minheap of leaves.

	h := freqHeap[S]{list: make([]nodeAndSeq[S], 0, numSymbols)}
	for _, symbol := range ft.order {
		leaf := &Leaf[S]{Symbol: symbol, Frequency: ft.counts[symbol]}
		h.list = append(h.list, nodeAndSeq[S]{leaf, h.nextSeq})
		h.nextSeq++
	}
	h.Init()

	// Step 2: pop the two least frequent nodes, join them under a new
	// internal node, and push that back, until only the root remains.
	//
	// A full binary tree with n leaves has n-1 internal nodes.

	numInternal := 0
	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq[S])
		b := heap.Pop(&h).(nodeAndSeq[S])

		node := &Internal[S]{
			Zero:      a.node,
			One:       b.node,
			Frequency: saturatingAdd(a.node.Freq(), b.node.Freq()),
		}
		heap.Push(&h, nodeAndSeq[S]{node, h.nextSeq})
		h.nextSeq++
		numInternal++
	}

	assert.Assertf(numInternal == numSymbols-1, "built %d internal nodes for %d symbols", numInternal, numSymbols)
	root := heap.Pop(&h).(nodeAndSeq[S])
	return root.node, nil
}

// type nodeAndSeq + type freqHeap {{{

type nodeAndSeq[S Symbol] struct {
	node Node[S]
	seq  uint64
}

type freqHeap[S Symbol] struct {
	list    []nodeAndSeq[S]
	nextSeq uint64
}

func (h *freqHeap[S]) Init() {
	heap.Init(h)
}

func (h *freqHeap[S]) Len() int {
	return len(h.list)
}

func (h *freqHeap[S]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap[S]) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	af, bf := a.node.Freq(), b.node.Freq()
	if af != bf {
		return af < bf
	}
	return a.seq < b.seq
}

func (h *freqHeap[S]) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq[S]))
}

func (h *freqHeap[S]) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq[S]{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap[int])(nil)

// }}}
