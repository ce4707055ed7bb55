package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/slices"
)

// CodeTable maps each symbol of an alphabet to its prefix-free Code.
//
// The zero value is an empty table which cannot encode anything.  A CodeTable
// is never modified after construction and may be shared between goroutines.
type CodeTable[S Symbol] struct {
	codes   map[S]Code
	order   []S
	minSize int
	maxSize int
}

// Build counts the symbols in seq and returns the optimal CodeTable for it.
// It is equivalent to BuildTree(CountFrequencies(seq)) followed by
// NewCodeTable.
func Build[S Symbol](seq []S) (CodeTable[S], error) {
	return BuildFromFrequencies(CountFrequencies(seq))
}

// BuildFromFrequencies returns the optimal CodeTable for ft.
func BuildFromFrequencies[S Symbol](ft FrequencyTable[S]) (CodeTable[S], error) {
	root, err := BuildTree(ft)
	if err != nil {
		return CodeTable[S]{}, err
	}
	return NewCodeTable[S](root), nil
}

// NewCodeTable assigns a Code to every leaf of the tree rooted at root.  The
// Zero child of an internal node extends its code with a 0, and the One child
// extends it with a 1.
//
// If root is itself a *Leaf, its symbol is assigned the code "0": an empty
// code could be neither written nor read.
//
func NewCodeTable[S Symbol](root Node[S]) CodeTable[S] {
	assert.Assertf(root != nil, "root is nil")

	ct := CodeTable[S]{codes: make(map[S]Code)}

	record := func(leaf *Leaf[S], hc Code) {
		_, dupe := ct.codes[leaf.Symbol]
		assert.Assertf(!dupe, "symbol %v appears in more than one leaf", leaf.Symbol)
		ct.codes[leaf.Symbol] = hc
		ct.order = append(ct.order, leaf.Symbol)
		size := len(hc)
		if len(ct.order) == 1 {
			ct.minSize, ct.maxSize = size, size
		} else if ct.minSize > size {
			ct.minSize = size
		} else if ct.maxSize < size {
			ct.maxSize = size
		}
	}

	var rootNode *Internal[S]
	switch root := root.(type) {
	case *Leaf[S]:
		record(root, Code{Zero})
		return ct
	case *Internal[S]:
		rootNode = root
	default:
		assert.Assertf(false, "unexpected node type %T", root)
	}

	// Walk the tree with an explicit stack of internal nodes.
	//
	// stackItem.x tracks where we are within each node:
	//   x=0 → We just arrived at this node for the first time
	//   x=1 → We have already processed the Zero child
	//   x=2 → We have already processed both children
	//
	// Visiting Zero before One means leaves are recorded in lexicographic
	// order of their codes.

	type stackItem struct {
		node *Internal[S]
		code Code
		x    byte
	}

	var stack []stackItem

	stackPush := func(node *Internal[S], hc Code) {
		assert.Assertf(node != nil && node.Zero != nil && node.One != nil, "internal node with a missing child")
		stack = append(stack, stackItem{node: node, code: hc})
	}

	stackPop := func() {
		last := len(stack) - 1
		stack[last] = stackItem{}
		stack = stack[:last]
	}

	processChild := func(parent *stackItem, child Node[S], bit Bit) {
		hc := make(Code, len(parent.code)+1)
		copy(hc, parent.code)
		hc[len(parent.code)] = bit

		switch child := child.(type) {
		case *Internal[S]:
			stackPush(child, hc)
		case *Leaf[S]:
			assert.Assertf(child != nil, "nil leaf")
			record(child, hc)
		default:
			assert.Assertf(false, "unexpected node type %T", child)
		}
	}

	stackPush(rootNode, Code{})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top, top.node.Zero, Zero)
		case 1:
			processChild(top, top.node.One, One)
		case 2:
			stackPop()
		}
	}

	return ct
}

// MakeCodeTable constructs a CodeTable from explicit codes: codes[i] is the
// code for symbols[i].  Symbols must be distinct, codes must be non-empty,
// and no code may be a prefix of another.
//
// The codes need not come from a full coding tree.  Decoding with such a
// table may fail with ErrCorruptStream on bit sequences that no code begins
// with.
//
func MakeCodeTable[S Symbol](symbols []S, codes []Code) (CodeTable[S], error) {
	if len(symbols) != len(codes) {
		return CodeTable[S]{}, fmt.Errorf("huffman: %d symbols but %d codes", len(symbols), len(codes))
	}
	if len(symbols) == 0 {
		return CodeTable[S]{}, ErrEmptyCorpus
	}

	ct := CodeTable[S]{codes: make(map[S]Code, len(symbols))}
	for index, symbol := range symbols {
		hc := codes[index]
		if len(hc) == 0 {
			return CodeTable[S]{}, fmt.Errorf("%w: symbol %v", ErrEmptyCode, symbol)
		}
		if !hc.Valid() {
			return CodeTable[S]{}, fmt.Errorf("%w: symbol %v has code %s", ErrInvalidBit, symbol, hc)
		}
		if _, found := ct.codes[symbol]; found {
			return CodeTable[S]{}, fmt.Errorf("huffman: duplicate symbol %v", symbol)
		}
		ct.codes[symbol] = hc.Clone()
		if index == 0 || ct.minSize > len(hc) {
			ct.minSize = len(hc)
		}
		if ct.maxSize < len(hc) {
			ct.maxSize = len(hc)
		}
	}

	// In lexicographic order, a code that is a prefix of some other code
	// is also a prefix of its immediate successor.
	ct.order = slices.Clone(symbols)
	sort.SliceStable(ct.order, func(i, j int) bool {
		return ct.codes[ct.order[i]].digits() < ct.codes[ct.order[j]].digits()
	})
	for index := 1; index < len(ct.order); index++ {
		prev, next := ct.order[index-1], ct.order[index]
		if ct.codes[next].HasPrefix(ct.codes[prev]) {
			return CodeTable[S]{}, fmt.Errorf("%w: code %s for symbol %v is a prefix of code %s for symbol %v", ErrNotPrefixFree, ct.codes[prev], prev, ct.codes[next], next)
		}
	}

	return ct, nil
}

// Code returns the code for symbol.  The returned Code must not be modified.
func (ct CodeTable[S]) Code(symbol S) (Code, bool) {
	hc, found := ct.codes[symbol]
	return hc, found
}

// Len returns the number of symbols in the table.
func (ct CodeTable[S]) Len() int {
	return len(ct.order)
}

// Symbols returns every symbol in the table, ordered lexicographically by
// code.
func (ct CodeTable[S]) Symbols() []S {
	return slices.Clone(ct.order)
}

// MinSize is the bit length of the shortest code.
func (ct CodeTable[S]) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable[S]) MaxSize() int {
	return ct.maxSize
}

// ExpectedSize returns the number of bits needed to encode a corpus with the
// given frequencies, saturating at math.MaxUint64.  It fails with an
// *UnknownSymbolError if ft contains a symbol that the table lacks; its Index
// is the symbol's position in ft.Symbols().
func (ct CodeTable[S]) ExpectedSize(ft FrequencyTable[S]) (uint64, error) {
	var total uint64
	for index, symbol := range ft.order {
		hc, found := ct.codes[symbol]
		if !found {
			return 0, &UnknownSymbolError{Symbol: symbol, Index: index}
		}
		total = saturatingAdd(total, saturatingMul(ft.counts[symbol], uint64(len(hc))))
	}
	return total, nil
}

// Fingerprint returns a 64-bit hash of the table's symbol→code assignments.
// Symbols are hashed by their "%v" representation, so equal tables always
// have equal fingerprints.
func (ct CodeTable[S]) Fingerprint() uint64 {
	d := xxhash.New()
	for _, symbol := range ct.order {
		fmt.Fprintf(d, "%v\x00%s\x00", symbol, ct.codes[symbol].digits())
	}
	return d.Sum64()
}

// Encode is a convenience wrapper around NewEncoder(ct).Encode(seq).
func (ct CodeTable[S]) Encode(seq []S) ([]Bit, error) {
	return NewEncoder(ct).Encode(seq)
}

// Decode is a convenience wrapper around ct.DecodeTable().Decode(bits).
func (ct CodeTable[S]) Decode(bits []Bit) ([]S, error) {
	return ct.DecodeTable().Decode(bits)
}

// String returns a brief description of this CodeTable.
func (ct CodeTable[S]) String() string {
	return fmt.Sprintf("(Huffman code with %d symbols, with coded lengths of %d .. %d bits)", len(ct.order), ct.minSize, ct.maxSize)
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct CodeTable[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.order {
		fmt.Fprintf(&buf, "\tCode(%v) = %s\n", symbol, ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = CodeTable[int]{}
