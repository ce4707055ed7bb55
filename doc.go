// Package huffman builds and applies Huffman prefix codes over arbitrary
// comparable symbols.
//
// A CodeTable is derived from a corpus by counting symbol frequencies,
// building a coding tree by repeatedly merging the two least frequent nodes,
// and walking the tree to assign each symbol its bit sequence.  The table
// can then encode symbol sequences into bits, and decode them back.
//
// Bits are logical binary digits, one Bit per element.  Packing them into
// bytes is left to the caller.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
