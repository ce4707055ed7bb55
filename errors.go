package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCorpus is returned when asked to build a code from zero
	// symbols.
	ErrEmptyCorpus = errors.New("huffman: empty corpus")

	// ErrUnknownSymbol is matched by *UnknownSymbolError.
	ErrUnknownSymbol = errors.New("huffman: unknown symbol")

	// ErrTruncatedStream is matched by *TruncatedStreamError.
	ErrTruncatedStream = errors.New("huffman: truncated stream")

	// ErrCorruptStream is matched by *CorruptStreamError.
	ErrCorruptStream = errors.New("huffman: corrupt stream")

	ErrInvalidBit         = errors.New("huffman: invalid bit")
	ErrEmptyCode          = errors.New("huffman: empty code")
	ErrNotPrefixFree      = errors.New("huffman: code is not prefix-free")
	ErrInvalidFrequencies = errors.New("huffman: invalid frequencies")
)

// UnknownSymbolError is returned by Encoder when the input contains a symbol
// that has no code in the table.
type UnknownSymbolError struct {
	// Symbol is the offending symbol.
	Symbol interface{}

	// Index is the offset of Symbol within the input sequence, or -1 if
	// the symbol was given on its own.
	Index int
}

func (err *UnknownSymbolError) Error() string {
	if err.Index < 0 {
		return fmt.Sprintf("huffman: unknown symbol %v", err.Symbol)
	}
	return fmt.Sprintf("huffman: unknown symbol %v at index %d", err.Symbol, err.Index)
}

func (err *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

// TruncatedStreamError is returned by Decoder when the input ends partway
// through a code.
type TruncatedStreamError struct {
	// Pending holds the bits read since the last complete code.
	Pending Code

	// Decoded is the number of symbols decoded before the truncation.
	Decoded int
}

func (err *TruncatedStreamError) Error() string {
	return fmt.Sprintf("huffman: truncated stream: %d trailing bits %s after %d symbols", len(err.Pending), err.Pending, err.Decoded)
}

func (err *TruncatedStreamError) Is(target error) bool {
	return target == ErrTruncatedStream
}

// CorruptStreamError is returned by Decoder when the bits read since the last
// complete code are not a prefix of any code in the table.  This can only
// happen with a table whose coding tree is not full.
type CorruptStreamError struct {
	// Pending holds the bits read since the last complete code, including
	// the bit that made the sequence invalid.
	Pending Code

	// Offset is the offset of the offending bit within the stream.
	Offset int
}

func (err *CorruptStreamError) Error() string {
	return fmt.Sprintf("huffman: corrupt stream: no code begins with %s (bit offset %d)", err.Pending, err.Offset)
}

func (err *CorruptStreamError) Is(target error) bool {
	return target == ErrCorruptStream
}

var (
	_ error = (*UnknownSymbolError)(nil)
	_ error = (*TruncatedStreamError)(nil)
	_ error = (*CorruptStreamError)(nil)
)
