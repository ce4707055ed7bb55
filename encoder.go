package huffman

// Encoder encodes symbol sequences into bits using a CodeTable.
//
// An Encoder holds no per-stream state, so one Encoder may be used from many
// goroutines at once.
type Encoder[S Symbol] struct {
	table CodeTable[S]
}

// NewEncoder returns an Encoder for the given table.
func NewEncoder[S Symbol](table CodeTable[S]) Encoder[S] {
	return Encoder[S]{table: table}
}

// Table returns the CodeTable used by this Encoder.
func (e Encoder[S]) Table() CodeTable[S] {
	return e.table
}

// Encode returns the concatenation of the codes for each symbol in seq.
//
// If seq contains a symbol with no code in the table, Encode returns nil and
// an *UnknownSymbolError.
//
func (e Encoder[S]) Encode(seq []S) ([]Bit, error) {
	return e.AppendEncode(nil, seq)
}

// AppendEncode is like Encode, but appends the bits to dst.  On failure, dst
// is returned with its original length.
func (e Encoder[S]) AppendEncode(dst []Bit, seq []S) ([]Bit, error) {
	// Check everything first so that a failure leaves nothing behind.
	size := 0
	for index, symbol := range seq {
		hc, found := e.table.codes[symbol]
		if !found {
			return dst, &UnknownSymbolError{Symbol: symbol, Index: index}
		}
		size += len(hc)
	}

	if cap(dst)-len(dst) < size {
		grown := make([]Bit, len(dst), len(dst)+size)
		copy(grown, dst)
		dst = grown
	}
	for _, symbol := range seq {
		dst = append(dst, e.table.codes[symbol]...)
	}
	return dst, nil
}

// EncodeSymbol returns the code for a single symbol.  The returned Code must
// not be modified.
func (e Encoder[S]) EncodeSymbol(symbol S) (Code, error) {
	hc, found := e.table.codes[symbol]
	if !found {
		return nil, &UnknownSymbolError{Symbol: symbol, Index: -1}
	}
	return hc, nil
}
