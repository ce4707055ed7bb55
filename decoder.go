package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// DecodeTable is the inverse of a CodeTable: it maps codes back to symbols.
//
// Besides the codes themselves, it records every proper prefix of every code
// together with the shortest and longest codes that begin with it.  This
// lets a Decoder tell "need more bits" apart from "no such code".
//
// A DecodeTable is never modified after construction and may be shared
// between goroutines.
type DecodeTable[S Symbol] struct {
	table      map[string]decoderData[S]
	numSymbols int
	minSize    int
	maxSize    int
}

// DecodeTable builds the DecodeTable for this CodeTable.  The result does not
// share storage with ct.
func (ct CodeTable[S]) DecodeTable() DecodeTable[S] {
	numSymbols := len(ct.order)
	if numSymbols == 0 {
		return DecodeTable[S]{}
	}

	// len(table) is approximately n×log2(n) when filled.
	numTableSlots := numSymbols * log2int(numSymbols)

	dt := DecodeTable[S]{
		table:      make(map[string]decoderData[S], numTableSlots),
		numSymbols: numSymbols,
		minSize:    ct.minSize,
		maxSize:    ct.maxSize,
	}
	for _, symbol := range ct.order {
		fillTable(dt.table, symbol, ct.codes[symbol])
	}
	return dt
}

// Lookup attempts to decode a Code into a symbol.
//
// If hc is a complete code, found is true and minSize == maxSize == hc.Size().
//
// If hc is a proper prefix of one or more codes, found is false and between
// (minSize - hc.Size()) and (maxSize - hc.Size()) additional bits are
// required to decode a symbol.
//
// If hc is neither, found is false and minSize == maxSize == 0.
//
func (dt DecodeTable[S]) Lookup(hc Code) (symbol S, found bool, minSize int, maxSize int) {
	dd := dt.table[hc.digits()]
	return dd.symbol, dd.found, dd.minSize, dd.maxSize
}

// Len returns the number of symbols in the table.
func (dt DecodeTable[S]) Len() int {
	return dt.numSymbols
}

// MinSize is the bit length of the shortest code.
func (dt DecodeTable[S]) MinSize() int {
	return dt.minSize
}

// MaxSize is the bit length of the longest code.
func (dt DecodeTable[S]) MaxSize() int {
	return dt.maxSize
}

// Decode decodes a complete bit sequence.
//
// If bits ends partway through a code, Decode returns a *TruncatedStreamError.
// If bits contains a sequence that no code begins with, Decode returns a
// *CorruptStreamError.  No symbols are returned on failure.
//
func (dt DecodeTable[S]) Decode(bits []Bit) ([]S, error) {
	capacity := len(bits)
	if dt.minSize > 1 {
		capacity /= dt.minSize
	}

	d := NewDecoder(dt)
	out := make([]S, 0, capacity)
	for _, b := range bits {
		symbol, ok, err := d.WriteBit(b)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, symbol)
		}
	}
	if err := d.Close(); err != nil {
		return nil, err
	}
	return out, nil
}

// Dump writes a programmer-readable debugging dump of the DecodeTable to the
// given writer.
func (dt DecodeTable[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("DecodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", dt.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", dt.maxSize)
	keys := make(byCode, 0, len(dt.table))
	for key := range dt.table {
		keys = append(keys, MakeCode(key))
	}
	keys.Sort()
	for _, hc := range keys {
		dd := dt.table[hc.digits()]
		if dd.found {
			fmt.Fprintf(&buf, "\tLookup(%s) = {%v, %d, %d}\n", hc, dd.symbol, dd.minSize, dd.maxSize)
		} else {
			fmt.Fprintf(&buf, "\tLookup(%s) = {-, %d, %d}\n", hc, dd.minSize, dd.maxSize)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type decoderData[S Symbol] struct {
	symbol  S
	found   bool
	minSize int
	maxSize int
}

func fillTable[S Symbol](table map[string]decoderData[S], symbol S, hc Code) {
	key := hc.digits()
	_, exists := table[key]
	assert.Assertf(!exists, "code %s for symbol %v collides with another code or is a prefix of one", hc, symbol)

	dd := decoderData[S]{symbol: symbol, found: true, minSize: len(hc), maxSize: len(hc)}
	table[key] = dd

	for size := len(hc) - 1; size >= 0; size-- {
		key = key[:size]

		// Widen the parent's range to cover the child's.

		ddNew := decoderData[S]{minSize: dd.minSize, maxSize: dd.maxSize}
		if ddOld, found := table[key]; found {
			assert.Assertf(!ddOld.found, "code %q for symbol %v is a prefix of code %s", key, ddOld.symbol, hc)
			if ddNew.minSize > ddOld.minSize {
				ddNew.minSize = ddOld.minSize
			}
			if ddNew.maxSize < ddOld.maxSize {
				ddNew.maxSize = ddOld.maxSize
			}

			// If table[key] already equals ddNew, so do all of
			// its ancestors.

			if ddOld == ddNew {
				break
			}
		}

		table[key] = ddNew
		dd = ddNew
	}
}

// Decoder decodes a bit stream one bit at a time.
//
// It accumulates bits until they spell out a complete code, then emits the
// corresponding symbol and starts over.  Because codes are prefix-free, a
// complete code is never the beginning of a longer one, so no lookahead or
// backtracking is needed.
//
// A Decoder holds per-stream state and must not be used from more than one
// goroutine at a time.  Use one Decoder per stream.
type Decoder[S Symbol] struct {
	table   DecodeTable[S]
	pending []byte
	offset  int
	decoded int
}

// NewDecoder returns a Decoder that reads codes from the given table.
func NewDecoder[S Symbol](table DecodeTable[S]) *Decoder[S] {
	return &Decoder[S]{table: table}
}

// WriteBit feeds one bit to the Decoder.  If the bit completes a code, the
// decoded symbol is returned with ok set to true.
//
// If the bits since the last complete code are not the beginning of any code,
// WriteBit returns a *CorruptStreamError and discards them.
//
func (d *Decoder[S]) WriteBit(b Bit) (symbol S, ok bool, err error) {
	offset := d.offset
	switch b {
	case Zero:
		d.pending = append(d.pending, '0')
	case One:
		d.pending = append(d.pending, '1')
	default:
		return symbol, false, fmt.Errorf("%w: %d at bit offset %d", ErrInvalidBit, b, offset)
	}
	d.offset++

	dd := d.table.table[string(d.pending)]
	if dd.found {
		d.pending = d.pending[:0]
		d.decoded++
		return dd.symbol, true, nil
	}
	if dd.maxSize == 0 {
		err = &CorruptStreamError{Pending: d.Pending(), Offset: offset}
		d.pending = d.pending[:0]
		return symbol, false, err
	}
	return symbol, false, nil
}

// Pending returns the bits written since the last complete code.
func (d *Decoder[S]) Pending() Code {
	if len(d.pending) == 0 {
		return nil
	}
	return MakeCode(string(d.pending))
}

// Decoded returns the number of symbols decoded so far.
func (d *Decoder[S]) Decoded() int {
	return d.decoded
}

// Close marks the end of the stream.  If the stream ended partway through a
// code, Close returns a *TruncatedStreamError holding the leftover bits.
//
// Either way, the Decoder is reset and may be reused for another stream.
//
func (d *Decoder[S]) Close() error {
	var err error
	if len(d.pending) != 0 {
		err = &TruncatedStreamError{Pending: d.Pending(), Decoded: d.decoded}
	}
	d.Reset()
	return err
}

// Reset discards all state, preparing the Decoder for a new stream.
func (d *Decoder[S]) Reset() {
	d.pending = d.pending[:0]
	d.offset = 0
	d.decoded = 0
}
