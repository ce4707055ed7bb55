package huffman

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// FrequencyTable maps each distinct symbol of a corpus to its number of
// occurrences.  It also remembers the order in which symbols first appeared,
// which BuildTree uses to break ties between equal frequencies.
//
// The zero value is an empty table.  A FrequencyTable is never modified after
// construction and may be shared between goroutines.
type FrequencyTable[S Symbol] struct {
	counts map[S]uint64
	order  []S
	total  uint64
}

// CountFrequencies tallies the occurrences of each distinct symbol in seq.
// An empty seq yields an empty table.
func CountFrequencies[S Symbol](seq []S) FrequencyTable[S] {
	var ft FrequencyTable[S]
	for _, symbol := range seq {
		if ft.counts == nil {
			ft.counts = make(map[S]uint64)
		}
		if _, found := ft.counts[symbol]; !found {
			ft.order = append(ft.order, symbol)
		}
		ft.counts[symbol]++
	}
	ft.total = uint64(len(seq))
	return ft
}

// NewFrequencyTable constructs a FrequencyTable from explicit counts.
// counts[i] is the frequency of symbols[i], and symbols are ordered as given.
// Every count must be positive and every symbol must be distinct.
//
func NewFrequencyTable[S Symbol](symbols []S, counts []uint64) (FrequencyTable[S], error) {
	if len(symbols) != len(counts) {
		return FrequencyTable[S]{}, fmt.Errorf("%w: %d symbols but %d counts", ErrInvalidFrequencies, len(symbols), len(counts))
	}

	ft := FrequencyTable[S]{
		counts: make(map[S]uint64, len(symbols)),
		order:  slices.Clone(symbols),
	}
	for index, symbol := range symbols {
		count := counts[index]
		if count == 0 {
			return FrequencyTable[S]{}, fmt.Errorf("%w: symbol %v has a count of 0", ErrInvalidFrequencies, symbol)
		}
		if _, found := ft.counts[symbol]; found {
			return FrequencyTable[S]{}, fmt.Errorf("%w: duplicate symbol %v", ErrInvalidFrequencies, symbol)
		}
		ft.counts[symbol] = count
		ft.total = saturatingAdd(ft.total, count)
	}
	return ft, nil
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable[S]) Len() int {
	return len(ft.order)
}

// Count returns the number of occurrences of symbol, or 0 if it never
// appeared.
func (ft FrequencyTable[S]) Count(symbol S) uint64 {
	return ft.counts[symbol]
}

// Total returns the sum of all counts, i.e. the length of the corpus.
func (ft FrequencyTable[S]) Total() uint64 {
	return ft.total
}

// Symbols returns the distinct symbols in order of first appearance.
func (ft FrequencyTable[S]) Symbols() []S {
	return slices.Clone(ft.order)
}
