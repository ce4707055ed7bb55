package huffman

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Bit is a single binary digit.  Only 0 and 1 are valid.
type Bit byte

const (
	Zero Bit = 0
	One  Bit = 1
)

// Valid returns true iff this Bit is 0 or 1.
func (b Bit) Valid() bool {
	return b <= One
}

// Code represents a sequence of bits.  The first element is the first bit
// written to, or read from, a stream.
type Code []Bit

// MakeCode is a convenience function that constructs a Code from a string of
// '0' and '1' characters.  It panics on any other character; see ParseCode.
func MakeCode(digits string) Code {
	hc, err := ParseCode(digits)
	if err != nil {
		panic(err)
	}
	return hc
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(digits string) (Code, error) {
	hc := make(Code, len(digits))
	for i := 0; i < len(digits); i++ {
		switch digits[i] {
		case '0':
			hc[i] = Zero
		case '1':
			hc[i] = One
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, digits[i], i)
		}
	}
	return hc, nil
}

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// Valid returns true iff every Bit in this Code is valid.
func (hc Code) Valid() bool {
	for _, b := range hc {
		if !b.Valid() {
			return false
		}
	}
	return true
}

// HasPrefix returns true iff prefix is a prefix of this Code.  Every Code is
// a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	return len(prefix) <= len(hc) && slices.Equal(hc[:len(prefix)], prefix)
}

// Equal returns true iff both Codes hold the same bits.
func (hc Code) Equal(other Code) bool {
	return slices.Equal(hc, other)
}

// Clone returns a copy of this Code that shares no storage with it.
func (hc Code) Clone() Code {
	if hc == nil {
		return nil
	}
	return slices.Clone(hc)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.digits())
}

var _ fmt.Stringer = Code(nil)

// digits renders the Code as '0' and '1' characters.  Invalid bits are
// rendered as '?'.  The result doubles as the DecodeTable lookup key.
func (hc Code) digits() string {
	var sb strings.Builder
	sb.Grow(len(hc))
	for _, b := range hc {
		switch b {
		case Zero:
			sb.WriteByte('0')
		case One:
			sb.WriteByte('1')
		default:
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for k := range a {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return false
}

var _ sort.Interface = byCode(nil)

// }}}
