package huffman

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/exp/slices"
)

func makeTestTable() CodeTable[int] {
	ft, err := NewFrequencyTable([]int{0, 1, 2, 3, 4, 5}, []uint64{5, 9, 12, 13, 16, 45})
	if err != nil {
		panic(err)
	}
	ct, err := BuildFromFrequencies(ft)
	if err != nil {
		panic(err)
	}
	return ct
}

func TestCodeTable_Dump(t *testing.T) {
	ct := makeTestTable()

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tCode(5) = \"0\"\n",
		"\tCode(2) = \"100\"\n",
		"\tCode(3) = \"101\"\n",
		"\tCode(0) = \"1100\"\n",
		"\tCode(1) = \"1101\"\n",
		"\tCode(4) = \"111\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ct.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestCodeTable_String(t *testing.T) {
	ct := makeTestTable()

	expectString := "(Huffman code with 6 symbols, with coded lengths of 1 .. 4 bits)"
	actualString := ct.String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}

func TestEncoder_Encode(t *testing.T) {
	e := NewEncoder(makeTestTable())

	type testRow struct {
		name  string
		input []int
		bits  string
	}

	testData := [...]testRow{
		{name: "empty", input: nil, bits: ""},
		{name: "one", input: []int{5}, bits: "0"},
		{name: "longest", input: []int{0, 1}, bits: "11001101"},
		{name: "mixed", input: []int{5, 2, 4, 5, 3}, bits: "01001110101"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual, err := e.Encode(row.input)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			expect := MakeCode(row.bits)
			if !Code(actual).Equal(expect) {
				t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", expect, Code(actual))
			}
		})
	}
}

func TestEncoder_AppendEncode(t *testing.T) {
	e := NewEncoder(makeTestTable())

	prefix := []Bit{One, One}
	actual, err := e.AppendEncode(prefix, []int{5, 4})
	if err != nil {
		t.Fatalf("AppendEncode failed: %v", err)
	}
	expect := MakeCode("110111")
	if !Code(actual).Equal(expect) {
		t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", expect, Code(actual))
	}

	unchanged, err := e.AppendEncode(prefix, []int{5, 99})
	if err == nil {
		t.Fatalf("AppendEncode succeeded with an unknown symbol")
	}
	if !slices.Equal(unchanged, prefix) {
		t.Errorf("AppendEncode modified dst on failure: %v", unchanged)
	}
}

func TestEncoder_UnknownSymbol(t *testing.T) {
	ct, err := Build([]string{"a", "b"})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	bits, err := ct.Encode([]string{"a", "c", "b"})
	if bits != nil {
		t.Errorf("expected no output, got %v", bits)
	}
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}

	var use *UnknownSymbolError
	if !errors.As(err, &use) {
		t.Fatalf("expected *UnknownSymbolError, got %T", err)
	}
	if use.Symbol != "c" || use.Index != 1 {
		t.Errorf("wrong error details: symbol %v, index %d", use.Symbol, use.Index)
	}

	_, err = NewEncoder(ct).EncodeSymbol("c")
	if !errors.As(err, &use) {
		t.Fatalf("expected *UnknownSymbolError from EncodeSymbol, got %v", err)
	}
	if use.Index != -1 {
		t.Errorf("expected index -1 for a lone symbol, got %d", use.Index)
	}
	if expect, actual := "huffman: unknown symbol c", err.Error(); expect != actual {
		t.Errorf("wrong message:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}
