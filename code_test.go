package huffman

import (
	"errors"
	"testing"
)

func TestParseCode(t *testing.T) {
	hc, err := ParseCode("0110")
	if err != nil {
		t.Fatalf("ParseCode failed: %v", err)
	}
	expect := Code{Zero, One, One, Zero}
	if !hc.Equal(expect) {
		t.Errorf("wrong code:\n\texpect: %v\n\tactual: %v", expect, hc)
	}
	if hc.String() != `"0110"` {
		t.Errorf("wrong string: %s", hc.String())
	}

	_, err = ParseCode("01x")
	if !errors.Is(err, ErrInvalidBit) {
		t.Errorf("expected ErrInvalidBit, got %v", err)
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{code: "", prefix: "", expect: true},
		{code: "101", prefix: "", expect: true},
		{code: "101", prefix: "1", expect: true},
		{code: "101", prefix: "101", expect: true},
		{code: "101", prefix: "11", expect: false},
		{code: "10", prefix: "101", expect: false},
	}
	for _, row := range testData {
		actual := MakeCode(row.code).HasPrefix(MakeCode(row.prefix))
		if actual != row.expect {
			t.Errorf("%q.HasPrefix(%q): expect %v, actual %v", row.code, row.prefix, row.expect, actual)
		}
	}
}

func TestCode_Clone(t *testing.T) {
	hc := MakeCode("01")
	clone := hc.Clone()
	clone[0] = One
	if hc[0] != Zero {
		t.Errorf("Clone shares storage with the original")
	}
	if Code(nil).Clone() != nil {
		t.Errorf("Clone of nil should be nil")
	}
}
