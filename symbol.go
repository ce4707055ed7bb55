package huffman

// Symbol is the constraint satisfied by symbols in an alphabet.  Any
// comparable type will do: bytes, runes, strings, graph node identifiers.
// No ordering between symbols is required.
type Symbol interface {
	comparable
}
