package keyboard

// KeyPos locates one key as (row, col) in the 8x5 matrix.
type KeyPos struct{ Row, Col int }

// spectrumKeys maps every matrix key to its printed legend, per the fixed
// table spec.md §6 refers to ("mapped to host scancodes per a fixed
// table").
var spectrumKeys = map[byte]KeyPos{
	'1': {3, 0}, '2': {3, 1}, '3': {3, 2}, '4': {3, 3}, '5': {3, 4},
	'0': {4, 0}, '9': {4, 1}, '8': {4, 2}, '7': {4, 3}, '6': {4, 4},
	'q': {2, 0}, 'w': {2, 1}, 'e': {2, 2}, 'r': {2, 3}, 't': {2, 4},
	'p': {5, 0}, 'o': {5, 1}, 'i': {5, 2}, 'u': {5, 3}, 'y': {5, 4},
	'a': {1, 0}, 's': {1, 1}, 'd': {1, 2}, 'f': {1, 3}, 'g': {1, 4},
	'\n': {6, 0}, 'l': {6, 1}, 'k': {6, 2}, 'j': {6, 3}, 'h': {6, 4},
	'z': {0, 1}, 'x': {0, 2}, 'c': {0, 3}, 'v': {0, 4},
	' ': {7, 0}, 'm': {7, 2}, 'n': {7, 3}, 'b': {7, 4},
}

// KeyFor resolves a lowercased ASCII byte to its matrix position. Caps
// Shift (row 0 col 0) and Symbol Shift (row 7 col 1) are separate named
// positions since no single printable byte maps to them.
func KeyFor(b byte) (KeyPos, bool) {
	pos, ok := spectrumKeys[b]
	return pos, ok
}

// CapsShift and SymbolShift are the matrix positions of the two shift
// keys, set alongside a character's own position to type symbols and
// capitals.
var CapsShift = KeyPos{0, 0}
var SymbolShift = KeyPos{7, 1}
