package entity

type Cell uint8

const (
	Empty Cell = iota
	White
	Black
)

// IsColor - reports whether the cell holds a piece color rather than Empty.
func (that Cell) IsColor() bool {
	return that == White || that == Black
}

// Opponent - returns the opposite color. Empty has no opponent and maps to itself.
func (that Cell) Opponent() Cell {
	switch that {
	case White:
		return Black
	case Black:
		return White
	default:
		return Empty
	}
}

func (that Cell) String() string {
	switch that {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "empty"
	}
}

// Glyph - returns the textual mark of the cell: '.' for Empty, 'O' for White, 'X' for Black.
func (that Cell) Glyph() string {
	switch that {
	case White:
		return "O"
	case Black:
		return "X"
	default:
		return "."
	}
}

func cellFromGlyph(glyph rune) (Cell, bool) {
	switch glyph {
	case '.':
		return Empty, true
	case 'O':
		return White, true
	case 'X':
		return Black, true
	default:
		return Empty, false
	}
}
