package game

const (
	BoardSide    = 8
	BoardSquares = BoardSide * BoardSide
)

const (
	colNotation = "ABCDEFGH"
	rowNotation = "12345678"
)

// Position is a square index in 0..63, row-major from A1.
type Position uint8

// ParsePosition reads algebraic notation such as "D3".
func ParsePosition(notation string) (Position, bool) {
	if len(notation) != 2 {
		return 0, false
	}
	col := indexOf(colNotation, notation[0])
	row := indexOf(rowNotation, notation[1])
	if col < 0 || row < 0 {
		return 0, false
	}
	return Position(row*BoardSide + col), true
}

// MustParsePosition is ParsePosition for notation known to be valid.
func MustParsePosition(notation string) Position {
	p, ok := ParsePosition(notation)
	if !ok {
		panic("invalid position notation: " + notation)
	}
	return p
}

func indexOf(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

func (p Position) Row() int {
	return int(p) / BoardSide
}

func (p Position) Col() int {
	return int(p) % BoardSide
}

func (p Position) Valid() bool {
	return p < BoardSquares
}

// Neighbours lists the squares adjacent to p.
func (p Position) Neighbours() []Position {
	return Neighbours(Bit(p)).Positions()
}

func (p Position) String() string {
	if !p.Valid() {
		return "??"
	}
	return string([]byte{colNotation[p.Col()], rowNotation[p.Row()]})
}
