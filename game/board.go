package game

import "strings"

// Board string encoding: 64 characters row-major from A1, '0' empty,
// '1' Black, '2' White.

// ParseBoard decodes a board string. The side to move is inferred from the
// parity of occupied squares and then pass corrected. ok is false for any
// string that is not exactly 64 characters over {'0','1','2'}.
func ParseBoard(s string) (gs GameState, ok bool) {
	if len(s) != BoardSquares {
		return GameState{}, false
	}

	var black, white Bitboard
	for i := 0; i < BoardSquares; i++ {
		switch s[i] {
		case '0':
		case '1':
			black |= Bit(Position(i))
		case '2':
			white |= Bit(Position(i))
		default:
			return GameState{}, false
		}
	}

	turn := Black
	if (black|white).Count()%2 == 1 {
		turn = White
	}
	gs = GameState{turn: turn, black: black, white: white}
	gs.passIfRequired()
	return gs, true
}

// BoardString encodes the discs of gs. The side to move is not encoded.
func (gs GameState) BoardString() string {
	var sb strings.Builder
	sb.Grow(BoardSquares)
	for i := 0; i < BoardSquares; i++ {
		switch owner, ok := gs.At(Position(i)); {
		case !ok:
			sb.WriteByte('0')
		case owner == Black:
			sb.WriteByte('1')
		default:
			sb.WriteByte('2')
		}
	}
	return sb.String()
}

// StripBoard keeps only the board alphabet from free-form input, so a board
// pasted as eight lines with spacing can be fed to ParseBoard.
func StripBoard(input string) string {
	var sb strings.Builder
	for i := 0; i < len(input); i++ {
		switch c := input[i]; c {
		case '0', '1', '2':
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
