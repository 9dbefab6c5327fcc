package game

// Dumb7Fill over the eight compass directions. Rows grow towards the south,
// so south is +8 and east is +1 in square index.
// https://www.chessprogramming.org/Dumb7Fill

type direction int

const (
	north direction = iota
	northEast
	east
	southEast
	south
	southWest
	west
	northWest
)

var directions = [8]direction{north, northEast, east, southEast, south, southWest, west, northWest}

const (
	notAFile Bitboard = 0xFEFEFEFEFEFEFEFE
	notHFile Bitboard = 0x7F7F7F7F7F7F7F7F
)

func (d direction) opposite() direction {
	return (d + 4) % 8
}

// shift moves every square of b one step towards d, dropping squares that
// would wrap around a file edge.
func shift(b Bitboard, d direction) Bitboard {
	switch d {
	case north:
		return b >> 8
	case northEast:
		return (b >> 7) & notAFile
	case east:
		return (b << 1) & notAFile
	case southEast:
		return (b << 9) & notAFile
	case south:
		return b << 8
	case southWest:
		return (b << 7) & notHFile
	case west:
		return (b >> 1) & notHFile
	case northWest:
		return (b >> 9) & notHFile
	default:
		panic("unknown direction")
	}
}

// fill slides gen towards d through contiguous squares of pro and returns
// the squares reached, excluding gen itself.
func fill(gen, pro Bitboard, d direction) Bitboard {
	gen = shift(gen, d) & pro
	result := gen
	// a line holds at most six squares between two others
	for i := 0; i < 5; i++ {
		gen = shift(gen, d) & pro
		result |= gen
	}
	return result
}
