package game

import "math/bits"

// Bitboard holds one color's occupancy, bit i set iff square i is taken.
type Bitboard uint64

const (
	Empty  Bitboard = 0x0000000000000000
	Full   Bitboard = ^Empty
	Center Bitboard = 0x0000001818000000
	// Corners are A1, H1, A8 and H8.
	Corners  Bitboard = 0x8100000000000081
	Edges    Bitboard = 0xFF818181818181FF
	Internal Bitboard = ^Edges

	OthelloBlackStart Bitboard = 0x0000000810000000 // E4, D5
	OthelloWhiteStart Bitboard = 0x0000001008000000 // D4, E5
)

// Bit returns the single-square bitboard for p.
func Bit(p Position) Bitboard {
	return 1 << p
}

func (b Bitboard) Has(p Position) bool {
	return b&Bit(p) != Empty
}

func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Positions lists the set squares in ascending index order.
func (b Bitboard) Positions() []Position {
	positions := make([]Position, 0, b.Count())
	for b != Empty {
		i := bits.TrailingZeros64(uint64(b))
		positions = append(positions, Position(i))
		b &= b - 1
	}
	return positions
}

// ValidMoves returns every square the owner of current may play on.
func ValidMoves(current, opponent Bitboard) Bitboard {
	occupied := current | opponent
	if occupied.Count() < 4 {
		// Reversi opening: the first four discs fill the center without flips
		return Center &^ occupied
	}

	var moves Bitboard
	for _, d := range directions {
		moves |= shift(fill(current, opponent, d), d)
	}
	return moves &^ occupied
}

// PotentialMoves returns the empty squares adjacent to an opponent disc.
func PotentialMoves(current, opponent Bitboard) Bitboard {
	return Neighbours(opponent) &^ (current | opponent)
}

// Neighbours returns every square one step away from a square of b.
func Neighbours(b Bitboard) Bitboard {
	var result Bitboard
	for _, d := range directions {
		result |= shift(b, d)
	}
	return result
}

// Flipped returns the opponent discs captured by playing move.
func Flipped(move, current, opponent Bitboard) Bitboard {
	var flipped Bitboard
	for _, d := range directions {
		flipped |= fill(move, opponent, d) & fill(current, opponent, d.opposite())
	}
	return flipped
}

// Apply plays position for the owner of current and returns both updated
// bitboards. It panics if the move is not legal.
func Apply(position Position, current, opponent Bitboard) (Bitboard, Bitboard) {
	move := Bit(position)
	if ValidMoves(current, opponent)&move == Empty {
		panic("invalid move: " + position.String())
	}

	flipped := Flipped(move, current, opponent)
	current |= move | flipped
	opponent ^= flipped
	return current, opponent
}

// axes returns, per line through p, the on-board neighbours of p on that line.
func axes(p Position) [4]Bitboard {
	b := Bit(p)
	return [4]Bitboard{
		shift(b, north) | shift(b, south),
		shift(b, northEast) | shift(b, southWest),
		shift(b, east) | shift(b, west),
		shift(b, southEast) | shift(b, northWest),
	}
}

// lines returns, per line through p, every other square on that line.
func lines(p Position) [4]Bitboard {
	b := Bit(p)
	return [4]Bitboard{
		ray(b, north) | ray(b, south),
		ray(b, northEast) | ray(b, southWest),
		ray(b, east) | ray(b, west),
		ray(b, southEast) | ray(b, northWest),
	}
}

func ray(b Bitboard, d direction) Bitboard {
	var result Bitboard
	for b = shift(b, d); b != Empty; b = shift(b, d) {
		result |= b
	}
	return result
}
