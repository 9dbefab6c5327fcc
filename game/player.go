package game

// Player is a disc color. The values match the board string encoding.
type Player uint8

const (
	Black Player = 1
	White Player = 2
)

func (p Player) Opponent() Player {
	if p == Black {
		return White
	}
	return Black
}

func (p Player) String() string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Unknown"
	}
}
