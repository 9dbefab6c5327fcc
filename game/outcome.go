package game

// Outcome is the result of a finished game.
type Outcome uint8

const (
	BlackWins Outcome = iota + 1
	WhiteWins
	Draw
)

// WinnerOutcome returns the outcome in which player wins.
func WinnerOutcome(player Player) Outcome {
	if player == Black {
		return BlackWins
	}
	return WhiteWins
}

// Winner returns the winning player, or false for a draw.
func (o Outcome) Winner() (Player, bool) {
	switch o {
	case BlackWins:
		return Black, true
	case WhiteWins:
		return White, true
	default:
		return 0, false
	}
}

func (o Outcome) String() string {
	if winner, ok := o.Winner(); ok {
		return winner.String()
	}
	return "Draw"
}
