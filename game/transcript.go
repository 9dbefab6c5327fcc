package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadTranscript = errors.New("bad transcript")

// ParseTranscript reads a move list such as "E6F4E3" or "E6, F4, E3".
func ParseTranscript(transcript string) ([]Position, error) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case ',', ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, strings.ToUpper(transcript))

	if len(compact)%2 != 0 {
		return nil, fmt.Errorf("odd transcript length %d: %w", len(compact), ErrBadTranscript)
	}

	moves := make([]Position, 0, len(compact)/2)
	for i := 0; i < len(compact); i += 2 {
		p, ok := ParsePosition(compact[i : i+2])
		if !ok {
			return nil, fmt.Errorf("invalid move %q at ply %d: %w", compact[i:i+2], i/2+1, ErrBadTranscript)
		}
		moves = append(moves, p)
	}
	return moves, nil
}

// Replay plays moves from start, rejecting illegal moves and moves made
// after the game is over.
func Replay(start GameState, moves []Position) (GameState, error) {
	gs := start
	for i, move := range moves {
		if _, over := gs.Outcome(); over {
			return gs, fmt.Errorf("move %s at ply %d after game over: %w", move, i+1, ErrBadTranscript)
		}
		if !gs.IsLegal(move) {
			return gs, fmt.Errorf("illegal move %s at ply %d: %w", move, i+1, ErrBadTranscript)
		}
		gs = gs.MakeMove(move)
	}
	return gs, nil
}
