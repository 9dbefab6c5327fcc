package game

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Reachability is the result of VerifyReachability.
type Reachability uint8

const (
	Indeterminate Reachability = iota
	Reachable
	Unreachable
)

func (r Reachability) String() string {
	switch r {
	case Reachable:
		return "reachable"
	case Unreachable:
		return "unreachable"
	default:
		return "indeterminate"
	}
}

// VerifyReachability searches for a sequence of legal moves leading from the
// empty board to the discs of gs. The side to move is not compared, since a
// decoded board string only guesses it. Only moves onto squares occupied in gs are explored,
// and discs that can never have been flipped must be placed by their owner.
// The search gives up with Indeterminate once timeout has elapsed.
func (gs GameState) VerifyReachability(timeout time.Duration) Reachability {
	start := time.Now()

	targets := gs.Occupied()
	originals := gs.originalDiscs()
	originalBlack := originals & gs.black

	stack := []GameState{ReversiInitial()}
	visited := map[GameState]struct{}{}
	explored := 0
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current.black == gs.black && current.white == gs.white {
			log.Debug().Int("explored", explored).Dur("elapsed", time.Since(start)).Msg("board reachable")
			return Reachable
		}
		if time.Since(start) >= timeout {
			log.Debug().Int("explored", explored).Dur("elapsed", time.Since(start)).Msg("reachability timed out")
			return Indeterminate
		}
		explored++

		// Only land on target squares, and never put an unflippable disc
		// down in the wrong color.
		candidates := current.MoveBitboard() & targets
		if current.turn == Black {
			candidates &^= originals &^ originalBlack
		} else {
			candidates &^= originalBlack
		}
		for _, move := range candidates.Positions() {
			next := current.MakeMove(move)
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			stack = append(stack, next)
		}
	}

	log.Debug().Int("explored", explored).Dur("elapsed", time.Since(start)).Msg("board unreachable")
	return Unreachable
}

// originalDiscs returns the discs that no move could ever have flipped:
// on every line through them at least one neighbour square is empty or off
// the board, so they were never bracketed.
func (gs GameState) originalDiscs() Bitboard {
	occupied := gs.Occupied()
	var originals Bitboard
	for _, p := range occupied.Positions() {
		original := true
		for _, axis := range axes(p) {
			if (axis & occupied).Count() == 2 {
				original = false
				break
			}
		}
		if original {
			originals |= Bit(p)
		}
	}
	return originals
}
