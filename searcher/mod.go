// Package searcher implements move selection strategies: exhaustive game
// tree search, naive baselines and Monte-Carlo tree search.
package searcher

import (
	"fmt"
	"math"

	"othello/game"
	"othello/heuristic"
)

// Strategy picks a legal move for the side to move. Decide must not be called
// on a terminal state.
type Strategy interface {
	fmt.Stringer
	Decide(state game.GameState) game.Position
}

// Searcher is a Strategy that also reports how it reached its choice.
type Searcher interface {
	Strategy
	Search(state game.GameState) Result
}

// Result is one search outcome. Value is from heuristic.MaxPlayer's point of
// view for tree search and the chosen child's mean reward for MCTS.
type Result struct {
	Move    game.Position
	Value   float64
	Visited int64
}

var (
	maxValue = math.Inf(1)
	minValue = math.Inf(-1)
)

// terminalValue ranks decided games above and below any heuristic score.
func terminalValue(outcome game.Outcome) float64 {
	winner, ok := outcome.Winner()
	switch {
	case !ok:
		return 0
	case winner == heuristic.MaxPlayer:
		return maxValue
	default:
		return minValue
	}
}

func isMaximizing(state game.GameState) bool {
	return state.Turn() == heuristic.MaxPlayer
}

// better reports whether v replaces best; ties keep the earlier move.
func better(maximizing bool, v, best float64) bool {
	if maximizing {
		return v > best
	}
	return v < best
}

func requireOngoing(state game.GameState) {
	if _, over := state.Outcome(); over {
		panic("cannot decide a move in a finished game")
	}
}

func requireDepth(depth int) {
	if depth < 1 {
		panic(fmt.Sprintf("search depth must be positive, got %d", depth))
	}
}
