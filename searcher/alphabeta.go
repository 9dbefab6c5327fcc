package searcher

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"othello/game"
	"othello/heuristic"
)

// AlphaBeta is Minimax with fail-soft alpha-beta pruning. It chooses the same
// move as Minimax for the same heuristic and depth.
type AlphaBeta struct {
	heuristic heuristic.Heuristic
	depth     int
	metrics   Collector
}

// NewAlphaBeta panics if depth is not positive.
func NewAlphaBeta(h heuristic.Heuristic, depth int, opts ...Option) *AlphaBeta {
	requireDepth(depth)
	o := buildOptions(opts)
	return &AlphaBeta{heuristic: h, depth: depth, metrics: o.metrics}
}

func (a *AlphaBeta) String() string {
	return fmt.Sprintf("alphabeta(%s, %d)", a.heuristic, a.depth)
}

func (a *AlphaBeta) Decide(state game.GameState) game.Position {
	return a.Search(state).Move
}

func (a *AlphaBeta) Search(state game.GameState) Result {
	requireOngoing(state)
	start := time.Now()

	var visited int64 = 1
	alpha, beta := minValue, maxValue
	maximizing := isMaximizing(state)
	moves := state.Moves()
	best := Result{Move: moves[0]}
	for i, move := range moves {
		v := a.value(state.MakeMove(move), a.depth-1, alpha, beta, &visited)
		if i == 0 || better(maximizing, v, best.Value) {
			best.Move, best.Value = move, v
		}
		if maximizing {
			alpha = math.Max(alpha, best.Value)
		} else {
			beta = math.Min(beta, best.Value)
		}
		if beta <= alpha {
			break
		}
	}
	best.Visited = visited

	elapsed := time.Since(start)
	a.metrics.AddDecision(visited, elapsed)
	log.Debug().
		Stringer("strategy", a).
		Stringer("move", best.Move).
		Float64("value", best.Value).
		Int64("visited", visited).
		Dur("elapsed", elapsed).
		Msg("search complete")
	return best
}

func (a *AlphaBeta) value(state game.GameState, depth int, alpha, beta float64, visited *int64) float64 {
	*visited++
	if outcome, over := state.Outcome(); over {
		return terminalValue(outcome)
	}
	if depth == 0 {
		return a.heuristic.Evaluate(state)
	}

	maximizing := isMaximizing(state)
	var best float64
	for i, move := range state.Moves() {
		v := a.value(state.MakeMove(move), depth-1, alpha, beta, visited)
		if i == 0 || better(maximizing, v, best) {
			best = v
		}
		if maximizing {
			alpha = math.Max(alpha, best)
		} else {
			beta = math.Min(beta, best)
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
