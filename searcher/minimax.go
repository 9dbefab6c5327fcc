package searcher

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"othello/game"
	"othello/heuristic"
)

// Minimax searches the full game tree to a fixed depth.
type Minimax struct {
	heuristic heuristic.Heuristic
	depth     int
	metrics   Collector
}

// NewMinimax panics if depth is not positive.
func NewMinimax(h heuristic.Heuristic, depth int, opts ...Option) *Minimax {
	requireDepth(depth)
	o := buildOptions(opts)
	return &Minimax{heuristic: h, depth: depth, metrics: o.metrics}
}

func (m *Minimax) String() string {
	return fmt.Sprintf("minimax(%s, %d)", m.heuristic, m.depth)
}

func (m *Minimax) Decide(state game.GameState) game.Position {
	return m.Search(state).Move
}

func (m *Minimax) Search(state game.GameState) Result {
	requireOngoing(state)
	start := time.Now()

	var visited int64 = 1
	maximizing := isMaximizing(state)
	moves := state.Moves()
	best := Result{Move: moves[0]}
	for i, move := range moves {
		v := m.value(state.MakeMove(move), m.depth-1, &visited)
		if i == 0 || better(maximizing, v, best.Value) {
			best.Move, best.Value = move, v
		}
	}
	best.Visited = visited

	elapsed := time.Since(start)
	m.metrics.AddDecision(visited, elapsed)
	log.Debug().
		Stringer("strategy", m).
		Stringer("move", best.Move).
		Float64("value", best.Value).
		Int64("visited", visited).
		Dur("elapsed", elapsed).
		Msg("search complete")
	return best
}

func (m *Minimax) value(state game.GameState, depth int, visited *int64) float64 {
	*visited++
	if outcome, over := state.Outcome(); over {
		return terminalValue(outcome)
	}
	if depth == 0 {
		return m.heuristic.Evaluate(state)
	}

	maximizing := isMaximizing(state)
	var best float64
	for i, move := range state.Moves() {
		v := m.value(state.MakeMove(move), depth-1, visited)
		if i == 0 || better(maximizing, v, best) {
			best = v
		}
	}
	return best
}
