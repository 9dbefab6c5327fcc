package searcher

import "math"

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const (
	Win  = 1.0
	Draw = 0.5
	Loss = 0.0
)

// ucb scores a visited child: q/n + sqrt(c^2*ln(N)/n), with the ln(N) term
// precomputed by the parent.
func ucb(rewards, visits, c2LnN float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return rewards/visits + math.Sqrt(c2LnN/visits)
}
