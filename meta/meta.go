// meta/meta.go
package meta

import "time"

// MinDepth and MaxDepth bound the tree search depth.
const (
	MinDepth = 1
	MaxDepth = 10
)

// DefaultDepth is used when no depth is configured.
const DefaultDepth = 5

// DefaultHeuristic names the evaluator used when none is configured.
const DefaultHeuristic = "korman"

// VerificationTimeout is the budget for checking a board is reachable.
const VerificationTimeout = 5 * time.Second

// DefaultEpisodes is the MCTS budget per move for "mcts" players.
const DefaultEpisodes = 2000
