package searcher

import (
	"sync"

	"golang.org/x/exp/rand"

	"othello/game"
)

// picker draws move indices from a seeded source or, without one, from the
// package-level generator.
type picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newPicker(seed []uint64) *picker {
	if len(seed) == 0 {
		return &picker{}
	}
	return &picker{rng: rand.New(rand.NewSource(seed[0]))}
}

func (p *picker) intn(n int) int {
	if p.rng == nil {
		return rand.Intn(n)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(n)
}

func (p *picker) pick(moves []game.Position) game.Position {
	return moves[p.intn(len(moves))]
}

// RandomMove plays a uniformly random legal move.
type RandomMove struct {
	picker *picker
}

// NewRandomMove uses the optional seed for reproducible games.
func NewRandomMove(seed ...uint64) *RandomMove {
	return &RandomMove{picker: newPicker(seed)}
}

func (r *RandomMove) String() string { return "random" }

func (r *RandomMove) Decide(state game.GameState) game.Position {
	requireOngoing(state)
	return r.picker.pick(state.Moves())
}

// FirstMove plays the legal move with the lowest square index.
type FirstMove struct{}

func (FirstMove) String() string { return "first" }

func (FirstMove) Decide(state game.GameState) game.Position {
	requireOngoing(state)
	return state.Moves()[0]
}

// ScoreGreedy plays the move that maximizes its own score one ply ahead.
type ScoreGreedy struct {
	picker *picker
}

func NewScoreGreedy(seed ...uint64) *ScoreGreedy {
	return &ScoreGreedy{picker: newPicker(seed)}
}

func (s *ScoreGreedy) String() string { return "score-greedy" }

func (s *ScoreGreedy) Decide(state game.GameState) game.Position {
	requireOngoing(state)
	player := state.Turn()
	var best []game.Position
	bestScore := -1
	for _, move := range state.Moves() {
		score := state.MakeMove(move).ScoreOf(player)
		switch {
		case score > bestScore:
			bestScore = score
			best = append(best[:0], move)
		case score == bestScore:
			best = append(best, move)
		}
	}
	return s.picker.pick(best)
}

// CornersGreedy takes a corner whenever it can and otherwise plays randomly.
type CornersGreedy struct {
	picker *picker
}

func NewCornersGreedy(seed ...uint64) *CornersGreedy {
	return &CornersGreedy{picker: newPicker(seed)}
}

func (c *CornersGreedy) String() string { return "corners-greedy" }

func (c *CornersGreedy) Decide(state game.GameState) game.Position {
	requireOngoing(state)
	if corners := (state.MoveBitboard() & game.Corners).Positions(); len(corners) > 0 {
		return c.picker.pick(corners)
	}
	return c.picker.pick(state.Moves())
}
