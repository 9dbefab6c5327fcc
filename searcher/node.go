package searcher

import (
	"math"
	"sync"

	"othello/game"
)

// node is a decision node in the MCTS tree. Its statistics are rewards for
// player, the side whose move led to it.
type node struct {
	sync.RWMutex
	parent   *node
	player   game.Player
	moves    []game.Position
	children []*node
	rewards  float64
	visits   float64
}

func newNode(parent *node, player game.Player, state game.GameState) *node {
	var moves []game.Position
	if _, over := state.Outcome(); !over {
		moves = state.Moves()
	}
	return &node{
		parent:   parent,
		player:   player,
		moves:    moves,
		children: make([]*node, 0, len(moves)),
	}
}

// selectOrExpand descends one level. It returns expanded when a new child was
// added, and the node itself at a terminal state.
func (n *node) selectOrExpand(state game.GameState) (*node, game.GameState, bool) {
	n.Lock()
	defer n.Unlock()

	if len(n.moves) == 0 {
		return n, state, false
	}

	if len(n.moves) > len(n.children) {
		move := n.moves[len(n.children)]
		next := state.MakeMove(move)
		child := newNode(n, state.Turn(), next)
		n.children = append(n.children, child)
		child.applyLoss()
		return child, next, true
	}

	ith := n.pickChild()
	child := n.children[ith]
	child.applyLoss()
	return child, state.MakeMove(n.moves[ith]), false
}

func (n *node) pickChild() int {
	// The root can be fully expanded before any episode has backed up.
	normalizer := CSquared * math.Log(math.Max(1, n.visits))

	maxIndex := 0
	maxScore := math.Inf(-1)
	for i, child := range n.children {
		score := child.score(normalizer)
		if score == math.Inf(1) {
			return i
		}
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

// applyLoss records a virtual loss so concurrent workers spread out.
func (n *node) applyLoss() {
	n.Lock()
	defer n.Unlock()

	n.rewards += Loss
	n.visits++
}

func (n *node) score(normalizer float64) float64 {
	n.RLock()
	defer n.RUnlock()

	return ucb(n.rewards, n.visits, normalizer)
}

func (n *node) backup(reward func(game.Player) float64) *node {
	n.Lock()
	defer n.Unlock()

	if n.parent != nil {
		n.rewards -= Loss
		n.visits--
	}
	n.rewards += reward(n.player)
	n.visits++

	return n.parent
}

func (n *node) stats() (rewards, visits float64) {
	n.RLock()
	defer n.RUnlock()

	return n.rewards, n.visits
}

// bestMove returns the most visited child's move, the first on ties.
func (n *node) bestMove() (game.Position, float64) {
	n.RLock()
	defer n.RUnlock()

	if len(n.children) == 0 {
		panic("node has no children")
	}

	bestIndex := 0
	bestRewards, bestVisits := n.children[0].stats()
	for i, child := range n.children[1:] {
		if rewards, visits := child.stats(); visits > bestVisits {
			bestIndex, bestRewards, bestVisits = i+1, rewards, visits
		}
	}
	value := 0.0
	if bestVisits > 0 {
		value = bestRewards / bestVisits
	}
	return n.moves[bestIndex], value
}

func rewarder(outcome game.Outcome) func(game.Player) float64 {
	winner, decisive := outcome.Winner()
	return func(player game.Player) float64 {
		switch {
		case !decisive:
			return Draw
		case player == winner:
			return Win
		default:
			return Loss
		}
	}
}
