package searcher

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"othello/game"
)

// MCTS is UCT tree search with random rollouts. Workers share one tree per
// decision and spread out with virtual losses.
type MCTS struct {
	goroutines int
	episodes   int
	duration   time.Duration
	metrics    Collector
}

// NewMCTS panics unless an episode count or a duration is given.
func NewMCTS(opts ...Option) *MCTS {
	o := buildOptions(opts)
	if o.episodes <= 0 && o.duration <= 0 {
		panic("must specify search episodes or duration")
	}
	return &MCTS{
		goroutines: o.goroutines,
		episodes:   o.episodes,
		duration:   o.duration,
		metrics:    o.metrics,
	}
}

func (m *MCTS) String() string {
	if m.episodes > 0 {
		return fmt.Sprintf("mcts(%d episodes, %d goroutines)", m.episodes, m.goroutines)
	}
	return fmt.Sprintf("mcts(%s, %d goroutines)", m.duration, m.goroutines)
}

func (m *MCTS) Decide(state game.GameState) game.Position {
	return m.Search(state).Move
}

func (m *MCTS) Search(state game.GameState) Result {
	requireOngoing(state)
	start := time.Now()

	root := newNode(nil, state.Turn().Opponent(), state)
	var episodes int64
	if m.episodes > 0 {
		episodes = m.iterate(root, state)
	} else {
		episodes = m.countdown(root, state)
	}
	move, value := root.bestMove()

	elapsed := time.Since(start)
	m.metrics.AddDecision(episodes, elapsed)
	log.Debug().
		Stringer("strategy", m).
		Stringer("move", move).
		Float64("value", value).
		Int64("episodes", episodes).
		Dur("elapsed", elapsed).
		Msg("search complete")
	return Result{Move: move, Value: value, Visited: episodes}
}

func (m *MCTS) iterate(root *node, state game.GameState) int64 {
	task := make(chan struct{}, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- struct{}{}
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range task {
				simulate(root, state)
			}
		}()
	}
	wg.Wait()
	return int64(m.episodes)
}

func (m *MCTS) countdown(root *node, state game.GameState) int64 {
	done := make(chan struct{})
	counts := make(chan int64, m.goroutines)

	for i := 0; i < m.goroutines; i++ {
		go func() {
			var count int64
			// At least one episode so the root always has a child.
			for {
				simulate(root, state)
				count++
				select {
				case <-done:
					counts <- count
					return
				default:
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)

	var total int64
	for i := 0; i < m.goroutines; i++ {
		total += <-counts
	}
	return total
}

func simulate(root *node, state game.GameState) {
	leaf, leafState := selectThenExpand(root, state)
	outcome := rollout(leafState)
	backup(leaf, rewarder(outcome))
}

func selectThenExpand(root *node, state game.GameState) (*node, game.GameState) {
	parent := root
	child, state, expanded := parent.selectOrExpand(state)
	for !expanded && child != parent {
		parent = child
		child, state, expanded = parent.selectOrExpand(state)
	}
	return child, state
}

func rollout(state game.GameState) game.Outcome {
	for {
		if outcome, over := state.Outcome(); over {
			return outcome
		}
		moves := state.Moves()
		state = state.MakeMove(moves[rand.Intn(len(moves))])
	}
}

func backup(leaf *node, reward func(game.Player) float64) {
	for n := leaf; n != nil; {
		n = n.backup(reward)
	}
}
