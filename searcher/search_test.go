package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"othello/game"
	"othello/heuristic"
)

func randomStates(t *testing.T, seed uint64, n int) []game.GameState {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	states := make([]game.GameState, 0, n)
	for len(states) < n {
		gs := game.RandomState(r, r.Intn(56))
		if _, over := gs.Outcome(); !over {
			states = append(states, gs)
		}
	}
	return states
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	hs := []heuristic.Heuristic{
		heuristic.MaximumDisc,
		heuristic.WMaggs,
		heuristic.CurrentMobility,
		heuristic.Korman,
	}
	states := randomStates(t, 5, 12)
	for _, h := range hs {
		for depth := 1; depth <= 3; depth++ {
			h, depth := h, depth
			t.Run(NewMinimax(h, depth).String(), func(t *testing.T) {
				minimax := NewMinimax(h, depth)
				alphaBeta := NewAlphaBeta(h, depth)
				for _, gs := range states {
					want := minimax.Search(gs)
					got := alphaBeta.Search(gs)
					require.Equal(t, want.Move, got.Move, "state\n%s", gs)
					require.Equal(t, want.Value, got.Value, "state\n%s", gs)
					require.LessOrEqual(t, got.Visited, want.Visited)
				}
			})
		}
	}
}

func TestAlphaBetaMatchesMinimaxDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 4 search")
	}
	for _, gs := range randomStates(t, 11, 3) {
		want := NewMinimax(heuristic.Iago, 4).Search(gs)
		got := NewAlphaBeta(heuristic.Iago, 4).Search(gs)
		require.Equal(t, want.Move, got.Move)
	}
}

func TestAlphaBetaPrunes(t *testing.T) {
	gs := game.OthelloInitial()
	want := NewMinimax(heuristic.WKorman, 4).Search(gs)
	got := NewAlphaBeta(heuristic.WKorman, 4).Search(gs)
	require.Equal(t, want.Move, got.Move)
	require.Less(t, got.Visited, want.Visited)
}

func TestTieBreakKeepsFirstMove(t *testing.T) {
	// Every opening move flips one disc, so max-disc ties at depth 1.
	for _, s := range []Searcher{
		NewMinimax(heuristic.MaximumDisc, 1),
		NewAlphaBeta(heuristic.MaximumDisc, 1),
	} {
		result := s.Search(game.OthelloInitial())
		require.Equal(t, game.MustParsePosition("D3"), result.Move, s.String())
		require.InDelta(t, 0.6, result.Value, 1e-9)
		require.Equal(t, int64(5), result.Visited)
	}
}

func TestMinimizerPrefersLowValues(t *testing.T) {
	gs := game.OthelloInitial().MakeMove(game.MustParsePosition("D3"))
	require.Equal(t, game.White, gs.Turn())
	result := NewAlphaBeta(heuristic.MaximumDisc, 1).Search(gs)
	require.True(t, gs.IsLegal(result.Move))
	require.LessOrEqual(t, result.Value, 0.0)
}

func TestWinningMoveIsInfinite(t *testing.T) {
	// One ply before the shortest game ends with a black wipe-out.
	moves, err := game.ParseTranscript("E6,F4,E3,F6,G5,D6,E7,F5")
	require.NoError(t, err)
	gs, err := game.Replay(game.OthelloInitial(), moves)
	require.NoError(t, err)
	require.Equal(t, game.Black, gs.Turn())

	for _, s := range []Searcher{
		NewMinimax(heuristic.MinimumDisc, 2),
		NewAlphaBeta(heuristic.MinimumDisc, 2),
	} {
		result := s.Search(gs)
		require.True(t, math.IsInf(result.Value, 1), s.String())
	}

	outcome, over := gs.MakeMove(game.MustParsePosition("C5")).Outcome()
	require.True(t, over)
	require.Equal(t, game.BlackWins, outcome)
}

func TestSearchPanics(t *testing.T) {
	require.Panics(t, func() { NewMinimax(heuristic.Korman, 0) })
	require.Panics(t, func() { NewAlphaBeta(heuristic.Korman, -1) })

	black := game.Full
	over, err := game.FromBitboards(black, game.Empty, game.Black)
	require.NoError(t, err)
	require.Panics(t, func() { NewMinimax(heuristic.Korman, 1).Decide(over) })
	require.Panics(t, func() { NewAlphaBeta(heuristic.Korman, 1).Decide(over) })
}

func TestSearchMetrics(t *testing.T) {
	collector := NewCollector()
	s := NewAlphaBeta(heuristic.MaximumDisc, 2, WithMetrics(collector))
	first := s.Search(game.OthelloInitial())
	second := s.Search(game.ReversiInitial())

	metric := collector.Complete()
	require.Equal(t, int64(2), metric.Decisions)
	require.Equal(t, first.Visited+second.Visited, metric.Visited)
}

func TestTerminalValue(t *testing.T) {
	require.True(t, math.IsInf(terminalValue(game.BlackWins), 1))
	require.True(t, math.IsInf(terminalValue(game.WhiteWins), -1))
	require.Zero(t, terminalValue(game.Draw))
}
