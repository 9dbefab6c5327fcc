package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"othello/game"
	"othello/heuristic"
	"othello/meta"
	"othello/searcher"
)

func testConfig(black, white string) *meta.Config {
	return &meta.Config{
		Black:               meta.Player{Heuristic: black, Depth: 2, Pruning: true},
		White:               meta.Player{Heuristic: white, Depth: 1},
		Episodes:            50,
		VerificationTimeout: time.Second,
	}
}

func TestSolve(t *testing.T) {
	t.Run("plays out the start", func(t *testing.T) {
		result, err := solve(testConfig("korman", "first"), game.OthelloInitial().BoardString(), false)
		require.NoError(t, err)
		_, over := result.Final.Outcome()
		require.True(t, over)
		require.Equal(t, "alphabeta(korman, 2)", result.Game.Black)
		require.Equal(t, "first", result.Game.White)
	})

	t.Run("malformed board", func(t *testing.T) {
		_, err := solve(testConfig("korman", "korman"), "012", false)
		require.ErrorIs(t, err, ErrBadBoard)
	})

	t.Run("unreachable board is still played", func(t *testing.T) {
		board := "1" + strings.Repeat("0", 63)
		result, err := solve(testConfig("korman", "first"), board, false)
		require.NoError(t, err)
		_, over := result.Final.Outcome()
		require.True(t, over)
	})

	t.Run("board after a forced pass", func(t *testing.T) {
		board := "0000000000000000000100000001100222222222000001020000010000000000"
		gs, ok := game.ParseBoard(board)
		require.True(t, ok)
		require.Equal(t, game.Reachable, gs.VerifyReachability(time.Second*5))

		result, err := solve(testConfig("korman", "first"), board, false)
		require.NoError(t, err)
		_, over := result.Final.Outcome()
		require.True(t, over)
	})

	t.Run("unknown heuristic", func(t *testing.T) {
		_, err := solve(testConfig("magic", "korman"), game.OthelloInitial().BoardString(), true)
		require.ErrorIs(t, err, heuristic.ErrUnknownHeuristic)
	})
}

func TestNewStrategy(t *testing.T) {
	for _, name := range playerNames() {
		s, err := newStrategy(meta.Player{Heuristic: name, Depth: 1}, 10, searcher.NewDummyCollector())
		require.NoError(t, err, name)
		require.True(t, game.OthelloInitial().IsLegal(s.Decide(game.OthelloInitial())), name)
	}

	s, err := newStrategy(meta.Player{Heuristic: "stab", Depth: 3}, 10, searcher.NewDummyCollector())
	require.NoError(t, err)
	require.Equal(t, "minimax(stab, 3)", s.String())
}

func TestNewStrategyReportsSearches(t *testing.T) {
	for _, p := range []meta.Player{
		{Heuristic: "korman", Depth: 2, Pruning: true},
		{Heuristic: "iago", Depth: 1},
		{Heuristic: "mcts"},
	} {
		collector := searcher.NewCollector()
		s, err := newStrategy(p, 20, collector)
		require.NoError(t, err, p.Heuristic)
		s.Decide(game.OthelloInitial())

		metric := collector.Complete()
		require.Equal(t, int64(1), metric.Decisions, p.Heuristic)
		require.Positive(t, metric.Visited, p.Heuristic)
	}
}
