package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestStableDiscs(t *testing.T) {
	t.Run("no discs are stable at the start", func(t *testing.T) {
		require.Equal(t, Empty, StableDiscs(OthelloInitial()))
	})

	t.Run("full board is stable", func(t *testing.T) {
		gs := GameState{turn: Black, black: Full &^ Internal, white: Internal}
		require.Equal(t, Full, StableDiscs(gs))
	})

	t.Run("own edge run from a corner is stable", func(t *testing.T) {
		gs := GameState{
			turn:  White,
			black: maskOf(t, "A1", "B1", "C1"),
			white: maskOf(t, "D1", "D4", "E4"),
		}
		require.Equal(t, maskOf(t, "A1", "B1", "C1"), StableDiscs(gs))
	})

	t.Run("corner shields its neighbours of the same color", func(t *testing.T) {
		gs := GameState{
			turn:  White,
			black: maskOf(t, "H8", "G8", "H7", "G7"),
			white: maskOf(t, "F6"),
		}
		got := StableDiscs(gs)
		require.True(t, got.Has(MustParsePosition("H8")))
		require.True(t, got.Has(MustParsePosition("G8")))
		require.True(t, got.Has(MustParsePosition("H7")))
		require.False(t, got.Has(MustParsePosition("G7")), "G7 can still be bracketed along the F8-H6 diagonal")
	})

	t.Run("stable discs are never flipped later", func(t *testing.T) {
		r := rand.New(rand.NewSource(3))
		for game := 0; game < 50; game++ {
			states := RandomGame(r, OthelloInitial())
			for i, gs := range states {
				stable := StableDiscs(gs)
				blackStable := stable & gs.Black()
				whiteStable := stable & gs.White()
				for _, later := range states[i+1:] {
					require.Equal(t, blackStable, later.Black()&blackStable, "stable black discs stay black")
					require.Equal(t, whiteStable, later.White()&whiteStable, "stable white discs stay white")
				}
			}
		}
	})
}
