package heuristic

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"othello/game"
)

func allHeuristics() []Heuristic {
	hs := append([]Heuristic{}, registry...)
	var c LinearCoefficients
	for i := range c {
		c[i] = float64(i%7) - 3
	}
	return append(hs, NewLinear(c), NewWeighted("w-custom", WeightsMaggs))
}

func TestHeuristicRange(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for _, h := range allHeuristics() {
		t.Run(h.String(), func(t *testing.T) {
			for i := 0; i < 20; i++ {
				for _, gs := range game.RandomGame(r, game.OthelloInitial()) {
					v := h.Evaluate(gs)
					require.GreaterOrEqual(t, v, -1.0, "%s on\n%s", h, gs)
					require.LessOrEqual(t, v, 1.0, "%s on\n%s", h, gs)
				}
			}
		})
	}
}

func TestInitialPositionIsBalanced(t *testing.T) {
	for _, h := range registry {
		require.InDelta(t, 0, h.Evaluate(game.OthelloInitial()), 1e-9, h.String())
	}
}

func TestDiscHeuristics(t *testing.T) {
	gs := game.OthelloInitial().MakeMove(game.MustParsePosition("D3"))
	require.InDelta(t, 0.6, MaximumDisc.Evaluate(gs), 1e-9)
	require.InDelta(t, -0.6, MinimumDisc.Evaluate(gs), 1e-9)
}

func TestCornersOwned(t *testing.T) {
	black := game.Bit(game.MustParsePosition("A1")) | game.Bit(game.MustParsePosition("H8"))
	white := game.Bit(game.MustParsePosition("A8"))
	gs, err := game.FromBitboards(black, white, game.Black)
	require.NoError(t, err)
	require.InDelta(t, 0.25, CornersOwned.Evaluate(gs), 1e-9)
}

func TestRatio(t *testing.T) {
	require.Zero(t, Ratio(0, 0))
	require.Equal(t, 1.0, Ratio(3, 0))
	require.Equal(t, -1.0, Ratio(0, 3))
	for _, pair := range [][2]float64{{1, 2}, {5, 3}, {10, 10}, {0, 7}} {
		require.InDelta(t, -Ratio(pair[0], pair[1]), Ratio(pair[1], pair[0]), 1e-12)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		h, err := ByName(name)
		require.NoError(t, err)
		require.Equal(t, name, h.String())
	}
	_, err := ByName("nope")
	require.ErrorIs(t, err, ErrUnknownHeuristic)
}

func TestNamesOrder(t *testing.T) {
	require.Equal(t, []string{
		"max-disc", "min-disc", "w-maggs", "w-sannid", "w-korman",
		"corn-own", "corn-close", "cur-mob", "pot-mob", "front-disc",
		"int-stab", "edge-stab", "stab", "iago", "korman",
	}, Names())
}

func TestIagoWeights(t *testing.T) {
	t.Run("opening", func(t *testing.T) {
		w := iagoWeights(1)
		require.InDelta(t, 318.24, w[0], 1e-9)
		require.Equal(t, 36.0, w[1])
		require.Equal(t, 52.0, w[2])
		require.Equal(t, 99.0, w[3])
	})
	t.Run("late", func(t *testing.T) {
		w := iagoWeights(26)
		require.InDelta(t, 101, w[2], 1e-9)
	})
	t.Run("out of range", func(t *testing.T) {
		require.Panics(t, func() { iagoWeights(0) })
		require.Panics(t, func() { iagoWeights(61) })
	})
}

func TestLinear(t *testing.T) {
	t.Run("name is stable", func(t *testing.T) {
		var c LinearCoefficients
		c[1] = 1
		require.Equal(t, NewLinear(c).String(), NewLinear(c).String())
		require.Regexp(t, `^lineq\(\d{3}\)$`, NewLinear(c).String())
	})
	t.Run("zero weights", func(t *testing.T) {
		gs := game.OthelloInitial().MakeMove(game.MustParsePosition("D3"))
		require.Zero(t, NewLinear(LinearCoefficients{}).Evaluate(gs))
	})
	t.Run("disc intercept only", func(t *testing.T) {
		var c LinearCoefficients
		c[1] = 2
		gs := game.OthelloInitial().MakeMove(game.MustParsePosition("D3"))
		require.InDelta(t, MaximumDisc.Evaluate(gs), NewLinear(c).Evaluate(gs), 1e-9)
	})
	t.Run("move number out of range", func(t *testing.T) {
		var c LinearCoefficients
		require.Panics(t, func() { c.weights(0) })
	})
}

func TestWeightedMatchesTable(t *testing.T) {
	gs := game.OthelloInitial().MakeMove(game.MustParsePosition("D3"))
	require.Equal(t, WKorman.Evaluate(gs), NewWeighted("k", WeightsKorman).Evaluate(gs))
}
