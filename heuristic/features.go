package heuristic

import (
	"math"

	"othello/game"
)

// Ratio maps a pair of non-negative amounts to (a-b)/(a+b), 0 when both are
// zero. It is antisymmetric and lies in [-1, 1].
func Ratio(a, b float64) float64 {
	total := a + b
	if total == 0 {
		return 0
	}
	return (a - b) / total
}

func countRatio(a, b game.Bitboard) float64 {
	return Ratio(float64(a.Count()), float64(b.Count()))
}

func discs(gs game.GameState) float64 {
	return countRatio(gs.Black(), gs.White())
}

func cornersOwned(gs game.GameState) float64 {
	black := (gs.Black() & game.Corners).Count()
	white := (gs.White() & game.Corners).Count()
	return float64(black-white) / 4
}

// cornerCloseness penalizes discs next to corners that are still open.
func cornerCloseness(gs game.GameState) float64 {
	open := game.Corners &^ gs.Occupied()
	sum := 0.0
	for _, corner := range open.Positions() {
		adjacent := game.Neighbours(game.Bit(corner))
		black := (gs.Black() & adjacent).Count()
		white := (gs.White() & adjacent).Count()
		sum -= 0.125 * float64(black-white)
	}
	return math.Max(-1, math.Min(1, sum))
}

func currentMobility(gs game.GameState) float64 {
	return countRatio(
		game.ValidMoves(gs.Black(), gs.White()),
		game.ValidMoves(gs.White(), gs.Black()),
	)
}

func potentialMobility(gs game.GameState) float64 {
	return countRatio(
		game.PotentialMoves(gs.Black(), gs.White()),
		game.PotentialMoves(gs.White(), gs.Black()),
	)
}

// frontierDiscs favors the side with fewer discs bordering an empty square.
func frontierDiscs(gs game.GameState) float64 {
	exposed := game.Neighbours(^gs.Occupied())
	return -countRatio(gs.Black()&exposed, gs.White()&exposed)
}

func stability(gs game.GameState, stable, region game.Bitboard) float64 {
	stable &= region
	return countRatio(stable&gs.Black(), stable&gs.White())
}

// moveNumber counts plies from the four disc start, in [1, 60].
func moveNumber(gs game.GameState) int {
	m := gs.Occupied().Count() - 3
	return max(1, min(game.BoardSquares-4, m))
}

func requireMoveNumber(moveNumber int) {
	if moveNumber < 1 || moveNumber > game.BoardSquares-4 {
		panic("move number out of range [1, 60]")
	}
}
