package heuristic

import "othello/game"

// WeightMatrix assigns a static value to every square, row-major from A1.
type WeightMatrix [game.BoardSquares]int

var WeightsMaggs = WeightMatrix{
	64, -30, 10, 5, 5, 10, -30, 64,
	-30, -40, 2, 2, 2, 2, -40, -30,
	10, 2, 5, 1, 1, 5, 2, 10,
	5, 2, 1, 1, 1, 1, 2, 5,
	5, 2, 1, 1, 1, 1, 2, 5,
	10, 2, 5, 1, 1, 5, 2, 10,
	-30, -40, 2, 2, 2, 2, -40, -30,
	64, -30, 10, 5, 5, 10, -30, 64,
}

var WeightsSannidhanam = WeightMatrix{
	4, -3, 2, 2, 2, 2, -3, 4,
	-3, -4, -1, -1, -1, -1, -4, -3,
	2, -1, 1, 0, 0, 1, -1, 2,
	2, -1, 0, 1, 1, 0, -1, 2,
	2, -1, 0, 1, 1, 0, -1, 2,
	2, -1, 1, 0, 0, 1, -1, 2,
	-3, -4, -1, -1, -1, -1, -4, -3,
	4, -3, 2, 2, 2, 2, -3, 4,
}

var WeightsKorman = WeightMatrix{
	20, -3, 11, 8, 8, 11, -3, 20,
	-3, -7, -4, 1, 1, -4, -7, -3,
	11, -4, 2, 2, 2, 2, -4, 11,
	8, 1, 2, -3, -3, 2, 1, 8,
	8, 1, 2, -3, -3, 2, 1, 8,
	11, -4, 2, 2, 2, 2, -4, 11,
	-3, -7, -4, 1, 1, -4, -7, -3,
	20, -3, 11, 8, 8, 11, -3, 20,
}

// weightTable is a WeightMatrix with its normalizer, the largest score any
// position can reach: every positive square own and every negative one the
// opponent's.
type weightTable struct {
	matrix WeightMatrix
	max    float64
}

func newWeightTable(m WeightMatrix) *weightTable {
	total := 0
	for _, w := range m {
		if w < 0 {
			w = -w
		}
		total += w
	}
	return &weightTable{matrix: m, max: float64(total)}
}

func (t *weightTable) score(gs game.GameState) float64 {
	if t.max == 0 {
		return 0
	}
	sum := 0
	for _, p := range gs.Black().Positions() {
		sum += t.matrix[p]
	}
	for _, p := range gs.White().Positions() {
		sum -= t.matrix[p]
	}
	return float64(sum) / t.max
}

var (
	maggsTable       = newWeightTable(WeightsMaggs)
	sannidhanamTable = newWeightTable(WeightsSannidhanam)
	kormanTable      = newWeightTable(WeightsKorman)
)
