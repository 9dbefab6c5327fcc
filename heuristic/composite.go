package heuristic

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"

	"othello/game"
)

// weightedAverage combines feature scores in [-1, 1] into a score in the
// same range.
func weightedAverage(weights, features []float64) float64 {
	sum, norm := 0.0, 0.0
	for i, w := range weights {
		sum += w * features[i]
		norm += math.Abs(w)
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// iagoWeights are Rosenbloom's IAGO coefficients for edge stability,
// internal stability, current mobility and potential mobility.
func iagoWeights(moveNumber int) [4]float64 {
	requireMoveNumber(moveNumber)
	m := float64(moveNumber)
	mobility := 75 + m
	if moveNumber <= 25 {
		mobility = 50 + 2*m
	}
	return [4]float64{312 + 6.24*m, 36, mobility, 99}
}

func iago(gs game.GameState) float64 {
	stable := game.StableDiscs(gs)
	weights := iagoWeights(moveNumber(gs))
	features := [4]float64{
		stability(gs, stable, game.Edges),
		stability(gs, stable, game.Internal),
		currentMobility(gs),
		potentialMobility(gs),
	}
	return weightedAverage(weights[:], features[:])
}

// kormanWeights cover disc parity, corners owned, corner closeness, current
// mobility, frontier discs and the Korman square table.
var kormanWeights = [6]float64{10, 801.724, 382.026, 78.922, 74.396, 10}

func korman(gs game.GameState) float64 {
	features := [6]float64{
		discs(gs),
		cornersOwned(gs),
		cornerCloseness(gs),
		currentMobility(gs),
		frontierDiscs(gs),
		kormanTable.score(gs),
	}
	return weightedAverage(kormanWeights[:], features[:])
}

// LinearFeatures is the number of features the linear form combines.
const LinearFeatures = 10

// LinearWeightLen is the length of a LinearCoefficients vector: a slope and
// an intercept per feature.
const LinearWeightLen = 2 * LinearFeatures

// LinearCoefficients holds slope/intercept pairs; feature i is weighted by
// c[2i]*moveNumber + c[2i+1].
type LinearCoefficients [LinearWeightLen]float64

// NewLinear returns the tunable linear heuristic for c. The features are,
// in order: discs, corners owned, corner closeness, current mobility,
// potential mobility, frontier discs, internal, edge and overall stability,
// and the Korman square table.
func NewLinear(c LinearCoefficients) Heuristic {
	return Heuristic{
		kind:   kindLinear,
		name:   fmt.Sprintf("lineq(%03d)", linearHash(c)),
		linear: &c,
	}
}

func linearHash(c LinearCoefficients) uint8 {
	h := fnv.New32a()
	var buf [8]byte
	for _, v := range c {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	return uint8(h.Sum32())
}

func (c *LinearCoefficients) weights(moveNumber int) [LinearFeatures]float64 {
	requireMoveNumber(moveNumber)
	m := float64(moveNumber)
	var weights [LinearFeatures]float64
	for i := range weights {
		weights[i] = c[2*i]*m + c[2*i+1]
	}
	return weights
}

func (c *LinearCoefficients) evaluate(gs game.GameState) float64 {
	stable := game.StableDiscs(gs)
	weights := c.weights(moveNumber(gs))
	features := [LinearFeatures]float64{
		discs(gs),
		cornersOwned(gs),
		cornerCloseness(gs),
		currentMobility(gs),
		potentialMobility(gs),
		frontierDiscs(gs),
		stability(gs, stable, game.Internal),
		stability(gs, stable, game.Edges),
		stability(gs, stable, game.Full),
		kormanTable.score(gs),
	}
	return weightedAverage(weights[:], features[:])
}
