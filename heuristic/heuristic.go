// Package heuristic holds the static evaluators used at search leaves. Every
// evaluator scores a position in [-1, 1], positive when it favors MaxPlayer.
package heuristic

import (
	"errors"
	"fmt"

	"othello/game"
)

const (
	MaxPlayer = game.Black
	MinPlayer = game.White
)

var ErrUnknownHeuristic = errors.New("unknown heuristic")

type kind uint8

const (
	kindMaximumDisc kind = iota
	kindMinimumDisc
	kindWeighted
	kindCornersOwned
	kindCornerCloseness
	kindCurrentMobility
	kindPotentialMobility
	kindFrontierDiscs
	kindInternalStability
	kindEdgeStability
	kindStability
	kindIago
	kindKorman
	kindLinear
)

// Heuristic is one of a closed set of evaluators. Weighted and Linear carry
// their own numeric tables; the rest are plain tags.
type Heuristic struct {
	kind    kind
	name    string
	weights *weightTable
	linear  *LinearCoefficients
}

var (
	MaximumDisc       = Heuristic{kind: kindMaximumDisc, name: "max-disc"}
	MinimumDisc       = Heuristic{kind: kindMinimumDisc, name: "min-disc"}
	WMaggs            = Heuristic{kind: kindWeighted, name: "w-maggs", weights: maggsTable}
	WSannidhanam      = Heuristic{kind: kindWeighted, name: "w-sannid", weights: sannidhanamTable}
	WKorman           = Heuristic{kind: kindWeighted, name: "w-korman", weights: kormanTable}
	CornersOwned      = Heuristic{kind: kindCornersOwned, name: "corn-own"}
	CornerCloseness   = Heuristic{kind: kindCornerCloseness, name: "corn-close"}
	CurrentMobility   = Heuristic{kind: kindCurrentMobility, name: "cur-mob"}
	PotentialMobility = Heuristic{kind: kindPotentialMobility, name: "pot-mob"}
	FrontierDiscs     = Heuristic{kind: kindFrontierDiscs, name: "front-disc"}
	InternalStability = Heuristic{kind: kindInternalStability, name: "int-stab"}
	EdgeStability     = Heuristic{kind: kindEdgeStability, name: "edge-stab"}
	Stability         = Heuristic{kind: kindStability, name: "stab"}
	Iago              = Heuristic{kind: kindIago, name: "iago"}
	Korman            = Heuristic{kind: kindKorman, name: "korman"}
)

// registry is the selection surface, in display order.
var registry = []Heuristic{
	MaximumDisc, MinimumDisc,
	WMaggs, WSannidhanam, WKorman,
	CornersOwned, CornerCloseness,
	CurrentMobility, PotentialMobility,
	FrontierDiscs,
	InternalStability, EdgeStability, Stability,
	Iago, Korman,
}

// Names lists the selectable heuristic names.
func Names() []string {
	names := make([]string, len(registry))
	for i, h := range registry {
		names[i] = h.name
	}
	return names
}

// ByName looks up a heuristic from Names.
func ByName(name string) (Heuristic, error) {
	for _, h := range registry {
		if h.name == name {
			return h, nil
		}
	}
	return Heuristic{}, fmt.Errorf("%q: %w", name, ErrUnknownHeuristic)
}

// NewWeighted returns a square-weight heuristic for a custom table.
func NewWeighted(name string, m WeightMatrix) Heuristic {
	return Heuristic{kind: kindWeighted, name: name, weights: newWeightTable(m)}
}

func (h Heuristic) String() string {
	return h.name
}

// Evaluate scores gs from MaxPlayer's point of view.
func (h Heuristic) Evaluate(gs game.GameState) float64 {
	switch h.kind {
	case kindMaximumDisc:
		return discs(gs)
	case kindMinimumDisc:
		return -discs(gs)
	case kindWeighted:
		return h.weights.score(gs)
	case kindCornersOwned:
		return cornersOwned(gs)
	case kindCornerCloseness:
		return cornerCloseness(gs)
	case kindCurrentMobility:
		return currentMobility(gs)
	case kindPotentialMobility:
		return potentialMobility(gs)
	case kindFrontierDiscs:
		return frontierDiscs(gs)
	case kindInternalStability:
		return stability(gs, game.StableDiscs(gs), game.Internal)
	case kindEdgeStability:
		return stability(gs, game.StableDiscs(gs), game.Edges)
	case kindStability:
		return stability(gs, game.StableDiscs(gs), game.Full)
	case kindIago:
		return iago(gs)
	case kindKorman:
		return korman(gs)
	case kindLinear:
		return h.linear.evaluate(gs)
	default:
		panic(fmt.Sprintf("unknown heuristic kind %d", h.kind))
	}
}
