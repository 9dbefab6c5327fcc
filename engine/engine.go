// Package engine referees games between two strategies.
package engine

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"othello/game"
)

// ErrIllegalMove is returned when a strategy picks a square that is not a
// legal move.
var ErrIllegalMove = errors.New("illegal move")

type Engine interface {
	// Run plays the game to completion.
	Run() (Result, error)
}

var _ Engine = (*Local)(nil)

// MoveMetric describes one decision made during a game.
type MoveMetric struct {
	Ply      int
	Player   game.Player
	Strategy string
	Move     game.Position
	Duration time.Duration
	Visited  int64 // zero for strategies that do not search
}

// GameMetric describes a whole game.
type GameMetric struct {
	ID         uuid.UUID
	Black      string
	White      string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Result struct {
	Outcome    game.Outcome
	Final      game.GameState
	BlackScore int
	WhiteScore int
	Game       GameMetric
	Moves      []MoveMetric
}
