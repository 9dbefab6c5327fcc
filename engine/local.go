package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"othello/game"
	"othello/searcher"
)

// Local plays two in-process strategies against each other.
type Local struct {
	id    uuid.UUID
	start game.GameState
	black searcher.Strategy
	white searcher.Strategy
}

func NewLocal(start game.GameState, black, white searcher.Strategy) *Local {
	if black == nil || white == nil {
		panic("need a strategy for both players")
	}
	return &Local{
		id:    uuid.New(),
		start: start,
		black: black,
		white: white,
	}
}

func (l *Local) ID() uuid.UUID {
	return l.id
}

func (l *Local) strategyOf(player game.Player) searcher.Strategy {
	if player == game.Black {
		return l.black
	}
	return l.white
}

// Run plays from the start state until the game is over. A strategy that
// returns an illegal move ends the game with ErrIllegalMove; the partial
// result is returned alongside the error.
func (l *Local) Run() (Result, error) {
	gm := GameMetric{
		ID:        l.id,
		Black:     l.black.String(),
		White:     l.white.String(),
		StartTime: time.Now(),
	}
	log.Info().
		Str("match", l.id.String()).
		Str("black", gm.Black).
		Str("white", gm.White).
		Msg("game started")

	state := l.start
	var moves []MoveMetric
	finish := func() Result {
		gm.EndTime = time.Now()
		gm.Duration = gm.EndTime.Sub(gm.StartTime)
		gm.TotalMoves = len(moves)
		outcome, _ := state.Outcome()
		return Result{
			Outcome:    outcome,
			Final:      state,
			BlackScore: state.ScoreOf(game.Black),
			WhiteScore: state.ScoreOf(game.White),
			Game:       gm,
			Moves:      moves,
		}
	}

	for ply := 1; ; ply++ {
		if _, over := state.Outcome(); over {
			break
		}

		player := state.Turn()
		strategy := l.strategyOf(player)
		start := time.Now()
		move, visited := decide(strategy, state)
		elapsed := time.Since(start)

		if !state.IsLegal(move) {
			return finish(), fmt.Errorf("%s played %s as %s at ply %d: %w", strategy, move, player, ply, ErrIllegalMove)
		}

		moves = append(moves, MoveMetric{
			Ply:      ply,
			Player:   player,
			Strategy: strategy.String(),
			Move:     move,
			Duration: elapsed,
			Visited:  visited,
		})
		log.Debug().
			Str("match", l.id.String()).
			Int("ply", ply).
			Stringer("player", player).
			Stringer("move", move).
			Dur("elapsed", elapsed).
			Msg("move played")

		state = state.MakeMove(move)
	}

	result := finish()
	log.Info().
		Str("match", l.id.String()).
		Stringer("outcome", result.Outcome).
		Int("black", result.BlackScore).
		Int("white", result.WhiteScore).
		Int("moves", gm.TotalMoves).
		Dur("duration", result.Game.Duration).
		Msg("game over")
	return result, nil
}

func decide(strategy searcher.Strategy, state game.GameState) (game.Position, int64) {
	if s, ok := strategy.(searcher.Searcher); ok {
		result := s.Search(state)
		return result.Move, result.Visited
	}
	return strategy.Decide(state), 0
}
