package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"othello/engine"
	"othello/game"
	"othello/heuristic"
	"othello/meta"
	"othello/searcher"
)

var ErrBadBoard = errors.New("malformed board")

// solve plays the board out between the configured players.
func solve(cfg *meta.Config, board string, skipVerify bool) (engine.Result, error) {
	state, ok := game.ParseBoard(board)
	if !ok {
		return engine.Result{}, fmt.Errorf("%q: %w", board, ErrBadBoard)
	}

	if !skipVerify {
		switch reach := state.VerifyReachability(cfg.VerificationTimeout); reach {
		case game.Unreachable:
			log.Warn().Stringer("reachability", reach).Msg("board cannot arise in a legal game, continuing")
		case game.Indeterminate:
			log.Warn().Dur("timeout", cfg.VerificationTimeout).Msg("could not verify board within timeout, continuing")
		}
	}

	blackMetrics, whiteMetrics := searcher.NewCollector(), searcher.NewCollector()
	black, err := newStrategy(cfg.Black, cfg.Episodes, blackMetrics)
	if err != nil {
		return engine.Result{}, fmt.Errorf("black: %w", err)
	}
	white, err := newStrategy(cfg.White, cfg.Episodes, whiteMetrics)
	if err != nil {
		return engine.Result{}, fmt.Errorf("white: %w", err)
	}

	result, err := engine.NewLocal(state, black, white).Run()
	logSearchTotals(blackMetrics.Complete(), whiteMetrics.Complete())
	return result, err
}

func logSearchTotals(black, white searcher.SearchMetric) {
	log.Info().
		Int64("black_visited", black.Visited).
		Int64("white_visited", white.Visited).
		Int64("total_visited", black.Visited+white.Visited).
		Dur("black_time", black.Duration).
		Dur("white_time", white.Duration).
		Dur("total_time", black.Duration+white.Duration).
		Msg("search totals")
}

// newStrategy builds p's strategy. Searching strategies report to collector;
// the naive ones do not search.
func newStrategy(p meta.Player, episodes int, collector searcher.Collector) (searcher.Strategy, error) {
	switch p.Heuristic {
	case "random":
		return searcher.NewRandomMove(), nil
	case "first":
		return searcher.FirstMove{}, nil
	case "score-greedy":
		return searcher.NewScoreGreedy(), nil
	case "corners-greedy":
		return searcher.NewCornersGreedy(), nil
	case "mcts":
		return searcher.NewMCTS(searcher.WithEpisodes(episodes), searcher.WithGoroutines(4), searcher.WithMetrics(collector)), nil
	}

	h, err := heuristic.ByName(p.Heuristic)
	if err != nil {
		return nil, err
	}
	if p.Pruning {
		return searcher.NewAlphaBeta(h, p.Depth, searcher.WithMetrics(collector)), nil
	}
	return searcher.NewMinimax(h, p.Depth, searcher.WithMetrics(collector)), nil
}

func playerNames() []string {
	return append(heuristic.Names(), meta.NaiveStrategies...)
}
