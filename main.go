package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"othello/engine"
	"othello/game"
	"othello/meta"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := meta.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	var (
		board      string
		skipVerify bool
		listNames  bool
	)
	flag.StringVar(&board, "board", "", "64-character board over 0/1/2 (default: read stdin)")
	flag.StringVar(&cfg.Black.Heuristic, "bh", cfg.Black.Heuristic, "Black heuristic or strategy")
	flag.IntVar(&cfg.Black.Depth, "bd", cfg.Black.Depth, "Black search depth")
	flag.BoolVar(&cfg.Black.Pruning, "bp", cfg.Black.Pruning, "Black uses alpha-beta pruning")
	flag.StringVar(&cfg.White.Heuristic, "wh", cfg.White.Heuristic, "White heuristic or strategy")
	flag.IntVar(&cfg.White.Depth, "wd", cfg.White.Depth, "White search depth")
	flag.BoolVar(&cfg.White.Pruning, "wp", cfg.White.Pruning, "White uses alpha-beta pruning")
	flag.IntVar(&cfg.Episodes, "episodes", cfg.Episodes, "MCTS episodes per move")
	flag.DurationVar(&cfg.VerificationTimeout, "verify-timeout", cfg.VerificationTimeout, "Reachability check budget")
	flag.BoolVar(&skipVerify, "skip-verify", false, "Skip the reachability check")
	flag.StringVar(&cfg.RecordDir, "record", cfg.RecordDir, "Directory for CSV game records")
	flag.BoolVar(&listNames, "list", false, "List heuristics and strategies")
	flag.Parse()

	zerolog.SetGlobalLevel(cfg.LogLevel)

	if listNames {
		fmt.Println(strings.Join(playerNames(), "\n"))
		return
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	if board == "" {
		input, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to read board")
		}
		board = game.StripBoard(string(input))
	}

	result, err := solve(cfg, board, skipVerify)
	if err != nil {
		log.Fatal().Err(err).Msg("solve failed")
	}
	fmt.Println(result.Final)

	if cfg.RecordDir != "" {
		if err := record(cfg.RecordDir, result); err != nil {
			log.Fatal().Err(err).Msg("failed to write records")
		}
	}
}

func record(dir string, result engine.Result) error {
	w, err := engine.NewWriter(dir)
	if err != nil {
		return err
	}
	if err := w.WriteGameRecords([]engine.Result{result}); err != nil {
		return err
	}
	if err := w.WriteMoveRecords([]engine.Result{result}); err != nil {
		return err
	}
	log.Info().Str("dir", w.Dir()).Msg("records written")
	return nil
}
