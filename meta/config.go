package meta

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"othello/heuristic"
)

var ErrInvalidDepth = errors.New("invalid search depth")

// Player configures one side's strategy. Heuristic may also name a naive
// strategy ("random", "first", "score-greedy", "corners-greedy") or "mcts".
type Player struct {
	Heuristic string
	Depth     int
	Pruning   bool
}

// Config holds application configuration loaded from environment variables.
type Config struct {
	Black               Player
	White               Player
	Episodes            int
	VerificationTimeout time.Duration
	LogLevel            zerolog.Level
	RecordDir           string
}

// Load reads an optional .env file and then OTHELLO_* environment variables,
// falling back to defaults.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	depth, err := envInt("OTHELLO_DEPTH", DefaultDepth)
	if err != nil {
		return nil, err
	}
	episodes, err := envInt("OTHELLO_EPISODES", DefaultEpisodes)
	if err != nil {
		return nil, err
	}
	pruning, err := strconv.ParseBool(envOrDefault("OTHELLO_PRUNING", "true"))
	if err != nil {
		return nil, fmt.Errorf("OTHELLO_PRUNING: %w", err)
	}
	timeout, err := time.ParseDuration(envOrDefault("OTHELLO_VERIFY_TIMEOUT", VerificationTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("OTHELLO_VERIFY_TIMEOUT: %w", err)
	}
	level, err := zerolog.ParseLevel(envOrDefault("OTHELLO_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("OTHELLO_LOG_LEVEL: %w", err)
	}

	return &Config{
		Black: Player{
			Heuristic: envOrDefault("OTHELLO_BLACK_HEURISTIC", DefaultHeuristic),
			Depth:     depth,
			Pruning:   pruning,
		},
		White: Player{
			Heuristic: envOrDefault("OTHELLO_WHITE_HEURISTIC", DefaultHeuristic),
			Depth:     depth,
			Pruning:   pruning,
		},
		Episodes:            episodes,
		VerificationTimeout: timeout,
		LogLevel:            level,
		RecordDir:           os.Getenv("OTHELLO_RECORD_DIR"),
	}, nil
}

// NaiveStrategies are the player names that need no heuristic.
var NaiveStrategies = []string{"random", "first", "score-greedy", "corners-greedy", "mcts"}

func (p Player) Validate() error {
	for _, name := range NaiveStrategies {
		if p.Heuristic == name {
			return nil
		}
	}
	if p.Depth < MinDepth || p.Depth > MaxDepth {
		return fmt.Errorf("%d not in [%d, %d]: %w", p.Depth, MinDepth, MaxDepth, ErrInvalidDepth)
	}
	if _, err := heuristic.ByName(p.Heuristic); err != nil {
		return err
	}
	return nil
}

func (c *Config) Validate() error {
	if err := c.Black.Validate(); err != nil {
		return fmt.Errorf("black: %w", err)
	}
	if err := c.White.Validate(); err != nil {
		return fmt.Errorf("white: %w", err)
	}
	if c.Episodes <= 0 {
		return fmt.Errorf("episodes must be positive, got %d", c.Episodes)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v, err := strconv.Atoi(envOrDefault(key, strconv.Itoa(fallback)))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
