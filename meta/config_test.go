package meta

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"othello/heuristic"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		require.Equal(t, Player{Heuristic: DefaultHeuristic, Depth: DefaultDepth, Pruning: true}, cfg.Black)
		require.Equal(t, cfg.Black, cfg.White)
		require.Equal(t, VerificationTimeout, cfg.VerificationTimeout)
		require.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
		require.NoError(t, cfg.Validate())
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("OTHELLO_BLACK_HEURISTIC", "iago")
		t.Setenv("OTHELLO_WHITE_HEURISTIC", "random")
		t.Setenv("OTHELLO_DEPTH", "3")
		t.Setenv("OTHELLO_PRUNING", "false")
		t.Setenv("OTHELLO_VERIFY_TIMEOUT", "250ms")
		t.Setenv("OTHELLO_LOG_LEVEL", "debug")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		require.Equal(t, Player{Heuristic: "iago", Depth: 3}, cfg.Black)
		require.Equal(t, "random", cfg.White.Heuristic)
		require.Equal(t, 250*time.Millisecond, cfg.VerificationTimeout)
		require.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
		require.NoError(t, cfg.Validate())
	})

	t.Run("env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("OTHELLO_WHITE_HEURISTIC=stab\n"), 0o600))
		defer os.Unsetenv("OTHELLO_WHITE_HEURISTIC")

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "stab", cfg.White.Heuristic)
	})

	t.Run("malformed values", func(t *testing.T) {
		t.Setenv("OTHELLO_DEPTH", "deep")
		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	for _, depth := range []int{0, MaxDepth + 1} {
		err := Player{Heuristic: "korman", Depth: depth}.Validate()
		require.ErrorIs(t, err, ErrInvalidDepth)
	}
	require.ErrorIs(t, Player{Heuristic: "magic", Depth: 3}.Validate(), heuristic.ErrUnknownHeuristic)
	require.NoError(t, Player{Heuristic: "mcts"}.Validate())

	cfg := &Config{
		Black:    Player{Heuristic: "korman", Depth: 2},
		White:    Player{Heuristic: "korman", Depth: 11},
		Episodes: 1,
	}
	require.ErrorIs(t, cfg.Validate(), ErrInvalidDepth)
}
