package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestRun(t *testing.T) {
	t.Run("Self-play session ends in a tie", func(t *testing.T) {
		// Given: a configuration asking for self-play
		conf := &config.Config{LogLevel: "info", BotMark: "X", SelfPlay: true}
		var out bytes.Buffer

		// When: the application runs
		err := Run(context.Background(), newTestLogger(), conf, strings.NewReader(""), &out)

		// Then: the session completes with a draw
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), "It's a tie!\n"))
	})

	t.Run("Human session runs until the game ends", func(t *testing.T) {
		// Given: the bot opens as X and the human answers with the first free cells
		conf := &config.Config{LogLevel: "info", BotMark: "X"}
		input := "0 0\n0 1\n0 2\n1 0\n1 1\n1 2\n2 0\n2 1\n2 2\n"
		var out bytes.Buffer

		// When: the application runs
		err := Run(context.Background(), newTestLogger(), conf, strings.NewReader(input), &out)

		// Then: the game finishes without a human win
		require.NoError(t, err)
		assert.NotContains(t, out.String(), "You win!")
	})

	t.Run("Invalid bot mark is rejected", func(t *testing.T) {
		conf := &config.Config{LogLevel: "info", BotMark: "Z"}

		err := Run(context.Background(), newTestLogger(), conf, strings.NewReader(""), io.Discard)

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})

	t.Run("Input closing mid-game aborts the session", func(t *testing.T) {
		conf := &config.Config{LogLevel: "info", BotMark: "O"}

		err := Run(context.Background(), newTestLogger(), conf, strings.NewReader(""), io.Discard)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "game aborted")
	})
}
