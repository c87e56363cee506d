package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

func TestMustLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// When: loading the test configuration
		conf := MustLoad(filepath.Join("testdata", "config.yml"))

		// Then: every field is taken from the file
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "O", conf.BotMark)
		assert.True(t, conf.SelfPlay)
	})

	t.Run("Falls back to defaults when the file is missing", func(t *testing.T) {
		// When: loading a path that does not exist
		conf := MustLoad(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults are used
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "X", conf.BotMark)
		assert.False(t, conf.SelfPlay)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: BOT_MARK is set
		t.Setenv("BOT_MARK", "x")

		// When: loading the test configuration
		conf := MustLoad(filepath.Join("testdata", "config.yml"))

		// Then: the environment wins
		assert.Equal(t, "x", conf.BotMark)
	})

	t.Run("Panics on a broken file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join("testdata", "broken.yml"))
		})
	})
}

func TestConfig_Marks(t *testing.T) {
	t.Run("Bot plays the configured mark", func(t *testing.T) {
		conf := &Config{BotMark: "O"}

		human, bot, err := conf.Marks()

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, human)
		assert.Equal(t, entity.PlayerO, bot)
	})

	t.Run("Random assigns opposite marks", func(t *testing.T) {
		conf := &Config{BotMark: "random"}

		human, bot, err := conf.Marks()

		require.NoError(t, err)
		assert.Equal(t, human.Opponent(), bot)
	})

	t.Run("Unknown mark is rejected", func(t *testing.T) {
		conf := &Config{BotMark: "Z"}

		_, _, err := conf.Marks()

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}
