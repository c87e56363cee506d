package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const BotMarkRandom = "random"

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	BotMark  string `yaml:"bot-mark" env:"BOT_MARK" env-default:"X"`
	SelfPlay bool   `yaml:"self-play" env:"SELF_PLAY" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file.
// A missing file falls back to environment variables and defaults.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	err := cleanenv.ReadConfig(path, config)
	if errors.Is(err, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Marks - resolves the configured bot mark into the human's and the bot's marks.
func (that *Config) Marks() (entity.Player, entity.Player, error) {
	if strings.EqualFold(strings.TrimSpace(that.BotMark), BotMarkRandom) {
		human, bot := entity.RandomMarks()
		return human, bot, nil
	}

	bot, err := entity.ParseMark(that.BotMark)
	if err != nil {
		return 0, 0, fmt.Errorf("bot-mark: %w", err)
	}

	return bot.Opponent(), bot, nil
}
