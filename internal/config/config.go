package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	LogFile  string `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:""`
	Board    Board  `yaml:"board"`
	PlayMode int    `yaml:"play-mode" env:"TICTACTOE_PLAY_MODE" env-default:"0"`
	Seed     int64  `yaml:"seed" env:"TICTACTOE_SEED" env-default:"0"`
}

// Board holds the optional board settings. Zero values mean "ask the player"
// for the size and "same as the size" for the run length.
type Board struct {
	Size      int `yaml:"size" env:"TICTACTOE_BOARD_SIZE" env-default:"0"`
	RunLength int `yaml:"run-length" env:"TICTACTOE_RUN_LENGTH" env-default:"0"`
}

// MustLoad - load configuration from the yaml file when it exists, otherwise from the environment only.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	size := that.Board.Size
	if size != 0 && (size < entity.MinBoardSize || size > entity.MaxBoardSize) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	runLength := that.Board.RunLength
	if runLength != 0 {
		limit := entity.MaxBoardSize
		if size != 0 {
			limit = size
		}

		if runLength < entity.MinBoardSize || runLength > limit {
			return fmt.Errorf("%w: %d", apperror.ErrInvalidRunLength, runLength)
		}
	}

	if that.PlayMode != 0 {
		if _, err := entity.ParsePlayMode(that.PlayMode); err != nil {
			return err
		}
	}

	return nil
}
