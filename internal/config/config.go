package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile  string   `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	Defaults Defaults `yaml:"defaults"`
}

// Defaults pre-select the setup menu answers; the menu and command-line
// flags can still override every one of them.
type Defaults struct {
	Difficulty   int    `yaml:"difficulty" env:"TICTACTOE_DIFFICULTY" env-default:"4"`
	RuleMode     string `yaml:"rule-mode" env:"TICTACTOE_RULE_MODE" env-default:"normal"`
	EndingPolicy string `yaml:"ending-policy" env:"TICTACTOE_ENDING_POLICY" env-default:"unlimited"`
	Target       int    `yaml:"target" env:"TICTACTOE_TARGET" env-default:"3"`
}

// MustLoad - load all configurations in config.yml file. A missing file is
// fine for a desktop tool; environment and defaults still apply.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
