package cmd

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// envConfig supplies defaults for flags that were not given explicitly
type envConfig struct {
	Preset      string `env:"GOSWEEP_PRESET" envDefault:"hard"`
	PresetsFile string `env:"GOSWEEP_PRESETS_FILE"`
	LogLevel    string `env:"GOSWEEP_LOG_LEVEL" envDefault:"warning"`
	// 0 picks a seed from the current time
	Seed int64 `env:"GOSWEEP_SEED"`
}

// parseEnv reads the environment, after filling it in from a .env file in the
// working directory if there is one. Variables already set take precedence.
func parseEnv() (envConfig, error) {
	_ = godotenv.Load()

	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}
