package config

import (
	"blackjack-cli/internal/util"
	"errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"io/fs"
	"os"
	"time"
)

// Config provides configuration for the blackjack table
type Config struct {
	loaded           bool
	StartingBankroll int           `yaml:"startingBankroll" envconfig:"starting_bankroll"`
	DealerName       string        `yaml:"dealerName" envconfig:"dealer_name"`
	RevealDelay      time.Duration `yaml:"revealDelay" envconfig:"reveal_delay"`
	Log              struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		StartingBankroll: 2000,
		DealerName:       "Dealer",
		RevealDelay:      time.Second,
	}
	cfg.Log.Level = "warn"

	return cfg
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values come from the defaults, then the YAML file, then the environment. A .env file
// is read into the environment first if one exists. Missing files are not an error.
func Load() error {
	envFile := util.Getenv("BJ_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg := DefaultConfig()

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	if err := envconfig.Process("bj", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
