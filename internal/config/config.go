package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"drawpoker-server/internal/util"
	"drawpoker-server/pkg/playable/poker/ledger"
	"drawpoker-server/pkg/playable/poker/wager"
)

// Config provides configuration for the draw-poker server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	HTTP struct {
		Addr          string `yaml:"addr" envconfig:"addr"`
		AllowedOrigin string `yaml:"allowedOrigin" envconfig:"allowed_origin"`
	} `yaml:"http"`
	Game struct {
		Ante             int   `yaml:"ante" envconfig:"ante"`
		BetSteps         []int `yaml:"betSteps" envconfig:"bet_steps"`
		RaiseLimit       int   `yaml:"raiseLimit" envconfig:"raise_limit"`
		LoanAmount       int   `yaml:"loanAmount" envconfig:"loan_amount"`
		LoanLimit        int   `yaml:"loanLimit" envconfig:"loan_limit"`
		PaybackThreshold int   `yaml:"paybackThreshold" envconfig:"payback_threshold"`
		GameEndThreshold int   `yaml:"gameEndThreshold" envconfig:"game_end_threshold"`
		StartingBankroll int   `yaml:"startingBankroll" envconfig:"starting_bankroll"`
	} `yaml:"game"`
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
// A missing config file is not an error; defaults and DP_* environment
// variables still apply
func Load() error {
	config = defaultConfig()

	configFile := util.Getenv("DP_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("dp", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

func defaultConfig() Config {
	var c Config
	c.Log.Level = "info"
	c.HTTP.Addr = ":5080"
	c.Game.Ante = 5
	c.Game.BetSteps = wager.DefaultBetSteps
	c.Game.RaiseLimit = wager.DefaultRaiseLimit
	terms := ledger.DefaultTerms()
	c.Game.LoanAmount = terms.LoanAmount
	c.Game.LoanLimit = terms.LoanLimit
	c.Game.PaybackThreshold = terms.PaybackThreshold
	c.Game.GameEndThreshold = 500
	c.Game.StartingBankroll = 100
	return c
}
