package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the server's environment-driven configuration. With an empty
// DBDSN the server runs against the in-memory store and simulated chain.
type Config struct {
	Addr        string `env:"VERYRACING_ADDR" envDefault:":8080"`
	DBDSN       string `env:"VERYRACING_DB_DSN"`
	Wallet      string `env:"VERYRACING_WALLET" envDefault:"0xdemo"`
	CatalogPath string `env:"VERYRACING_CATALOG"`

	IndexLag     time.Duration `env:"VERYRACING_INDEX_LAG" envDefault:"2s"`
	SuccessReset time.Duration `env:"VERYRACING_SUCCESS_RESET" envDefault:"3500ms"`
	FailureReset time.Duration `env:"VERYRACING_FAILURE_RESET" envDefault:"2s"`

	SimConfirmDelay time.Duration `env:"VERYRACING_SIM_CONFIRM_DELAY" envDefault:"500ms"`
	SimBalance      string        `env:"VERYRACING_SIM_BALANCE"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
