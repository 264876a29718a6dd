package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Snoonu Plan"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Plan struct {
		// MonthlyBudgetQAR and WalletBalanceQAR are whole QAR; the
		// engine works in dirhams internally.
		MonthlyBudgetQAR int64  `envconfig:"MONTHLY_BUDGET_QAR" default:"2500"`
		WalletBalanceQAR int64  `envconfig:"WALLET_BALANCE_QAR" default:"1800"`
		HouseholdName    string `envconfig:"HOUSEHOLD_NAME" default:"Rina's Family"`

		// Scenario names a YAML seed file; empty starts the engine
		// from the reset state above.
		Scenario string `envconfig:"PLAN_SCENARIO"`

		// TickInterval is the real-world cadence of the external
		// driver invoking the engine tick.
		TickInterval time.Duration `envconfig:"PLAN_TICK_INTERVAL" default:"1s"`
	}

	Auth struct {
		JWTSecret string        `envconfig:"JWT_SECRET" default:"dev-only-secret"`
		TokenTTL  time.Duration `envconfig:"JWT_TTL" default:"24h"`
	}

	HTTP struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
