// Package config loads engine settings from the environment. Collaborator
// query limits are deployment-tunable, never compiled in.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the invoicing engine.
type Config struct {
	// IDsChunkSize bounds the number of ids per collaborator batch query.
	IDsChunkSize int
	// FetchConcurrency bounds how many independent collaborator lookups run
	// at once while building workflow data holders.
	FetchConcurrency int
	// SystemCurrencyFallback is used when the configuration collaborator has
	// no system currency set.
	SystemCurrencyFallback string
	// TaskQueue is the Temporal task queue for lifecycle workflows.
	TaskQueue string
}

// Default returns the settings used when an environment variable is unset.
func Default() Config {
	return Config{
		IDsChunkSize:           15,
		FetchConcurrency:       4,
		SystemCurrencyFallback: "USD",
		TaskQueue:              "invoicing-lifecycle",
	}
}

// Load reads configuration from a .env file (if present) and the process
// environment, falling back to Default for anything unset.
func Load() (Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := Default()

	if v := os.Getenv("INVOICING_IDS_CHUNK_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, &InvalidValueError{Name: "INVOICING_IDS_CHUNK_SIZE", Value: v}
		}
		cfg.IDsChunkSize = n
	}
	if v := os.Getenv("INVOICING_FETCH_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, &InvalidValueError{Name: "INVOICING_FETCH_CONCURRENCY", Value: v}
		}
		cfg.FetchConcurrency = n
	}
	if v := os.Getenv("INVOICING_SYSTEM_CURRENCY_FALLBACK"); v != "" {
		cfg.SystemCurrencyFallback = v
	}
	if v := os.Getenv("INVOICING_TASK_QUEUE"); v != "" {
		cfg.TaskQueue = v
	}

	return cfg, nil
}

// InvalidValueError reports an environment variable that could not be parsed.
type InvalidValueError struct {
	Name  string
	Value string
}

func (e *InvalidValueError) Error() string {
	return "invalid value for " + e.Name + ": " + strconv.Quote(e.Value)
}
