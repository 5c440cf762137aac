package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// SimulateLatency toggles the fixed artificial delays on the insights
	// façade. Disable for tests and local iteration.
	SimulateLatency bool `env:"SIMULATE_LATENCY, default=true"`

	// ViewWorkers sizes the view-count dispatcher pool.
	ViewWorkers int `env:"VIEW_WORKERS, default=4"`

	Session SessionConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	// Key is the single storage key the active identity is persisted under.
	Key string `env:"SESSION_KEY, default=vh:session"`
}

type RedisConfig struct {
	// Addr is optional; when empty the session record stays in process memory.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
