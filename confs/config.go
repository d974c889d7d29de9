package confs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"5000"`
	Environment string `envconfig:"APP_ENV" default:"development"`
	ClientURL   string `envconfig:"CLIENT_URL" default:"http://localhost:8080"`
	JWTSecret   string `envconfig:"JWT_SECRET" default:"distracto-dev-secret"`

	// DemoMode mounts the in-memory demo social endpoints. Nothing in the
	// real handlers consults it.
	DemoMode bool `envconfig:"DEMO_MODE" default:"false"`

	// SyncFlushInterval is how often buffered extension sync samples are
	// written through to the store.
	SyncFlushInterval time.Duration `envconfig:"SYNC_FLUSH_INTERVAL" default:"5m"`
}

// LoadConfig loads environment variables from a .env file if present and
// parses them into a typed config.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
