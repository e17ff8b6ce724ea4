package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Backend    Backend   `yaml:"backend"`
	Database   Database  `yaml:"database"`
	RateLimit  RateLimit `yaml:"rate_limit"`
	Club       Club      `yaml:"club"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"15s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Enable only behind a proxy that sets them.
	TrustProxy bool `yaml:"trust_proxy" env:"HTTP_TRUST_PROXY" env-default:"false"`
}

// Backend is the external booking service the page talks to.
type Backend struct {
	URL     string        `yaml:"url" env:"BACKEND_URL" env-default:"http://localhost:8000"`
	Timeout time.Duration `yaml:"timeout" env:"BACKEND_TIMEOUT" env-default:"10s"`
}

type Database struct {
	Enabled   bool          `yaml:"enabled" env:"DB_ENABLED" env-default:"false"`
	Host      string        `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port      int           `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User      string        `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password  string        `yaml:"password" env:"DB_PASSWORD"`
	DBName    string        `yaml:"dbname" env:"DB_NAME" env-default:"pickle_club"`
	SSLMode   string        `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	Retention time.Duration `yaml:"retention" env:"DB_RETENTION" env-default:"720h"`
}

type RateLimit struct {
	RPS     float64       `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"1"`
	Burst   int           `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"5"`
	IdleTTL time.Duration `yaml:"idle_ttl" env:"RATE_LIMIT_IDLE_TTL" env-default:"10m"`
}

// Club holds the contact details shown on the page.
type Club struct {
	Name    string `yaml:"name" env:"CLUB_NAME" env-default:"Pickleball Club"`
	Phone   string `yaml:"phone" env:"CLUB_PHONE" env-default:"(555) 123-4567"`
	Email   string `yaml:"email" env:"CLUB_EMAIL" env-default:"hello@pickleclub.com"`
	Address string `yaml:"address" env:"CLUB_ADDRESS" env-default:"123 Rally Rd, Smash City"`
}

func MustLoad() *Config {
	// a missing .env is fine outside local runs
	_ = godotenv.Load()

	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}

	return cfg
}

// Load reads the YAML file at configPath, with environment overrides. An empty
// path reads the environment only.
func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return &cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}
