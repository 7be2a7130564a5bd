package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"8080"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	DatabaseDSN string `env:"DATABASE_DSN,required"`

	// External AI backends
	AICoachURL string `env:"AI_COACH_URL,required"`
	AIVideoURL string `env:"AI_VIDEO_URL,required"`

	AITimeout time.Duration `env:"AI_TIMEOUT" envDefault:"8s"`

	// Session cache lifetimes
	ActiveSessionTTL time.Duration `env:"ACTIVE_SESSION_TTL" envDefault:"1h"`
	ConversationTTL  time.Duration `env:"CONVERSATION_TTL" envDefault:"24h"`
}

// Load reads configuration from the environment. A .env file is picked up
// when present so local runs don't need exported variables.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
