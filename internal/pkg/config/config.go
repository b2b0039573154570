package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret falls back to the well-known development value; anything
	// deployed for real must override it.
	JWTSecret string `env:"JWT_SECRET, default=your-secret-key-change-in-production"`

	UploadDir string `env:"UPLOAD_DIR, default=uploads"`
	PublicDir string `env:"PUBLIC_DIR, default=public"`

	// Auth endpoint rate limiting (per client IP).
	AuthRatePerMinute int `env:"AUTH_RATE_PER_MINUTE, default=30"`
	AuthRateBurst     int `env:"AUTH_RATE_BURST,      default=10"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=clip_shortener"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD, default="`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
