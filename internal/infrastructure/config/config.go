package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo   MongoConfig
	JWT     JWTConfig
	Journal JournalConfig
}

type MongoConfig struct {
	URI        string `env:"MONGODB_URL,           default=mongodb://localhost:27017"`
	Database   string `env:"DB_NAME,               default=user_db"`
	Collection string `env:"USERS_COLLECTION_NAME, default=users"`
}

type JWTConfig struct {
	AccessSecret      string `env:"JWT_ACCESS_SECRET_KEY"`
	RefreshSecret     string `env:"JWT_REFRESH_SECRET_KEY"`
	Algorithm         string `env:"HASHING_ALGORITHM,            default=HS256"`
	AccessTTLMinutes  int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES,  default=20"`
	RefreshTTLMinutes int    `env:"REFRESH_TOKEN_EXPIRE_MINUTES, default=10080"`
}

type JournalConfig struct {
	Path string `env:"JOURNAL_PATH, default=journal.txt"`
}

// AccessTTL returns the access token lifetime as a duration.
func (c JWTConfig) AccessTTL() time.Duration {
	return time.Duration(c.AccessTTLMinutes) * time.Minute
}

// RefreshTTL returns the refresh token lifetime as a duration.
func (c JWTConfig) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshTTLMinutes) * time.Minute
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
