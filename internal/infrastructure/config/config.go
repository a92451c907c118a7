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

	JWT        JWTConfig
	Mongo      MongoConfig
	Redis      RedisConfig
	Cloudinary CloudinaryConfig
}

type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET"`
	AccessTTL  time.Duration `env:"JWT_ACCESS_TTL,  default=15m"`
	RefreshTTL time.Duration `env:"JWT_REFRESH_TTL, default=168h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=pixelgram"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type CloudinaryConfig struct {
	// URL is a cloudinary:// connection string:
	// cloudinary://<api_key>:<api_secret>@<cloud_name>
	URL string `env:"CLOUDINARY_URL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
