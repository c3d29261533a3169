package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/joho/godotenv"
)

type Config struct {
	APIURL              string        `env:"API_URL"`
	HTTPTimeout         time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	GoogleMapsAPIKey    string        `env:"GOOGLE_MAPS_API_KEY"`
	GoogleMapsMapID     string        `env:"GOOGLE_MAPS_MAP_ID"`
	GoogleMapsBaseURL   string        `env:"GOOGLE_MAPS_BASE_URL" envDefault:"https://maps.googleapis.com"`
	CloudinaryCloudName string        `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string        `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string        `env:"CLOUDINARY_API_SECRET"`
	RedisAddr           string        `env:"REDIS_ADDR"`
	RedisPassword       string        `env:"REDIS_PASSWORD"`
	SessionID           string        `env:"SESSION_ID"`
	SessionTTL          time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	StaleAfter          time.Duration `env:"STALE_AFTER" envDefault:"5m"`
	InactivityTimeout   time.Duration `env:"INACTIVITY_TIMEOUT" envDefault:"30m"`
	AdminEmail          string        `env:"ADMIN_EMAIL"`
	AdminPassword       string        `env:"ADMIN_PASSWORD"`
	MockPort            int           `env:"MOCK_PORT" envDefault:"8081"`
}

func New() *Config {
	if loadErr := godotenv.Load(".env"); loadErr != nil {
		log.Printf("[Env]: unable to load .env file %v", loadErr)
	}

	var cfg Config

	if parseErr := env.Parse(&cfg); parseErr != nil {
		log.Printf("[Env]: failed to parse environment variables: %v", parseErr)
	}

	return &cfg
}

// MapsEnabled reports whether map-dependent features can be used.
func (c *Config) MapsEnabled() bool {
	return c.GoogleMapsAPIKey != ""
}

func (c *Config) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != ""
}
