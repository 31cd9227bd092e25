package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type (
	Properties struct {
		Port         string `env:"PORT" envDefault:"4000"`
		LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
		ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:3000"`
		StaticDir    string `env:"STATIC_DIR" envDefault:"frontend/dist"`

		Mongo  MongoProperties `envPrefix:"MONGO_"`
		Auth   AuthProperties  `envPrefix:"AUTH_"`
		Images ImageProperties `envPrefix:"IMAGES_"`
	}

	MongoProperties struct {
		URI      string        `env:"URI" envDefault:"mongodb://localhost:27017"`
		Database string        `env:"DB" envDefault:"chirpnest"`
		Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
	}

	AuthProperties struct {
		Secret       string        `env:"SECRET_KEY"`
		TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"360h"`
		CookieName   string        `env:"COOKIE" envDefault:"jwt"`
		CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
	}

	ImageProperties struct {
		Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
		AccessKey string `env:"ACCESS_KEY"`
		SecretKey string `env:"SECRET_KEY"`
		Bucket    string `env:"BUCKET" envDefault:"chirpnest"`
		UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
		// PublicURL is the base the hosted object URLs are built from,
		// e.g. https://img.example.com. Defaults to the endpoint.
		PublicURL string `env:"PUBLIC_URL"`
	}
)

func ReadProperties() (*Properties, error) {
	properties := &Properties{}
	if err := env.Parse(properties); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return properties, nil
}
