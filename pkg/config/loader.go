package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Load parses environment variables into the provided struct, using `env`
// tags to define mappings:
//
//	type Config struct {
//	    Port          int    `env:"HTTP_PORT" envDefault:"8080"`
//	    AdminPassword string `env:"ADMIN_PASSWORD,required"`
//	}
func Load(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}
