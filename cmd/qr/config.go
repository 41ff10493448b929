package main

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/encoding/htmlindex"
)

// config holds defaults taken from the environment, which may be
// set in a .env file.  Command line flags override them.
type config struct {
	Mode    string `env:"QR_MODE" envDefault:"auto"`
	Level   string `env:"QR_LEVEL" envDefault:"auto"`
	Version uint64 `env:"QR_VERSION" envDefault:"0"`
	Mask    uint64 `env:"QR_MASK" envDefault:"8"`
	Format  string `env:"QR_FORMAT"`
	Charset string `env:"QR_CHARSET" envDefault:"utf-8"`
}

// loadConfig loads the named .env files (".env" if none) into the
// environment, where present, and parses the configuration.
// Variables already set are not overridden.
func loadConfig(files ...string) (config, error) {
	var c config
	if err := godotenv.Load(files...); err != nil &&
		!errors.Is(err, fs.ErrNotExist) {
		return c, err
	}
	if err := env.Parse(&c); err != nil {
		return c, err
	}
	return c, c.validate()
}

func (c *config) validate() error {
	switch {
	case !slices.Contains(modeNames, c.Mode):
		return fmt.Errorf("QR_MODE=%q: unknown mode", c.Mode)
	case !slices.Contains(levelNames, c.Level):
		return fmt.Errorf("QR_LEVEL=%q: unknown level", c.Level)
	case c.Version > 40:
		return fmt.Errorf("QR_VERSION=%d: out of range", c.Version)
	case c.Mask > 8:
		return fmt.Errorf("QR_MASK=%d: out of range", c.Mask)
	case c.Format != "" && !slices.Contains(formats, c.Format):
		return fmt.Errorf("QR_FORMAT=%q: unknown format", c.Format)
	}
	if _, err := htmlindex.Get(c.Charset); err != nil {
		return fmt.Errorf("QR_CHARSET=%q: %w", c.Charset, err)
	}
	return nil
}
