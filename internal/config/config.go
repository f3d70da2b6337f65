// SPDX-License-Identifier: Unlicense OR MIT

// Package config holds the command line configuration of hitheal.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/hitheal/hitheal/health"
)

// EnvPrefix prefixes the environment variable of every flag.
const EnvPrefix = "HITHEAL_"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config is the resolved configuration.
type Config struct {
	Health   uint64
	Hit      uint64
	Heal     uint64
	Title    string
	Width    int
	Height   int
	LogLevel string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Health:   health.DefaultInitial,
		Hit:      health.DefaultHitAmount,
		Heal:     health.DefaultHealAmount,
		Title:    "Hit & Heal",
		Width:    360,
		Height:   240,
		LogLevel: "warn",
	}
}

// BindFlags registers c's fields on fs, with c's current values as
// defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.Uint64Var(&c.Health, "health", c.Health, "initial health")
	fs.Uint64Var(&c.Hit, "hit", c.Hit, "health lost per hit")
	fs.Uint64Var(&c.Heal, "heal", c.Heal, "health gained per heal")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Width, "width", c.Width, "window width in dp")
	fs.IntVar(&c.Height, "height", c.Height, "window height in dp")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// ApplyEnv sets every flag of fs that was not given on the command line
// from its environment variable, if present. The variable of flag
// "log-level" is HITHEAL_LOG_LEVEL.
func ApplyEnv(fs *pflag.FlagSet, lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		v, ok := lookup(EnvName(f.Name))
		if !ok {
			return
		}
		if serr := fs.Set(f.Name, v); serr != nil {
			err = fmt.Errorf("%w: %s: %v", ErrInvalid, EnvName(f.Name), serr)
		}
	})
	return err
}

// EnvName returns the environment variable for a flag name.
func EnvName(flag string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Title == "":
		return fmt.Errorf("%w: empty title", ErrInvalid)
	case c.Hit == 0:
		return fmt.Errorf("%w: hit amount must be positive", ErrInvalid)
	case c.Heal == 0:
		return fmt.Errorf("%w: heal amount must be positive", ErrInvalid)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
