// SPDX-License-Identifier: Unlicense OR MIT

package config_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hitheal/hitheal/internal/config"
)

func parse(t *testing.T, args []string, env map[string]string) (config.Config, error) {
	t.Helper()
	cfg := config.Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	err := config.ApplyEnv(fs, func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	return cfg, err
}

func TestDefault(t *testing.T) {
	cfg, err := parse(t, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, uint64(10), cfg.Health)
	assert.Equal(t, uint64(1), cfg.Hit)
	assert.Equal(t, uint64(2), cfg.Heal)
}

func TestFlagsAndEnv(t *testing.T) {
	env := map[string]string{
		"HITHEAL_HEALTH":    "3",
		"HITHEAL_HEAL":      "5",
		"HITHEAL_LOG_LEVEL": "debug",
	}
	cfg, err := parse(t, []string{"--heal", "7", "--title", "Ouch"}, env)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), cfg.Health)
	assert.Equal(t, uint64(7), cfg.Heal, "flag wins over environment")
	assert.Equal(t, "Ouch", cfg.Title)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestZeroAmountFromEnv(t *testing.T) {
	cfg, err := parse(t, nil, map[string]string{"HITHEAL_HEAL": "0"})
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}

func TestBadEnv(t *testing.T) {
	_, err := parse(t, nil, map[string]string{"HITHEAL_HEALTH": "-1"})
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "HITHEAL_HEALTH")
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*config.Config){
		"empty title": func(c *config.Config) { c.Title = "" },
		"zero width":  func(c *config.Config) { c.Width = 0 },
		"zero hit":    func(c *config.Config) { c.Hit = 0 },
		"zero heal":   func(c *config.Config) { c.Heal = 0 },
		"bad level":   func(c *config.Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "HITHEAL_LOG_LEVEL", config.EnvName("log-level"))
}
