// SPDX-License-Identifier: Unlicense OR MIT

// Command hitheal opens a window with a health counter and Hit and Heal
// buttons.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hitheal/hitheal/health"
	"github.com/hitheal/hitheal/internal/config"
	"github.com/hitheal/hitheal/internal/logging"
)

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "hitheal",
	Short: "Hit and heal a health counter",
	Long: `Open a window showing a health counter. "Hit!" lowers it, "Heal!" raises it.

Every flag may also be set through the environment, for example
HITHEAL_HEALTH=20 or HITHEAL_LOG_LEVEL=debug.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runWindow,
}

func init() {
	cfg.BindFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().BoolVar(&withStdin, "stdin", false, "also read console commands from standard input")
	rootCmd.AddCommand(consoleCmd, screenshotCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.ApplyEnv(cmd.Flags(), nil); err != nil {
		return err
	}
	return cfg.Validate()
}

// env is the state shared by every subcommand.
type env struct {
	log  *logrus.Logger
	ctrl *health.Controller
}

func newEnv() (*env, error) {
	log, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	ctrl, err := health.NewController(&health.ControllerConfig{
		State:      health.NewState(cfg.Health),
		HitAmount:  cfg.Hit,
		HealAmount: cfg.Heal,
		Logger:     log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create controller: %w", err)
	}
	log.WithFields(logrus.Fields{
		"health": cfg.Health,
		"hit":    cfg.Hit,
		"heal":   cfg.Heal,
	}).Debug("Configured")
	return &env{log: log, ctrl: ctrl}, nil
}
