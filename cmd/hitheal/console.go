// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hitheal/hitheal/console"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Hit and heal from the terminal",
	Long:  `Read hit, heal, status and quit commands from standard input, one per line.`,
	Args:  cobra.NoArgs,
	RunE:  runConsole,
}

func runConsole(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e, err := newEnv()
	if err != nil {
		return err
	}
	c, err := console.New(&console.Config{
		In:         cmd.InOrStdin(),
		Out:        cmd.OutOrStdout(),
		Controller: e.ctrl,
		Logger:     e.log,
	})
	if err != nil {
		return err
	}
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
