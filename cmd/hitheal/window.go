// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"os"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	"github.com/hitheal/hitheal/console"
	"github.com/hitheal/hitheal/health"
	"github.com/hitheal/hitheal/window"
)

var withStdin bool

func runWindow(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	u, err := window.New(&window.Config{
		Controller: e.ctrl,
		Title:      cfg.Title,
		Logger:     e.log,
	})
	if err != nil {
		return err
	}
	w := new(app.Window)
	w.Option(
		app.Title(cfg.Title),
		app.Size(unit.Dp(cfg.Width), unit.Dp(cfg.Height)),
	)

	if withStdin {
		c, err := console.New(&console.Config{
			In:         os.Stdin,
			Out:        os.Stdout,
			Controller: e.ctrl,
			Logger:     e.log,
			OnReport: func(r health.Report) {
				u.Apply(r)
				w.Invalidate()
			},
		})
		if err != nil {
			return err
		}
		go func() {
			if err := c.Run(context.Background()); err != nil {
				e.log.WithError(err).Error("Console stopped")
				return
			}
			w.Perform(system.ActionClose)
		}()
	}

	go func() {
		if err := window.Run(w, u); err != nil {
			e.log.WithError(err).Fatal("Window failed")
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}
