// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"

	"github.com/spf13/cobra"

	"github.com/hitheal/hitheal/window"
)

var screenshotScale float32

var screenshotCmd = &cobra.Command{
	Use:   "screenshot FILE",
	Short: "Save a PNG of the window and exit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		if err := window.Screenshot(args[0], u, image.Pt(cfg.Width, cfg.Height), screenshotScale); err != nil {
			return err
		}
		e.log.WithField("file", args[0]).Info("Saved screenshot")
		return nil
	},
}

func init() {
	screenshotCmd.Flags().Float32Var(&screenshotScale, "scale", 1.5, "pixels per dp")
}
