// SPDX-License-Identifier: Unlicense OR MIT

package window

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"gioui.org/gpu/headless"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

// Screenshot renders a single frame of u at size dp and scale into a
// PNG file.
func Screenshot(path string, u *UI, size image.Point, scale float32) error {
	sz := image.Point{X: int(float32(size.X) * scale), Y: int(float32(size.Y) * scale)}
	w, err := headless.NewWindow(sz.X, sz.Y)
	if err != nil {
		return fmt.Errorf("window: headless: %w", err)
	}
	defer w.Release()
	gtx := layout.Context{
		Ops: new(op.Ops),
		Metric: unit.Metric{
			PxPerDp: scale,
			PxPerSp: scale,
		},
		Constraints: layout.Exact(sz),
	}
	u.Layout(gtx)
	if err := w.Frame(gtx.Ops); err != nil {
		return err
	}
	img := image.NewRGBA(image.Rectangle{Max: sz})
	if err := w.Screenshot(img); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o666)
}
