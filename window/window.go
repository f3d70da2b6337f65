// SPDX-License-Identifier: Unlicense OR MIT

// Package window presents a health.Controller in a Gio window: a header
// with Hit and Heal buttons, the current health and a status message.
package window

import (
	"errors"
	"image"
	"image/color"
	"io"
	"sync"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/sirupsen/logrus"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/hitheal/hitheal/health"
)

var (
	destructive = color.NRGBA{R: 0xc0, G: 0x1c, B: 0x28, A: 0xff}
	suggested   = color.NRGBA{R: 0x35, G: 0x84, B: 0xe4, A: 0xff}
	divider     = color.NRGBA{A: 0x30}
)

// UI is the widget state of the window. Layout must be called from the
// frame goroutine; Apply and Report may be called from any goroutine.
type UI struct {
	theme *material.Theme
	ctrl  *health.Controller
	log   logrus.FieldLogger
	title string

	hit, heal         widget.Clickable
	hitIcon, healIcon *widget.Icon

	mu     sync.Mutex
	report health.Report
}

// Config configures a UI. Controller is required.
type Config struct {
	Theme      *material.Theme
	Controller *health.Controller
	Title      string
	Logger     logrus.FieldLogger
}

// NewTheme returns a material theme shaping text with the Go fonts.
func NewTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection()))
	return th
}

// New returns a UI showing the controller's current value and a
// greeting.
func New(cfg *Config) (*UI, error) {
	if cfg == nil || cfg.Controller == nil {
		return nil, errors.New("window: controller is required")
	}
	hitIcon, err := widget.NewIcon(icons.ContentRemove)
	if err != nil {
		return nil, err
	}
	healIcon, err := widget.NewIcon(icons.ActionFavorite)
	if err != nil {
		return nil, err
	}
	th := cfg.Theme
	if th == nil {
		th = NewTheme()
	}
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &UI{
		theme:    th,
		ctrl:     cfg.Controller,
		log:      log,
		title:    cfg.Title,
		hitIcon:  hitIcon,
		healIcon: healIcon,
		report:   cfg.Controller.Snapshot(),
	}, nil
}

// Apply replaces the displayed report. Callers outside the frame
// goroutine must invalidate the window afterwards.
func (u *UI) Apply(r health.Report) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.report = r
}

// Report returns the displayed report.
func (u *UI) Report() health.Report {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.report
}

// Run processes the events of w until it is destroyed.
func Run(w *app.Window, u *UI) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			u.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (u *UI) update(gtx layout.Context) {
	for u.hit.Clicked(gtx) {
		u.log.Debug("Hit clicked")
		u.Apply(u.ctrl.OnHit())
	}
	for u.heal.Clicked(gtx) {
		u.log.Debug("Heal clicked")
		u.Apply(u.ctrl.OnHeal())
	}
}

// Layout handles button clicks and draws the window contents.
func (u *UI) Layout(gtx layout.Context) layout.Dimensions {
	u.update(gtx)
	r := u.Report()
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(u.layoutHeader),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return separator(gtx, divider)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return u.layoutContent(gtx, r)
		}),
	)
}

func (u *UI) layoutHeader(gtx layout.Context) layout.Dimensions {
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(iconAndTextButton{
				theme:  u.theme,
				button: &u.hit,
				icon:   u.hitIcon,
				word:   "Hit!",
				bg:     destructive,
			}.Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				l := material.Subtitle1(u.theme, u.title)
				l.Alignment = text.Middle
				l.MaxLines = 1
				return l.Layout(gtx)
			}),
			layout.Rigid(iconAndTextButton{
				theme:  u.theme,
				button: &u.heal,
				icon:   u.healIcon,
				word:   "Heal!",
				bg:     suggested,
			}.Layout),
		)
	})
}

func (u *UI) layoutContent(gtx layout.Context, r health.Report) layout.Dimensions {
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	return layout.Flex{
		Axis:      layout.Vertical,
		Spacing:   layout.SpaceSides,
		Alignment: layout.Middle,
	}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Baseline}.Layout(gtx,
				layout.Rigid(material.Body1(u.theme, "Current Health:").Layout),
				layout.Rigid(layout.Spacer{Width: unit.Dp(10)}.Layout),
				layout.Rigid(material.H4(u.theme, r.Text()).Layout),
			)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Top: unit.Dp(16), Bottom: unit.Dp(16)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return separator(gtx, divider)
			})
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			l := material.H6(u.theme, r.Message())
			if r.Outcome == health.HitDead {
				l.Color = destructive
			}
			return l.Layout(gtx)
		}),
	)
}

func separator(gtx layout.Context, c color.NRGBA) layout.Dimensions {
	size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(1))
	paint.FillShape(gtx.Ops, c, clip.Rect{Max: size}.Op())
	return layout.Dimensions{Size: size}
}

type iconAndTextButton struct {
	theme  *material.Theme
	button *widget.Clickable
	icon   *widget.Icon
	word   string
	bg     color.NRGBA
}

func (b iconAndTextButton) Layout(gtx layout.Context) layout.Dimensions {
	btn := material.ButtonLayout(b.theme, b.button)
	btn.Background = b.bg
	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(unit.Dp(10)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			textIconSpacer := unit.Dp(4)

			layIcon := layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{Right: textIconSpacer}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					gtx.Constraints.Max.X = gtx.Dp(18)
					return b.icon.Layout(gtx, b.theme.ContrastFg)
				})
			})

			layLabel := layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{Left: textIconSpacer}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					l := material.Body1(b.theme, b.word)
					l.Color = b.theme.ContrastFg
					return l.Layout(gtx)
				})
			})

			return layout.Flex{Alignment: layout.Middle}.Layout(gtx, layIcon, layLabel)
		})
	})
}
