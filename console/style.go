// SPDX-License-Identifier: Unlicense OR MIT

package console

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hitheal/hitheal/health"
)

type styles struct {
	label   lipgloss.Style
	value   lipgloss.Style
	message map[health.Outcome]lipgloss.Style
	hint    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	msg := r.NewStyle().PaddingLeft(2)
	return styles{
		label: r.NewStyle().Foreground(lipgloss.Color("12")),
		value: r.NewStyle().Bold(true),
		message: map[health.Outcome]lipgloss.Style{
			health.Greeting: msg,
			health.HitAlive: msg.Foreground(lipgloss.Color("11")), // Yellow
			health.HitDead:  msg.Foreground(lipgloss.Color("9")),  // Red
			health.Healed:   msg.Foreground(lipgloss.Color("10")), // Green
		},
		hint: r.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
	}
}

func (s styles) render(r health.Report) string {
	return s.label.Render("Current Health:") + " " +
		s.value.Render(r.Text()) +
		s.message[r.Outcome].Render(r.Message())
}
