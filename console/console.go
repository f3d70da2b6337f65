// SPDX-License-Identifier: Unlicense OR MIT

// Package console is a line oriented front end for a health.Controller.
// It reads one command per line and prints the resulting report.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/hitheal/hitheal/health"
)

// Config configures a Console. In, Out and Controller are required.
type Config struct {
	In         io.Reader
	Out        io.Writer
	Controller *health.Controller
	// OnReport, if set, is called with every report after it is printed.
	OnReport func(health.Report)
	Logger   logrus.FieldLogger
}

// Console reads commands and dispatches them to its controller.
type Console struct {
	in       io.Reader
	out      io.Writer
	ctrl     *health.Controller
	onReport func(health.Report)
	log      logrus.FieldLogger
	styles   styles
	last     health.Report
}

type command uint8

const (
	cmdUnknown command = iota
	cmdHit
	cmdHeal
	cmdStatus
	cmdQuit
)

var commands = map[string]command{
	"hit":    cmdHit,
	"h":      cmdHit,
	"heal":   cmdHeal,
	"e":      cmdHeal,
	"status": cmdStatus,
	"s":      cmdStatus,
	"quit":   cmdQuit,
	"q":      cmdQuit,
}

const usage = "commands: hit (h), heal (e), status (s), quit (q)"

// New returns a Console for cfg.
func New(cfg *Config) (*Console, error) {
	switch {
	case cfg == nil:
		return nil, errors.New("console: config is required")
	case cfg.In == nil:
		return nil, errors.New("console: input is required")
	case cfg.Out == nil:
		return nil, errors.New("console: output is required")
	case cfg.Controller == nil:
		return nil, errors.New("console: controller is required")
	}
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Console{
		in:       cfg.In,
		out:      cfg.Out,
		ctrl:     cfg.Controller,
		onReport: cfg.OnReport,
		log:      log,
		styles:   newStyles(lipgloss.NewRenderer(cfg.Out)),
	}, nil
}

// Run prints the current report and then serves commands until the
// input ends, a quit command is read or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- sc.Err()
	}()

	if err := c.print(c.ctrl.Snapshot()); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					return fmt.Errorf("console: read: %w", err)
				}
				return nil
			}
			quit, err := c.handle(line)
			if err != nil || quit {
				return err
			}
		}
	}
}

func (c *Console) handle(line string) (quit bool, err error) {
	word := strings.ToLower(strings.TrimSpace(line))
	if word == "" {
		return false, nil
	}
	switch commands[word] {
	case cmdHit:
		return false, c.dispatch(c.ctrl.OnHit())
	case cmdHeal:
		return false, c.dispatch(c.ctrl.OnHeal())
	case cmdStatus:
		return false, c.print(status(c.last, c.ctrl.Snapshot().Value))
	case cmdQuit:
		return true, nil
	default:
		c.log.WithField("command", word).Debug("Unknown console command")
		_, err := fmt.Fprintln(c.out, c.styles.hint.Render(usage))
		return false, err
	}
}

func (c *Console) dispatch(r health.Report) error {
	if err := c.print(r); err != nil {
		return err
	}
	if c.onReport != nil {
		c.onReport(r)
	}
	return nil
}

func (c *Console) print(r health.Report) error {
	c.last = r
	_, err := fmt.Fprintln(c.out, c.styles.render(r))
	return err
}

// status reports value with the message of the last event, unless
// another dispatch path has since moved the counter across zero.
func status(last health.Report, value uint64) health.Report {
	r := health.Report{Value: value, Outcome: last.Outcome}
	switch {
	case r.Outcome == health.Greeting:
	case r.Vitality() == health.Dead:
		r.Outcome = health.HitDead
	case r.Outcome == health.HitDead:
		// Only a heal revives.
		r.Outcome = health.Healed
	}
	return r
}

// Render formats r as a single line without terminal styling.
func Render(r health.Report) string {
	return newStyles(lipgloss.NewRenderer(io.Discard)).render(r)
}
