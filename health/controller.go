// SPDX-License-Identifier: Unlicense OR MIT

package health

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

const (
	DefaultHitAmount  = 1
	DefaultHealAmount = 2
)

// ControllerConfig configures a Controller. State is required. Zero
// amounts select DefaultHitAmount and DefaultHealAmount.
type ControllerConfig struct {
	State      *State
	HitAmount  uint64
	HealAmount uint64
	// Logger receives one entry per event. Nil discards them.
	Logger logrus.FieldLogger
}

// Controller is the entry point of presenters. Its methods may be
// called from any goroutine.
type Controller struct {
	state *State
	hit   uint64
	heal  uint64
	log   logrus.FieldLogger
}

// NewController returns a Controller for cfg.State.
func NewController(cfg *ControllerConfig) (*Controller, error) {
	if cfg == nil {
		return nil, errors.New("health: controller config is required")
	}
	if cfg.State == nil {
		return nil, errors.New("health: state is required")
	}
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	c := &Controller{
		state: cfg.State,
		hit:   cfg.HitAmount,
		heal:  cfg.HealAmount,
		log:   log,
	}
	if c.hit == 0 {
		c.hit = DefaultHitAmount
	}
	if c.heal == 0 {
		c.heal = DefaultHealAmount
	}
	return c, nil
}

// OnHit applies a hit event.
func (c *Controller) OnHit() Report {
	prev, next := c.state.decrease(c.hit)
	return c.report(Hit, prev, next)
}

// OnHeal applies a heal event.
func (c *Controller) OnHeal() Report {
	prev, next := c.state.increase(c.heal)
	return c.report(Heal, prev, next)
}

// Dispatch applies e. It is OnHit or OnHeal selected at run time.
func (c *Controller) Dispatch(e Event) Report {
	switch e {
	case Hit:
		return c.OnHit()
	case Heal:
		return c.OnHeal()
	default:
		panic("invalid Event")
	}
}

// Snapshot returns the current value tagged Greeting, for the first
// render of a presenter.
func (c *Controller) Snapshot() Report {
	return Report{Value: c.state.Current(), Outcome: Greeting}
}

func (c *Controller) report(e Event, prev, next uint64) Report {
	r := Report{Value: next, Outcome: Classify(e, next)}
	entry := c.log.WithFields(logrus.Fields{
		"event":   e.String(),
		"value":   next,
		"outcome": r.Outcome.String(),
	})
	before, after := VitalityOf(prev), VitalityOf(next)
	if before != after {
		entry.WithField("vitality", after.String()).Info("Vitality changed")
	} else {
		entry.Debug("Health event")
	}
	return r
}
