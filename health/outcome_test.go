// SPDX-License-Identifier: Unlicense OR MIT

package health_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hitheal/hitheal/health"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		event   health.Event
		result  uint64
		outcome health.Outcome
		message string
	}{
		{health.Hit, 9, health.HitAlive, "Ouch! You hit me!"},
		{health.Hit, 0, health.HitDead, "..."},
		{health.Heal, 2, health.Healed, "Thanks!"},
		{health.Heal, 0, health.Healed, "Thanks!"},
	}
	for _, tt := range tests {
		got := health.Classify(tt.event, tt.result)
		assert.Equal(t, tt.outcome, got, "%v -> %d", tt.event, tt.result)
		assert.Equal(t, tt.message, got.Message())
	}
}

func TestReport(t *testing.T) {
	r := health.Report{Value: 12, Outcome: health.Healed}
	assert.Equal(t, "12", r.Text())
	assert.Equal(t, "Thanks!", r.Message())
	assert.Equal(t, health.Alive, r.Vitality())

	r = health.Report{}
	assert.Equal(t, "0", r.Text())
	assert.Equal(t, "Hello", r.Message())
	assert.Equal(t, health.Dead, r.Vitality())
}

func TestInvalidOutcome(t *testing.T) {
	assert.Panics(t, func() { _ = health.Outcome(42).Message() })
	assert.Panics(t, func() { health.Classify(health.Event(7), 1) })
}
