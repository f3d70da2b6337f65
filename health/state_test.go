// SPDX-License-Identifier: Unlicense OR MIT

package health_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hitheal/hitheal/health"
)

func TestDecrease(t *testing.T) {
	tests := []struct {
		name    string
		initial uint64
		amount  uint64
		want    uint64
	}{
		{name: "partial", initial: 10, amount: 1, want: 9},
		{name: "exact", initial: 1, amount: 1, want: 0},
		{name: "clamped", initial: 5, amount: 100, want: 0},
		{name: "already dead", initial: 0, amount: 1, want: 0},
		{name: "zero amount", initial: 7, amount: 0, want: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := health.NewState(tt.initial)
			assert.Equal(t, tt.want, s.Decrease(tt.amount))
			assert.Equal(t, tt.want, s.Current())
		})
	}
}

func TestIncrease(t *testing.T) {
	s := health.NewState(0)
	assert.Equal(t, uint64(2), s.Increase(2))
	assert.Equal(t, health.Alive, s.Vitality())
	assert.Equal(t, uint64(2), s.Increase(0))

	// No ceiling above the starting value.
	s = health.NewState(health.DefaultInitial)
	for i := 0; i < 100; i++ {
		s.Increase(2)
	}
	assert.Equal(t, uint64(210), s.Current())
}

func TestZeroState(t *testing.T) {
	var s health.State
	assert.Equal(t, uint64(0), s.Current())
	assert.Equal(t, health.Dead, s.Vitality())
	assert.Equal(t, uint64(0), s.Decrease(3))
}

func TestFloorHolds(t *testing.T) {
	s := health.NewState(10)
	for want := uint64(9); ; want-- {
		require.Equal(t, want, s.Decrease(1))
		if want == 0 {
			break
		}
	}
	assert.Equal(t, uint64(0), s.Decrease(1))
	assert.Equal(t, health.Dead, s.Vitality())
}

func TestRandomSequence(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	s := health.NewState(3)
	model := uint64(3)
	for i := 0; i < 1000; i++ {
		a := uint64(r.Intn(5))
		if r.Intn(2) == 0 {
			if model > a {
				model -= a
			} else {
				model = 0
			}
			require.Equal(t, model, s.Decrease(a))
		} else {
			model += a
			require.Equal(t, model, s.Increase(a))
		}
		require.Equal(t, model, s.Current())
	}
}

func TestConcurrentDecrease(t *testing.T) {
	const n = 1000
	s := health.NewState(n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Decrease(1)
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(0), s.Current())
}

func TestConcurrentMixed(t *testing.T) {
	const n = 500
	s := health.NewState(0)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Increase(2)
		}()
		go func() {
			defer wg.Done()
			s.Decrease(1)
		}()
	}
	wg.Wait()
	// Every decrease removes at most one point, so at least n remain.
	assert.GreaterOrEqual(t, s.Current(), uint64(n))
	assert.LessOrEqual(t, s.Current(), uint64(2*n))
}

func TestVitalityOf(t *testing.T) {
	assert.Equal(t, health.Dead, health.VitalityOf(0))
	assert.Equal(t, health.Alive, health.VitalityOf(1))
	assert.Equal(t, "Dead", health.Dead.String())
	assert.Equal(t, "Alive", health.Alive.String())
}
