// SPDX-License-Identifier: Unlicense OR MIT

package health

import "sync/atomic"

// DefaultInitial is the hit point count of a fresh State when no other
// value is configured.
const DefaultInitial = 10

// State is a hit point counter that never drops below zero. The zero
// State is dead and ready to use.
type State struct {
	value atomic.Uint64
}

// Vitality is derived from the counter: any positive value is Alive.
type Vitality uint8

const (
	Dead Vitality = iota
	Alive
)

// NewState returns a State holding initial.
func NewState(initial uint64) *State {
	s := new(State)
	s.value.Store(initial)
	return s
}

// Current returns the counter value.
func (s *State) Current() uint64 {
	return s.value.Load()
}

// Decrease subtracts amount, clamping at zero, and returns the stored
// result.
func (s *State) Decrease(amount uint64) uint64 {
	_, next := s.decrease(amount)
	return next
}

// Increase adds amount and returns the stored result.
func (s *State) Increase(amount uint64) uint64 {
	_, next := s.increase(amount)
	return next
}

// decrease returns the value it replaced along with the new value.
func (s *State) decrease(amount uint64) (prev, next uint64) {
	for {
		prev = s.value.Load()
		next = 0
		if prev > amount {
			next = prev - amount
		}
		if s.value.CompareAndSwap(prev, next) {
			return prev, next
		}
	}
}

func (s *State) increase(amount uint64) (prev, next uint64) {
	next = s.value.Add(amount)
	return next - amount, next
}

// Vitality reports whether the counter is above zero.
func (s *State) Vitality() Vitality {
	return VitalityOf(s.Current())
}

// VitalityOf returns the Vitality of a counter value.
func VitalityOf(value uint64) Vitality {
	if value == 0 {
		return Dead
	}
	return Alive
}

func (v Vitality) String() string {
	switch v {
	case Dead:
		return "Dead"
	case Alive:
		return "Alive"
	default:
		panic("invalid Vitality")
	}
}
