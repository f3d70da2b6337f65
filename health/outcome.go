// SPDX-License-Identifier: Unlicense OR MIT

package health

import "strconv"

// Event is a user action dispatched to a State.
type Event uint8

// Outcome tags the result of an Event and selects the message shown
// to the user.
type Outcome uint8

// Report is what a presenter needs to refresh its display after an
// event: the resulting counter value and the outcome tag.
type Report struct {
	Value   uint64
	Outcome Outcome
}

const (
	Hit Event = iota
	Heal
)

const (
	// Greeting is the outcome of the initial render, before any event.
	Greeting Outcome = iota
	HitAlive
	HitDead
	Healed
)

var messages = map[Outcome]string{
	Greeting: "Hello",
	HitAlive: "Ouch! You hit me!",
	HitDead:  "...",
	Healed:   "Thanks!",
}

// Classify maps an event and the counter value it produced to an
// Outcome.
func Classify(e Event, result uint64) Outcome {
	switch e {
	case Hit:
		if result == 0 {
			return HitDead
		}
		return HitAlive
	case Heal:
		return Healed
	default:
		panic("invalid Event")
	}
}

// Message returns the user facing text for o.
func (o Outcome) Message() string {
	m, ok := messages[o]
	if !ok {
		panic("invalid Outcome")
	}
	return m
}

func (o Outcome) String() string {
	switch o {
	case Greeting:
		return "Greeting"
	case HitAlive:
		return "HitAlive"
	case HitDead:
		return "HitDead"
	case Healed:
		return "Healed"
	default:
		panic("invalid Outcome")
	}
}

func (e Event) String() string {
	switch e {
	case Hit:
		return "Hit"
	case Heal:
		return "Heal"
	default:
		panic("invalid Event")
	}
}

// Text formats the counter value for display.
func (r Report) Text() string {
	return strconv.FormatUint(r.Value, 10)
}

// Message is shorthand for r.Outcome.Message().
func (r Report) Message() string {
	return r.Outcome.Message()
}

// Vitality of the reported value.
func (r Report) Vitality() Vitality {
	return VitalityOf(r.Value)
}
