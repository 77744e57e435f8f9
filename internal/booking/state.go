package booking

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

// State is a keyword that partitions bookings by time or status.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var knownStates = map[State]struct{}{
	StateAll:      {},
	StateCurrent:  {},
	StatePast:     {},
	StateFuture:   {},
	StateWaiting:  {},
	StateRejected: {},
}

// Predicate is a state filter bound to a point in time.
type Predicate struct {
	state State
	now   time.Time
}

// Classify resolves a state keyword into a Predicate evaluated against now.
// Keywords are case-sensitive.
func Classify(keyword string, now time.Time) (Predicate, error) {
	s := State(keyword)
	if _, ok := knownStates[s]; !ok {
		return Predicate{}, apperror.InvalidState("Unknown state: " + keyword)
	}
	return Predicate{state: s, now: now}, nil
}

func (p Predicate) State() State {
	return p.state
}

func (p Predicate) Now() time.Time {
	return p.now
}

// Match reports whether b falls into the predicate's partition.
func (p Predicate) Match(b *Booking) bool {
	switch p.state {
	case StateAll:
		return true
	case StateCurrent:
		return !b.Start.After(p.now) && !b.End.Before(p.now)
	case StatePast:
		return b.End.Before(p.now)
	case StateFuture:
		return b.Start.After(p.now)
	case StateWaiting:
		return b.Status == StatusWaiting
	case StateRejected:
		return b.Status == StatusRejected
	default:
		return false
	}
}
