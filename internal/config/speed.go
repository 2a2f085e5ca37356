package config

import "time"

// SpeedSchedule calculates the tick delay from the number of items eaten.
// The delay shrinks by Step per item and never drops below Min.
type SpeedSchedule struct {
	Initial time.Duration
	Step    time.Duration
	Min     time.Duration
}

// Delay returns the tick delay after eaten items.
func (s SpeedSchedule) Delay(eaten int) time.Duration {
	floor := s.floor()
	if eaten <= 0 || s.Step <= 0 {
		return max(s.Initial, floor)
	}

	// Compare before multiplying so huge counts cannot overflow.
	room := s.Initial - floor
	if room <= 0 || time.Duration(eaten) > room/s.Step {
		return floor
	}
	return s.Initial - time.Duration(eaten)*s.Step
}

// Next returns the delay that follows current after one more item.
func (s SpeedSchedule) Next(current time.Duration) time.Duration {
	next := current - s.Step
	if s.Step < 0 || next < s.floor() {
		return s.floor()
	}
	return next
}

// floor is the minimum delay, never less than one millisecond.
func (s SpeedSchedule) floor() time.Duration {
	return max(s.Min, time.Millisecond)
}
