package utils

import (
	"fmt"
	"time"
)

// ScheduleSlot is a single dosing target within the waking window.
type ScheduleSlot struct {
	Time    string  `json:"time"` // "HH:MM", 24-hour
	AmountL float64 `json:"amount_l"`
}

// ParseClock parses an "HH:MM" 24-hour time of day into minutes after
// midnight. Malformed input is rejected, never defaulted; callers that want
// a fallback substitute one before parsing.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, Invalid("time", fmt.Sprintf("%q is not a valid HH:MM time", s))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// GenerateSchedule spreads intervalCount doses evenly between wake and bed
// times. A bedtime at or before the wake time is treated as the following
// calendar day, so a 22:00-06:00 window spans 8 hours.
func GenerateSchedule(wakeTime, bedTime string, intervalCount int, amountPerIntervalL float64) ([]ScheduleSlot, error) {
	if intervalCount <= 0 {
		return nil, Invalid("intervals", "must be a positive integer")
	}
	wake, err := ParseClock(wakeTime)
	if err != nil {
		return nil, err
	}
	bed, err := ParseClock(bedTime)
	if err != nil {
		return nil, err
	}

	if bed <= wake {
		bed += 24 * 60 // bedtime falls on the next calendar day
	}
	totalMinutes := bed - wake
	if totalMinutes <= 0 {
		return nil, Invalid("time range", "bedtime must come after wake-up time")
	}

	stepMinutes := float64(totalMinutes) / float64(intervalCount)
	slots := make([]ScheduleSlot, 0, intervalCount)
	for i := 0; i < intervalCount; i++ {
		at := wake + int(stepMinutes*float64(i))
		slots = append(slots, ScheduleSlot{
			Time:    fmt.Sprintf("%02d:%02d", (at/60)%24, at%60),
			AmountL: amountPerIntervalL,
		})
	}
	return slots, nil
}
