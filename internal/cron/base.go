// Package cron handles the schedule of heartbeats.
package cron

import "time"

// Schedule tells the next time a scheduled event should happen.
type Schedule interface {
	Next(now time.Time) time.Time
	Describe() string
}

// Next gets the next scheduled time. It returns the zero value for nil.
func Next(s Schedule, now time.Time) time.Time {
	if s == nil {
		return time.Time{}
	}

	return s.Next(now)
}

// DescribeSchedule gives back the original cron string, or "@disabled" for nil.
func DescribeSchedule(s Schedule) string {
	if s == nil {
		return Disabled
	}

	return s.Describe()
}
