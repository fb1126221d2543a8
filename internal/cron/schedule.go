package cron

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Disabled is the special expression turning off a schedule.
const Disabled = "@disabled"

// cronSchedule holds a parsed cron expression and its original input.
type cronSchedule struct {
	spec     string
	schedule cron.Schedule
}

// New parses a standard cron expression or a descriptor such as "@every 5m".
// The expression [Disabled] gives a nil Schedule.
func New(spec string) (Schedule, error) {
	if spec == Disabled {
		return nil, nil //nolint:nilnil
	}

	sche, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", spec, err)
	}

	return &cronSchedule{spec: spec, schedule: sche}, nil
}

// MustNew creates a new Schedule, and panics if it fails to parse the input.
func MustNew(spec string) Schedule {
	s, err := New(spec)
	if err != nil {
		panic(fmt.Errorf("cron.MustNew failed: %w", err))
	}

	return s
}

// Next tells the next scheduled time after now.
func (s *cronSchedule) Next(now time.Time) time.Time {
	return s.schedule.Next(now)
}

// Describe gives back the original cron string.
func (s *cronSchedule) Describe() string {
	return s.spec
}
