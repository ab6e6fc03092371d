// Package screentime holds the screen-time policy: the status a child is in
// given their settings, today's usage and the current moment, plus the
// weekly chart projection. Everything here is pure; callers load the records,
// apply defaults and pass the clock in.
package screentime

import "time"

// Status is the single classification a dashboard renders as a badge.
type Status string

const (
	StatusWithinLimits     Status = "within-limits"
	StatusApproachingLimit Status = "approaching-limit"
	StatusLimitExceeded    Status = "limit-exceeded"
	StatusBedtime          Status = "bedtime"
)

// ApproachingNumerator / ApproachingDenominator is the fraction of the
// effective limit at which a child is approaching it (0.8).
const (
	ApproachingNumerator   = 4
	ApproachingDenominator = 5
)

// Result is what Evaluate hands back to the host.
type Result struct {
	Status              Status  `json:"status"`
	EffectiveDailyLimit int     `json:"effectiveDailyLimit"`
	UsedMinutes         int     `json:"usedMinutes"`
	RemainingMinutes    int     `json:"remainingMinutes"`
	UsedFraction        float64 `json:"usedFraction"`
}

// Blocked reports whether content access should be refused.
func (r Result) Blocked() bool {
	return r.Status == StatusLimitExceeded || r.Status == StatusBedtime
}

// EffectiveDailyLimit is dailyLimit plus weekendExtension on Saturday and Sunday.
func EffectiveDailyLimit(s Settings, now time.Time) int {
	if IsWeekend(now) {
		return s.DailyLimit + s.WeekendExtension
	}
	return s.DailyLimit
}

type rule struct {
	status  Status
	matches func(s Settings, r Result, minute int) bool
}

// rules are checked in order, first match wins.
var rules = []rule{
	{StatusWithinLimits, func(s Settings, _ Result, _ int) bool {
		return !s.Enabled
	}},
	{StatusBedtime, func(s Settings, _ Result, minute int) bool {
		start, _ := ParseClock(s.BedtimeStart)
		end, _ := ParseClock(s.BedtimeEnd)
		return InBedtime(start, end, minute)
	}},
	{StatusLimitExceeded, func(_ Settings, r Result, _ int) bool {
		return r.UsedMinutes >= r.EffectiveDailyLimit
	}},
	{StatusApproachingLimit, func(_ Settings, r Result, _ int) bool {
		return r.UsedMinutes*ApproachingDenominator >= r.EffectiveDailyLimit*ApproachingNumerator
	}},
}

// Evaluate classifies a child and computes the numbers a dashboard shows.
// usage must belong to the calendar day of now. Invalid input yields
// ErrInvalidInput and no result.
//
// An effective limit of 0 means no free time: the child is limit-exceeded
// whenever the policy is on and it is not bedtime, even with zero usage.
func Evaluate(s Settings, u Usage, now time.Time) (Result, error) {
	if err := Validate(s, u); err != nil {
		return Result{}, err
	}

	limit := EffectiveDailyLimit(s, now)
	r := Result{
		Status:              StatusWithinLimits,
		EffectiveDailyLimit: limit,
		UsedMinutes:         u.TotalMinutes,
		RemainingMinutes:    max(0, limit-u.TotalMinutes),
	}
	if limit > 0 {
		r.UsedFraction = min(1, float64(u.TotalMinutes)/float64(limit))
	}

	minute := MinuteOfDay(now)
	for _, rl := range rules {
		if rl.matches(s, r, minute) {
			r.Status = rl.status
			break
		}
	}
	return r, nil
}

// Severity orders the numeric statuses: within < approaching < exceeded.
// Bedtime sits outside that progression and ranks highest.
func Severity(st Status) int {
	switch st {
	case StatusWithinLimits:
		return 0
	case StatusApproachingLimit:
		return 1
	case StatusLimitExceeded:
		return 2
	case StatusBedtime:
		return 3
	}
	return -1
}
