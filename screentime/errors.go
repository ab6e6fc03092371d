package screentime

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned for malformed clock values or minute counts
// outside [0, MinutesPerDay]. Callers match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Validate checks the fields Evaluate consumes.
func Validate(s Settings, u Usage) error {
	if _, err := ParseClock(s.BedtimeStart); err != nil {
		return fmt.Errorf("bedtimeStart: %w", err)
	}
	if _, err := ParseClock(s.BedtimeEnd); err != nil {
		return fmt.Errorf("bedtimeEnd: %w", err)
	}
	if err := checkMinutes("dailyLimit", s.DailyLimit); err != nil {
		return err
	}
	if err := checkMinutes("weekendExtension", s.WeekendExtension); err != nil {
		return err
	}
	if u.TotalMinutes < 0 {
		return fmt.Errorf("%w: totalMinutes %d is negative", ErrInvalidInput, u.TotalMinutes)
	}
	return nil
}

// ValidateSettings is the stricter check applied to edits before they are
// stored. It covers the informational fields too.
func ValidateSettings(s Settings) error {
	if err := Validate(s, Usage{}); err != nil {
		return err
	}
	if err := checkMinutes("videoLimit", s.VideoLimit); err != nil {
		return err
	}
	if err := checkMinutes("bookLimit", s.BookLimit); err != nil {
		return err
	}
	if s.RewardPoints < 0 {
		return fmt.Errorf("%w: rewardPoints %d is negative", ErrInvalidInput, s.RewardPoints)
	}
	switch s.ContentFiltering {
	case FilteringStrict, FilteringModerate, FilteringRelaxed:
	default:
		return fmt.Errorf("%w: contentFiltering %q is not strict, moderate or relaxed", ErrInvalidInput, s.ContentFiltering)
	}
	return nil
}

// checkMinutes bounds a per-day minute setting so limit arithmetic stays small.
func checkMinutes(field string, v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %s %d is negative", ErrInvalidInput, field, v)
	}
	if v > MinutesPerDay {
		return fmt.Errorf("%w: %s %d exceeds %d minutes", ErrInvalidInput, field, v, MinutesPerDay)
	}
	return nil
}
