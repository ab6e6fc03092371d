package screentime

import "time"

// DaysPerWeek is the length of the weekly chart.
const DaysPerWeek = 7

// DayUsage is one bar of the weekly chart.
type DayUsage struct {
	Date        string `json:"date"`
	DayLabel    string `json:"dayLabel"`
	MinutesUsed int    `json:"minutesUsed"`
}

// WeekDates returns midnight of the seven calendar days ending on end,
// oldest first, in end's location.
func WeekDates(end time.Time) [DaysPerWeek]time.Time {
	var days [DaysPerWeek]time.Time
	y, m, d := end.Date()
	for i := 0; i < DaysPerWeek; i++ {
		// time.Date normalizes the day offset, so DST days do not drift.
		days[i] = time.Date(y, m, d-(DaysPerWeek-1-i), 0, 0, 0, 0, end.Location())
	}
	return days
}

// SummarizeWeek projects seven daily records, oldest first and aligned to
// WeekDates(end), onto chart bars. A nil record counts as zero minutes.
func SummarizeWeek(daily [DaysPerWeek]*Usage, end time.Time) [DaysPerWeek]DayUsage {
	var out [DaysPerWeek]DayUsage
	for i, day := range WeekDates(end) {
		out[i] = DayUsage{
			Date:     DateKey(day),
			DayLabel: day.Weekday().String()[:3],
		}
		if daily[i] != nil {
			out[i].MinutesUsed = daily[i].TotalMinutes
		}
	}
	return out
}

// AlignWeek places records onto the seven days ending on end by their Date
// key. Records outside the week are dropped.
func AlignWeek(records []Usage, end time.Time) [DaysPerWeek]*Usage {
	index := make(map[string]int, DaysPerWeek)
	for i, day := range WeekDates(end) {
		index[DateKey(day)] = i
	}
	var aligned [DaysPerWeek]*Usage
	for i := range records {
		if pos, ok := index[records[i].Date]; ok {
			aligned[pos] = &records[i]
		}
	}
	return aligned
}
