package screentime

import "time"

// Content filtering levels. Informational only, the evaluator never reads them.
const (
	FilteringStrict   = "strict"
	FilteringModerate = "moderate"
	FilteringRelaxed  = "relaxed"
)

// Settings is the fully populated per-child policy record.
type Settings struct {
	DailyLimit        int      `json:"dailyLimit" firestore:"dailyLimit"`
	VideoLimit        int      `json:"videoLimit" firestore:"videoLimit"`
	BookLimit         int      `json:"bookLimit" firestore:"bookLimit"` // 0 means unlimited
	BedtimeStart      string   `json:"bedtimeStart" firestore:"bedtimeStart"`
	BedtimeEnd        string   `json:"bedtimeEnd" firestore:"bedtimeEnd"`
	WeekendExtension  int      `json:"weekendExtension" firestore:"weekendExtension"`
	Enabled           bool     `json:"enabled" firestore:"enabled"`
	ContentFiltering  string   `json:"contentFiltering" firestore:"contentFiltering"`
	AllowedCategories []string `json:"allowedCategories" firestore:"allowedCategories"`
	RewardSystem      bool     `json:"rewardSystem" firestore:"rewardSystem"`
	RewardPoints      int      `json:"rewardPoints" firestore:"rewardPoints"`
}

// PartialSettings is what a stored document or an edit request carries.
// Nil fields are absent.
type PartialSettings struct {
	DailyLimit        *int      `json:"dailyLimit,omitempty" firestore:"dailyLimit,omitempty"`
	VideoLimit        *int      `json:"videoLimit,omitempty" firestore:"videoLimit,omitempty"`
	BookLimit         *int      `json:"bookLimit,omitempty" firestore:"bookLimit,omitempty"`
	BedtimeStart      *string   `json:"bedtimeStart,omitempty" firestore:"bedtimeStart,omitempty"`
	BedtimeEnd        *string   `json:"bedtimeEnd,omitempty" firestore:"bedtimeEnd,omitempty"`
	WeekendExtension  *int      `json:"weekendExtension,omitempty" firestore:"weekendExtension,omitempty"`
	Enabled           *bool     `json:"enabled,omitempty" firestore:"enabled,omitempty"`
	ContentFiltering  *string   `json:"contentFiltering,omitempty" firestore:"contentFiltering,omitempty"`
	AllowedCategories *[]string `json:"allowedCategories,omitempty" firestore:"allowedCategories,omitempty"`
	RewardSystem      *bool     `json:"rewardSystem,omitempty" firestore:"rewardSystem,omitempty"`
	RewardPoints      *int      `json:"rewardPoints,omitempty" firestore:"rewardPoints,omitempty"`
}

// Usage is one child's recorded consumption for one calendar day.
type Usage struct {
	Date               string    `json:"date" firestore:"date"`
	VideoMinutes       int       `json:"videoMinutes" firestore:"videoMinutes"`
	BookMinutes        int       `json:"bookMinutes" firestore:"bookMinutes"`
	TotalMinutes       int       `json:"totalMinutes" firestore:"totalMinutes"`
	LastActivity       time.Time `json:"lastActivity" firestore:"lastActivity"`
	CategoriesAccessed []string  `json:"categoriesAccessed" firestore:"categoriesAccessed"`
}

// DateLayout is the calendar date key used for usage records.
const DateLayout = "2006-01-02"

// DateKey returns the usage key for the calendar day t falls on, in t's location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ZeroUsage is the record callers substitute when no usage exists for a day.
func ZeroUsage(date string) Usage {
	return Usage{Date: date, CategoriesAccessed: []string{}}
}

// Defaults returns the settings a freshly provisioned child starts with.
func Defaults() Settings {
	return Settings{
		DailyLimit:        120,
		VideoLimit:        60,
		BookLimit:         0,
		BedtimeStart:      "21:00",
		BedtimeEnd:        "07:00",
		WeekendExtension:  30,
		Enabled:           true,
		ContentFiltering:  FilteringModerate,
		AllowedCategories: []string{"educational", "science", "stories"},
		RewardSystem:      false,
		RewardPoints:      0,
	}
}

// Normalize fills every absent field of a stored record from Defaults.
func Normalize(p PartialSettings) Settings {
	return Merge(Defaults(), p)
}

// Merge applies the present fields of patch on top of base.
func Merge(base Settings, patch PartialSettings) Settings {
	s := base
	if patch.DailyLimit != nil {
		s.DailyLimit = *patch.DailyLimit
	}
	if patch.VideoLimit != nil {
		s.VideoLimit = *patch.VideoLimit
	}
	if patch.BookLimit != nil {
		s.BookLimit = *patch.BookLimit
	}
	if patch.BedtimeStart != nil {
		s.BedtimeStart = *patch.BedtimeStart
	}
	if patch.BedtimeEnd != nil {
		s.BedtimeEnd = *patch.BedtimeEnd
	}
	if patch.WeekendExtension != nil {
		s.WeekendExtension = *patch.WeekendExtension
	}
	if patch.Enabled != nil {
		s.Enabled = *patch.Enabled
	}
	if patch.ContentFiltering != nil {
		s.ContentFiltering = *patch.ContentFiltering
	}
	if patch.AllowedCategories != nil {
		s.AllowedCategories = append([]string(nil), (*patch.AllowedCategories)...)
	} else if base.AllowedCategories != nil {
		s.AllowedCategories = append([]string(nil), base.AllowedCategories...)
	}
	if patch.RewardSystem != nil {
		s.RewardSystem = *patch.RewardSystem
	}
	if patch.RewardPoints != nil {
		s.RewardPoints = *patch.RewardPoints
	}
	return s
}
