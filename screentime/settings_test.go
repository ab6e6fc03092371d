package screentime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int             { return &v }
func strPtr(v string) *string       { return &v }
func boolPtr(v bool) *bool          { return &v }
func sliceOf(v ...string) *[]string { return &v }

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, ValidateSettings(Defaults()))
}

func TestNormalizeEmptyIsDefaults(t *testing.T) {
	assert.Equal(t, Defaults(), Normalize(PartialSettings{}))
}

func TestNormalizeKeepsStoredFields(t *testing.T) {
	s := Normalize(PartialSettings{
		DailyLimit:   intPtr(45),
		Enabled:      boolPtr(false),
		BedtimeStart: strPtr("20:30"),
	})

	d := Defaults()
	assert.Equal(t, 45, s.DailyLimit)
	assert.False(t, s.Enabled)
	assert.Equal(t, "20:30", s.BedtimeStart)
	assert.Equal(t, d.BedtimeEnd, s.BedtimeEnd)
	assert.Equal(t, d.WeekendExtension, s.WeekendExtension)
	assert.Equal(t, d.AllowedCategories, s.AllowedCategories)
}

func TestNormalizeZeroValuesAreNotDefaulted(t *testing.T) {
	s := Normalize(PartialSettings{
		DailyLimit:       intPtr(0),
		WeekendExtension: intPtr(0),
		Enabled:          boolPtr(false),
	})
	assert.Equal(t, 0, s.DailyLimit)
	assert.Equal(t, 0, s.WeekendExtension)
	assert.False(t, s.Enabled)
}

func TestMergeDoesNotAliasCategories(t *testing.T) {
	base := Defaults()
	merged := Merge(base, PartialSettings{})
	merged.AllowedCategories[0] = "changed"
	assert.Equal(t, "educational", base.AllowedCategories[0])

	patch := PartialSettings{AllowedCategories: sliceOf("art")}
	merged = Merge(base, patch)
	(*patch.AllowedCategories)[0] = "music"
	assert.Equal(t, []string{"art"}, merged.AllowedCategories)
}

func TestValidateSettings(t *testing.T) {
	tests := []struct {
		name  string
		patch PartialSettings
	}{
		{"negative video limit", PartialSettings{VideoLimit: intPtr(-1)}},
		{"negative book limit", PartialSettings{BookLimit: intPtr(-1)}},
		{"negative reward points", PartialSettings{RewardPoints: intPtr(-10)}},
		{"unknown filtering", PartialSettings{ContentFiltering: strPtr("lenient")}},
		{"bad bedtime", PartialSettings{BedtimeEnd: strPtr("7am")}},
		{"negative daily limit", PartialSettings{DailyLimit: intPtr(-30)}},
		{"daily limit above a day", PartialSettings{DailyLimit: intPtr(MinutesPerDay + 1)}},
		{"video limit above a day", PartialSettings{VideoLimit: intPtr(5000)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSettings(Normalize(tt.patch))
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestZeroUsage(t *testing.T) {
	u := ZeroUsage("2024-01-09")
	assert.Equal(t, "2024-01-09", u.Date)
	assert.Zero(t, u.TotalMinutes)
	assert.Zero(t, u.VideoMinutes)
	assert.Zero(t, u.BookMinutes)
	assert.Empty(t, u.CategoriesAccessed)
	assert.True(t, u.LastActivity.IsZero())
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2024-01-09", DateKey(at(9, 23, 59)))
}
