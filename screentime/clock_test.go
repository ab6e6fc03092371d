package screentime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	valid := map[string]int{
		"00:00": 0,
		"07:00": 420,
		"12:34": 754,
		"21:00": 1260,
		"23:59": 1439,
	}
	for in, want := range valid {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "7:00", "07:0", "0700", "07-00", "ab:cd", "24:00", "23:60", " 7:00", "07:00:00", "-1:00"} {
		_, err := ParseClock(in)
		assert.ErrorIs(t, err, ErrInvalidInput, in)
	}
}

func TestInBedtime(t *testing.T) {
	// 21:00 to 07:00 wraps midnight.
	assert.True(t, InBedtime(1260, 420, 1260))
	assert.True(t, InBedtime(1260, 420, 0))
	assert.True(t, InBedtime(1260, 420, 420))
	assert.False(t, InBedtime(1260, 420, 421))
	assert.False(t, InBedtime(1260, 420, 1259))

	// 13:00 to 14:00 on the same day.
	assert.True(t, InBedtime(780, 840, 780))
	assert.True(t, InBedtime(780, 840, 840))
	assert.False(t, InBedtime(780, 840, 779))
	assert.False(t, InBedtime(780, 840, 841))

	for _, m := range []int{0, 600, 1439} {
		assert.False(t, InBedtime(600, 600, m))
	}
}

func TestMinuteOfDay(t *testing.T) {
	assert.Equal(t, 0, MinuteOfDay(time.Date(2024, 1, 9, 0, 0, 59, 0, time.UTC)))
	assert.Equal(t, 22*60+15, MinuteOfDay(time.Date(2024, 1, 9, 22, 15, 30, 0, time.UTC)))
}

func TestIsWeekend(t *testing.T) {
	assert.False(t, IsWeekend(at(12, 23, 59)))
	assert.True(t, IsWeekend(at(13, 0, 0)))
	assert.True(t, IsWeekend(at(14, 23, 59)))
	assert.False(t, IsWeekend(at(15, 0, 0)))
}
