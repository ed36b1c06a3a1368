package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/attendance/backend/internal/domain"
)

// day returns a midnight-UTC date in October 2020.
func day(d int) time.Time {
	return time.Date(2020, 10, d, 0, 0, 0, 0, time.UTC)
}

func record(d int) domain.WorkingHours {
	return domain.WorkingHours{
		User:     "alice",
		Day:      day(d),
		FromTime: domain.TimeOfDay{Hour: 8},
	}
}

func TestHoursReport_empty(t *testing.T) {
	report := domain.NewHoursReport()

	assert.Equal(t, 0, report.Len())
	assert.Empty(t, report.Days())
}

func TestHoursReport_Add_distinctDays(t *testing.T) {
	report := domain.NewHoursReport()

	require.NoError(t, report.Add(record(9)))
	require.NoError(t, report.Add(record(8)))
	require.NoError(t, report.Add(record(10)))

	assert.Equal(t, 3, report.Len())
}

// TestHoursReport_Days_ascending verifies iteration order is ascending by
// day regardless of insertion order.
func TestHoursReport_Days_ascending(t *testing.T) {
	report := domain.NewHoursReport()
	require.NoError(t, report.Add(record(10)))
	require.NoError(t, report.Add(record(8)))
	require.NoError(t, report.Add(record(9)))

	days := report.Days()

	require.Len(t, days, 3)
	assert.Equal(t, day(8), days[0].Day)
	assert.Equal(t, day(9), days[1].Day)
	assert.Equal(t, day(10), days[2].Day)
}

// TestHoursReport_Add_duplicateDay verifies a second record for the same day
// is rejected rather than overwriting the first.
func TestHoursReport_Add_duplicateDay(t *testing.T) {
	report := domain.NewHoursReport()
	require.NoError(t, report.Add(record(8)))

	other := record(8)
	other.FromTime = domain.TimeOfDay{Hour: 9}
	err := report.Add(other)

	require.ErrorIs(t, err, domain.ErrDuplicateDay)
	assert.ErrorContains(t, err, "2020-10-08")

	// The original record must be untouched.
	days := report.Days()
	require.Len(t, days, 1)
	assert.Equal(t, domain.TimeOfDay{Hour: 8}, days[0].FromTime)
}
