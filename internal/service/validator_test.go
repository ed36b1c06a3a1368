package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/attendance/backend/internal/domain"
	"github.com/pkordes/attendance/backend/internal/service"
)

func validFilter() domain.WorkingHoursFilter {
	return domain.WorkingHoursFilter{
		User:     "alice",
		FromDate: time.Date(2020, 10, 8, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2020, 10, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateFilter_OK(t *testing.T) {
	assert.NoError(t, service.ValidateFilter(validFilter()))
}

// Equal dates select a single day and are valid.
func TestValidateFilter_singleDayRange(t *testing.T) {
	f := validFilter()
	f.ToDate = f.FromDate

	assert.NoError(t, service.ValidateFilter(f))
}

func TestValidateFilter_blankUser(t *testing.T) {
	for _, user := range []string{"", "   ", "\t\n"} {
		f := validFilter()
		f.User = user

		err := service.ValidateFilter(f)

		require.ErrorIs(t, err, domain.ErrValidation, "user %q", user)
		assert.ErrorContains(t, err, "user")
	}
}

func TestValidateFilter_missingFromDate(t *testing.T) {
	f := validFilter()
	f.FromDate = time.Time{}

	err := service.ValidateFilter(f)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "fromDate")
}

func TestValidateFilter_missingToDate(t *testing.T) {
	f := validFilter()
	f.ToDate = time.Time{}

	err := service.ValidateFilter(f)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "toDate")
}

func TestValidateFilter_fromAfterTo(t *testing.T) {
	f := validFilter()
	f.FromDate, f.ToDate = f.ToDate, f.FromDate

	err := service.ValidateFilter(f)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "fromDate cannot be after toDate")
}

// Checks short-circuit in order: a filter that is wrong in several ways
// reports the user failure first.
func TestValidateFilter_reportsFirstFailure(t *testing.T) {
	err := service.ValidateFilter(domain.WorkingHoursFilter{})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "user")
}
