package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/attendance/backend/internal/domain"
)

func TestTimeOfDayFrom_dropsDateAndZone(t *testing.T) {
	ts := time.Date(2020, 10, 8, 8, 30, 15, 999, time.UTC)

	got := domain.TimeOfDayFrom(ts)

	assert.Equal(t, domain.TimeOfDay{Hour: 8, Minute: 30, Second: 15}, got)
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := domain.ParseTimeOfDay("17:05:09")

	require.NoError(t, err)
	assert.Equal(t, domain.TimeOfDay{Hour: 17, Minute: 5, Second: 9}, got)
}

func TestParseTimeOfDay_invalid(t *testing.T) {
	_, err := domain.ParseTimeOfDay("25:00:00")

	assert.Error(t, err)
}

func TestTimeOfDay_String_zeroPads(t *testing.T) {
	tod := domain.TimeOfDay{Hour: 9, Minute: 5, Second: 0}

	assert.Equal(t, "09:05:00", tod.String())
}

func TestTimeOfDay_Before(t *testing.T) {
	early := domain.TimeOfDay{Hour: 8, Minute: 0, Second: 0}
	late := domain.TimeOfDay{Hour: 17, Minute: 0, Second: 0}

	assert.True(t, early.Before(late))
	assert.False(t, late.Before(early))
	assert.False(t, early.Before(early))
}

func TestTimeOfDay_JSONRoundTrip(t *testing.T) {
	tod := domain.TimeOfDay{Hour: 8, Minute: 30, Second: 0}

	b, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.Equal(t, `"08:30:00"`, string(b))

	var back domain.TimeOfDay
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, tod, back)
}

func TestTimeOfDay_UnmarshalJSON_rejectsNonString(t *testing.T) {
	var tod domain.TimeOfDay

	assert.Error(t, json.Unmarshal([]byte(`83000`), &tod))
}
